package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Transport configuration struct
// --------------------------------------------------------------------------

// TransportConfig holds socket-level tuning shared by all transports.
// The TCP* fields are ignored by non-TCP connectors.
type TransportConfig struct {
	// Endpoint is the listen address: host:port for tcp, a filesystem
	// path for unix sockets
	Endpoint string

	// Buffered reader/writer sizes per connection (bytes)
	ReadBufferSize  int
	WriteBufferSize int

	// TCPConf specific settings
	TCPNoDelay      bool
	TCPKeepAliveSec int
	TCPLingerSec    int
}

// --------------------------------------------------------------------------
// Server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters for the sparrow server.
type ServerConfig struct {
	Transport TransportConfig

	// MaxConnections is advisory: the accept loop warns when the number
	// of live connections exceeds it but keeps accepting
	MaxConnections int

	// TimeoutSecond sets per-operation socket deadlines; 0 disables them
	TimeoutSecond int64

	// Logging configuration
	LogLevel string

	// MetricsEndpoint optionally exposes Prometheus metrics over HTTP;
	// empty disables the endpoint
	MetricsEndpoint string
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Server")
	addField("Endpoint", c.Transport.Endpoint)
	addField("Max Connections", strconv.Itoa(c.MaxConnections))
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	addSection("Transport")
	addField("Read Buffer Size", fmt.Sprintf("%d bytes", c.Transport.ReadBufferSize))
	addField("Write Buffer Size", fmt.Sprintf("%d bytes", c.Transport.WriteBufferSize))
	addField("TCP No Delay", fmt.Sprintf("%t", c.Transport.TCPNoDelay))
	addField("TCP Keep Alive", fmt.Sprintf("%d sec", c.Transport.TCPKeepAliveSec))
	addField("TCP Linger", fmt.Sprintf("%d sec", c.Transport.TCPLingerSec))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	if c.MetricsEndpoint != "" {
		addSection("Metrics")
		addField("Endpoint", c.MetricsEndpoint)
	}

	return sb.String()
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the sparrow client.
type ClientConfig struct {
	// Endpoint is the server address: host:port for tcp, a filesystem
	// path for unix sockets
	Endpoint string

	TimeoutSecond int
	RetryCount    int
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Retry Count", strconv.Itoa(c.RetryCount))

	return sb.String()
}
