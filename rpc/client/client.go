package client

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/sparrowkv/sparrow/lib/resp"
	"github.com/sparrowkv/sparrow/rpc/common"
)

// Client is a synchronous connection to a sparrow server.
//
// Thread-safety: all methods are safe for concurrent use; requests are
// serialized over the single connection.
type Client struct {
	config common.ClientConfig
	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
	mu     sync.Mutex
}

// Dial connects to the endpoint in the configuration. An endpoint
// starting with "/" is treated as a unix socket path, anything else as a
// TCP address. The connection is attempted RetryCount+1 times.
func Dial(config common.ClientConfig) (*Client, error) {
	network := "tcp"
	if strings.HasPrefix(config.Endpoint, "/") {
		network = "unix"
	}

	timeout := time.Duration(config.TimeoutSecond) * time.Second

	var conn net.Conn
	var err error
	for attempt := 0; attempt <= config.RetryCount; attempt++ {
		conn, err = net.DialTimeout(network, config.Endpoint, timeout)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %v", config.Endpoint, err)
	}

	return &Client{
		config: config,
		conn:   conn,
		reader: bufio.NewReader(conn),
		writer: bufio.NewWriter(conn),
	}, nil
}

// Do sends one command line and returns the server's reply. A reply of
// type Error is returned as a Go error.
func (c *Client) Do(line string) (resp.Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	timeout := time.Duration(c.config.TimeoutSecond) * time.Second
	if timeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return resp.Value{}, fmt.Errorf("failed to set deadline: %v", err)
		}
	}

	if err := resp.Encode(c.writer, resp.NewBulkString(line)); err != nil {
		return resp.Value{}, fmt.Errorf("failed to send request: %v", err)
	}
	if err := c.writer.Flush(); err != nil {
		return resp.Value{}, fmt.Errorf("failed to send request: %v", err)
	}

	value, err := resp.Decode(c.reader)
	if err != nil {
		return resp.Value{}, fmt.Errorf("failed to read reply: %v", err)
	}
	if value.Type == resp.TypeError {
		return resp.Value{}, fmt.Errorf("server error: %s", value.Str)
	}

	return value, nil
}

// Get returns the value stored for key. The boolean reports whether the
// key was present.
func (c *Client) Get(key string) (string, bool, error) {
	value, err := c.Do(fmt.Sprintf("GET %s", key))
	if err != nil {
		return "", false, err
	}
	if value.Type == resp.TypeNull {
		return "", false, nil
	}
	if value.Type != resp.TypeBulkString {
		return "", false, fmt.Errorf("unexpected reply type: %s", value.Type)
	}
	return value.Str, true, nil
}

// Set stores value under key.
func (c *Client) Set(key, value string) error {
	_, err := c.Do(fmt.Sprintf("SET %s %s", key, value))
	return err
}

// Rem removes the entry for key. Removing an absent key succeeds.
func (c *Client) Rem(key string) error {
	_, err := c.Do(fmt.Sprintf("REM %s", key))
	return err
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
