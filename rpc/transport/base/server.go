package base

import (
	"bufio"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sparrowkv/sparrow/lib/engine"
	"github.com/sparrowkv/sparrow/lib/logger"
	"github.com/sparrowkv/sparrow/lib/resp"
	"github.com/sparrowkv/sparrow/lib/util"
	"github.com/sparrowkv/sparrow/rpc/common"
	"github.com/sparrowkv/sparrow/rpc/transport"
)

const defaultBufferSize = 64 * 1024 // 64 KB

var (
	acceptedConns = metrics.NewCounter(`sparrow_connections_accepted_total`)
	closedConns   = metrics.NewCounter(`sparrow_connections_closed_total`)
	acceptErrors  = metrics.NewCounter(`sparrow_accept_errors_total`)
)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IServerConnector defines the interface for transport-specific server operations
type IServerConnector interface {
	// Listen creates a listener and returns it
	Listen(config common.ServerConfig) (net.Listener, error)

	// UpgradeConnection applies transport-specific tuning to an accepted
	// connection (e.g. TCP no-delay, keep-alive)
	UpgradeConnection(conn net.Conn, config common.ServerConfig) error

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// serverTransport implements the core server transport functionality
type serverTransport struct {
	connector IServerConnector
	queue     *util.MPSC[engine.Request]
	config    common.ServerConfig
	listener  net.Listener
	logger    logger.ILogger

	// conns maps connection id to remote address for every live connection
	conns   *xsync.MapOf[uint64, string]
	connSeq atomic.Uint64
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseServerTransport creates a new base server transport with the given connector
func NewBaseServerTransport(connector IServerConnector, sink logger.ILogger) transport.IServerTransport {
	return &serverTransport{
		connector: connector,
		logger:    sink,
		conns:     xsync.NewMapOf[uint64, string](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IServerTransport)
// --------------------------------------------------------------------------

func (t *serverTransport) RegisterQueue(queue *util.MPSC[engine.Request]) {
	t.queue = queue
}

func (t *serverTransport) Listen(config common.ServerConfig) error {
	t.config = config

	// Create listener using the connector
	listener, err := t.connector.Listen(config)
	if err != nil {
		return fmt.Errorf("failed to create listener: %v", err)
	}
	t.listener = listener

	t.logger.Infof("Starting %s server on %s", t.connector.GetName(), config.Transport.Endpoint)

	// Accept connections
	for {
		conn, err := listener.Accept()
		if err != nil {
			acceptErrors.Inc()
			t.logger.Errorf("Accept error: %v", err)
			continue
		}
		acceptedConns.Inc()

		connID := t.connSeq.Add(1)
		t.conns.Store(connID, conn.RemoteAddr().String())

		// max-connections is a hint, the loop keeps accepting
		if config.MaxConnections > 0 && t.conns.Size() > config.MaxConnections {
			t.logger.Warningf("%d live connections exceed the max-connections hint of %d", t.conns.Size(), config.MaxConnections)
		}

		t.logger.Infof("[%d] connection accepted from %s", connID, conn.RemoteAddr())

		// Handle the connection in a goroutine
		go t.handleConnection(conn, connID)
	}
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handleConnection handles incoming requests for one connection. It runs
// until the peer closes the connection or an unrecoverable write error
// occurs.
func (t *serverTransport) handleConnection(conn net.Conn, connID uint64) {
	defer conn.Close()
	defer t.conns.Delete(connID)
	defer closedConns.Inc()

	if err := t.connector.UpgradeConnection(conn, t.config); err != nil {
		t.logger.Warningf("[%d] failed to upgrade connection: %v", connID, err)
	}

	readBufSize := t.config.Transport.ReadBufferSize
	if readBufSize <= 0 {
		readBufSize = defaultBufferSize
	}
	writeBufSize := t.config.Transport.WriteBufferSize
	if writeBufSize <= 0 {
		writeBufSize = defaultBufferSize
	}

	reader := bufio.NewReaderSize(conn, readBufSize)
	writer := bufio.NewWriterSize(conn, writeBufSize)

	// one reply channel per connection, reused for every request. Capacity
	// one so the engine never blocks on it.
	reply := make(chan resp.Value, 1)

	// Timeout in seconds, zero disables deadlines
	timeout := time.Duration(t.config.TimeoutSecond) * time.Second

	for {
		if timeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
				t.logger.Errorf("[%d] failed to set read deadline: %v", connID, err)
				return
			}
		}

		value, err := resp.Decode(reader)

		var result resp.Value
		switch {
		case resp.IsConnectionClosed(err):
			// Connection closed by peer, no reply possible
			t.logger.Infof("[%d] connection closed by peer", connID)
			return
		case err != nil:
			// Framing or payload failure: answer directly, the engine
			// never sees the request
			t.logger.Debugf("[%d] decode failure: %v", connID, err)
			result = resp.NewError(err.Error())
		default:
			req := &engine.Request{ConnID: connID, Data: value, Reply: reply}
			if !t.queue.Push(req) {
				t.logger.Errorf("[%d] request queue closed, dropping connection", connID)
				return
			}
			// exactly one reply per request
			result = <-reply
		}

		if timeout > 0 {
			if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
				t.logger.Errorf("[%d] failed to set write deadline: %v", connID, err)
				return
			}
		}

		if err := resp.Encode(writer, result); err != nil {
			t.logger.Errorf("[%d] failed to write response: %v", connID, err)
			return
		}
		if err := writer.Flush(); err != nil {
			t.logger.Errorf("[%d] failed to flush response: %v", connID, err)
			return
		}
	}
}
