package transport

import (
	"github.com/sparrowkv/sparrow/lib/engine"
	"github.com/sparrowkv/sparrow/lib/util"
	"github.com/sparrowkv/sparrow/rpc/common"
)

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// IServerTransport is the interface for the server transport layer.
type IServerTransport interface {
	// RegisterQueue hands the transport the engine's request queue.
	// Every connection handler pushes its requests into this queue.
	// Must be called before Listen.
	RegisterQueue(queue *util.MPSC[engine.Request])

	// Listen binds the configured endpoint and accepts connections until
	// an unrecoverable listener error occurs. A bind failure is returned
	// immediately; per-accept failures are logged and the loop continues.
	Listen(config common.ServerConfig) error
}
