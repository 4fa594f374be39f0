package engine

import (
	"github.com/VictoriaMetrics/metrics"
	"github.com/sparrowkv/sparrow/lib/logger"
	"github.com/sparrowkv/sparrow/lib/nest"
	"github.com/sparrowkv/sparrow/lib/resp"
	"github.com/sparrowkv/sparrow/lib/util"
)

// --------------------------------------------------------------------------
// Request
// --------------------------------------------------------------------------

// Request is one unit of work flowing from a connection handler into the
// engine. Each Request is consumed exactly once and then discarded.
//
// Reply must have capacity for one value; the engine never blocks on it.
// A handler reuses the same channel for every request it issues.
type Request struct {
	ConnID uint64
	Data   resp.Value
	Reply  chan resp.Value
}

// --------------------------------------------------------------------------
// Engine
// --------------------------------------------------------------------------

var (
	getCommands   = metrics.NewCounter(`sparrow_commands_total{verb="GET"}`)
	setCommands   = metrics.NewCounter(`sparrow_commands_total{verb="SET"}`)
	remCommands   = metrics.NewCounter(`sparrow_commands_total{verb="REM"}`)
	parseFailures = metrics.NewCounter(`sparrow_command_parse_failures_total`)
)

// Engine owns the Nest and executes all commands sequentially from a
// single goroutine. It has two states: initialized (queue created, not yet
// consuming) and running (consuming indefinitely).
//
// Thread-safety: Init and Run must each be called once; any number of
// goroutines may push to the queue Init returns.
type Engine struct {
	nest   *nest.Nest
	queue  *util.MPSC[Request]
	logger logger.ILogger
}

// New creates an Engine with an empty Nest.
func New(sink logger.ILogger) *Engine {
	return &Engine{
		nest:   nest.NewNest(),
		logger: sink,
	}
}

// Init creates the request queue and returns the producer handle for use
// by every future connection handler. The consumer side stays internal.
func (e *Engine) Init() *util.MPSC[Request] {
	e.queue = util.NewMPSC[Request]()
	return e.queue
}

// Run drains the queue until it is closed. Every request is parsed,
// executed against the Nest and answered on its private reply channel.
// Run is the only place the Nest is ever touched.
func (e *Engine) Run() {
	e.logger.Infof("engine running")

	for req := range e.queue.Recv() {
		result := e.process(req)

		// the reply channel has capacity one and the handler awaits
		// exactly one reply per request, so this send only fails when
		// the peer is already gone
		select {
		case req.Reply <- result:
		default:
			e.logger.Warningf("[%d] reply dropped, handler gone", req.ConnID)
		}
	}

	e.logger.Infof("engine stopped")
}

// process parses and executes a single request.
func (e *Engine) process(req *Request) resp.Value {
	cmd, err := ParseCommand(req.Data)
	if err != nil {
		parseFailures.Inc()
		e.logger.Debugf("[%d] parse failure: %v", req.ConnID, err)
		return resp.NewError(err.Error())
	}

	switch cmd.Verb {
	case VerbGet:
		getCommands.Inc()
	case VerbSet:
		setCommands.Inc()
	case VerbRem:
		remCommands.Inc()
	}

	e.logger.Debugf("[%d] %s", req.ConnID, cmd)

	result := cmd.Execute(e.nest)
	e.logger.Debugf("[%d] %s -> %s", req.ConnID, cmd.Verb, result)

	return result
}

// Close closes the request queue. Requests already queued are still
// processed before Run returns.
func (e *Engine) Close() {
	if e.queue != nil {
		e.queue.Close()
	}
}
