package server

import (
	"github.com/sparrowkv/sparrow/lib/engine"
	"github.com/sparrowkv/sparrow/lib/logger"
	"github.com/sparrowkv/sparrow/rpc/common"
	"github.com/sparrowkv/sparrow/rpc/transport"
)

// Server combines an engine with a server transport. Serve is the only
// entry point; it blocks until the transport fails.
type Server struct {
	config    common.ServerConfig
	transport transport.IServerTransport
	engine    *engine.Engine
	logger    logger.ILogger
}

// NewServer creates a Server from a configuration, a transport and a
// diagnostic sink.
func NewServer(config common.ServerConfig, t transport.IServerTransport, sink logger.ILogger) *Server {
	return &Server{
		config:    config,
		transport: t,
		engine:    engine.New(sink),
		logger:    sink,
	}
}

// Serve starts the engine loop and the transport. It blocks until the
// listener fails; a bind failure is returned immediately.
func (s *Server) Serve() error {
	s.logger.Infof("Starting sparrow server with config: %s", s.config.String())

	queue := s.engine.Init()
	go s.engine.Run()
	defer s.engine.Close()

	s.transport.RegisterQueue(queue)

	return s.transport.Listen(s.config)
}
