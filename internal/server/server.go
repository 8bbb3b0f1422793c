package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dircast/dircast/internal/config"
	"github.com/dircast/dircast/internal/logger"
)

type server struct {
	httpServer    *http.Server
	shutdownGrace time.Duration
	logger        *logger.Logger
}

// NewServer builds the HTTP server listening on the resolved port, serving
// handler. The Config is read-only from here on.
func NewServer(handler http.Handler, cfg *config.Config, opts Options, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNilHandler
	}
	if cfg == nil {
		return nil, errNilConfig
	}

	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	logger.Info().Int("port", cfg.Port).Str("mode", string(cfg.Mode)).Msg("creating new server...")

	return &server{
		httpServer: &http.Server{
			Addr:           ":" + strconv.Itoa(cfg.Port),
			Handler:        handler,
			ReadTimeout:    opts.ReadTimeout,
			WriteTimeout:   opts.WriteTimeout,
			IdleTimeout:    opts.IdleTimeout,
			MaxHeaderBytes: opts.MaxHeaderBytes,
		},
		shutdownGrace: opts.ShutdownGrace,
		logger:        logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownGrace)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
