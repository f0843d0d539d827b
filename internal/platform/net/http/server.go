package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"modhook/internal/platform/config"
	"modhook/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the net/http server in front of it
type Server struct {
	mux   *chi.Mux
	srv   *stdhttp.Server
	grace time.Duration
}

// NewServer reads API_PORT, API_SHUTDOWN_GRACE and the API_*_TIMEOUT values
// under cfg. setup runs against the bare mux before anything is mounted
func NewServer(cfg config.Conf, setup ...func(*chi.Mux)) *Server {
	mux := chi.NewRouter()
	for _, fn := range setup {
		fn(mux)
	}
	return &Server{
		mux:   mux,
		grace: cfg.MayDuration("API_SHUTDOWN_GRACE", 15*time.Second),
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("API_PORT", ":4000"),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("API_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("API_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       cfg.MayDuration("API_IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

func (s *Server) Router() Router { return AdaptChi(s.mux) }
func (s *Server) Addr() string   { return s.srv.Addr }

// Run serves until listening fails or ctx ends. Once ctx ends in-flight
// requests get the shutdown grace to finish
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	served := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("http listening")
		served <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-served:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http draining")
	drain, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.Shutdown(drain); err != nil {
		return err
	}
	return ignoreClosed(<-served)
}

func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

func ignoreClosed(err error) error {
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}
	return err
}
