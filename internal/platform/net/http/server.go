package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"careerpath/internal/platform/config"
	perr "careerpath/internal/platform/errors"
	"careerpath/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerConfig holds listener settings
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

// ServerConfigFrom reads PORT, *_TIMEOUT from cfg
func ServerConfigFrom(cfg config.Conf) ServerConfig {
	port := cfg.MayString("PORT", "4000")
	if port[0] != ':' {
		port = ":" + port
	}
	return ServerConfig{
		Addr:              port,
		ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Server owns the chi mux and the stdlib server
type Server struct {
	cfg ServerConfig
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds a server whose unknown routes and wrong methods answer in JSON
func NewServer(sc ServerConfig, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	m.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.NotFoundf("route %s not found", r.URL.Path))
	})
	m.MethodNotAllowed(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.Newf(perr.ErrorCodeMethodNotAllowed, "method %s not allowed", r.Method))
	})
	for _, o := range opts {
		o(m)
	}
	return &Server{
		cfg: sc,
		mux: m,
		srv: &stdhttp.Server{
			Addr:              sc.Addr,
			Handler:           m,
			ReadHeaderTimeout: sc.ReadHeaderTimeout,
			ReadTimeout:       sc.ReadTimeout,
			WriteTimeout:      sc.WriteTimeout,
		},
	}
}

// Router exposes the mux through the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler returns the root handler, mostly for tests
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr returns the listen address
func (s *Server) Addr() string { return s.cfg.Addr }

// Run serves until ctx is done, then drains within ShutdownTimeout
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.Addr).Msg("http listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	log.Info().Dur("timeout", timeout).Msg("http shutting down")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return <-errc
}
