package web

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/config"
)

// Server wires the console handler into an HTTP server with the middleware
// chain: logging -> security headers -> CSRF -> session binding -> audit.
type Server struct {
	handler *Handler
	flasher *Flasher
	cfg     *config.Config
	logger  *zap.Logger
	server  *http.Server
}

func NewServer(handler *Handler, flasher *Flasher, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		handler: handler,
		flasher: flasher,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *Server) Run(ctx context.Context) error {
	router := mux.NewRouter()
	s.handler.Routes(router)
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	protect := csrf.Protect(
		s.cfg.CSRFKey,
		csrf.Secure(s.cfg.CookieSecure),
		csrf.Path("/"),
	)

	chain := LoggingMiddleware(s.logger)(
		SecurityHeadersMiddleware(
			protect(
				s.flasher.Bind(
					s.handler.auditMiddleware(router),
				),
			),
		),
	)

	s.server = &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("server starting", zap.String("addr", s.cfg.ListenAddr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
