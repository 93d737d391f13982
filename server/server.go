package server

import (
	"log/slog"
	"net/http"

	"github.com/crosscheck-ai/crosscheck/config"
	"github.com/crosscheck-ai/crosscheck/pkg/auth"
	"github.com/crosscheck-ai/crosscheck/pkg/auth/static"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	*config.Config

	logger *slog.Logger
	router *chi.Mux
}

func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		Config: cfg,

		logger: logger,
		router: chi.NewRouter(),
	}

	authProvider, err := static.New(cfg.Token)

	if err != nil {
		return nil, err
	}

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	s.router.Use(s.authenticate(authProvider))

	s.router.Post("/v1/analyses", s.handleAnalysis)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("starting server", "address", s.Address)

	return http.ListenAndServe(s.Address, s.router)
}

func (s *Server) authenticate(provider auth.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := provider.Authenticate(r.Context(), r)

			if err != nil {
				writeError(w, http.StatusUnauthorized, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
