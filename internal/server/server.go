package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/collection"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/processor"
)

// Registrar registers a webhook subscription with the indexing provider.
type Registrar interface {
	CreateWebhook(ctx context.Context, callbackURL string, addresses []string) (json.RawMessage, error)
}

// Server is the HTTP surface of the bot: liveness, webhook registration and
// the webhook receiver itself.
type Server struct {
	httpServer *http.Server
	Router     *chi.Mux

	authToken string
	publicURL string
	registrar Registrar
	lookup    *collection.Lookup
	proc      *processor.Processor
	log       *slog.Logger
}

func New(port, authToken, publicURL string, registrar Registrar, lookup *collection.Lookup, proc *processor.Processor, log *slog.Logger) *Server {
	router := chi.NewRouter()
	s := &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Router:    router,
		authToken: authToken,
		publicURL: publicURL,
		registrar: registrar,
		lookup:    lookup,
		proc:      proc,
		log:       log,
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/", s.handleLive)
	router.Post("/create-webhook", s.requireAuth(s.handleCreateWebhook))
	router.Post("/webhook", s.requireAuth(s.handleWebhook))

	return s
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
