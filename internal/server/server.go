package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"reliefledger/internal/ledger"
	"reliefledger/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config
	ledger *ledger.Ledger

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	ledger *ledger.Ledger,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,
		ledger: ledger,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	// Trailing slash paths never match a flow route, so the redirect has
	// to sit in front of the mux rather than in its middleware chain.
	s.server.Handler = s.StripTrailingSlash(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/needs/:id", s.handleGetNeed, http.MethodGet)
	r.HandleFunc("/resources/:id", s.handleGetResource, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequirePrincipal)

		r.HandleFunc("/needs", s.handleRegisterNeed, http.MethodPost)
		r.HandleFunc("/needs/:id/status", s.handleUpdateNeedStatus, http.MethodPost)
		r.HandleFunc("/needs/:id/priority", s.handleUpdateNeedPriority, http.MethodPost)

		r.HandleFunc("/resources", s.handleRegisterResource, http.MethodPost)
		r.HandleFunc("/resources/:id/quantity", s.handleUpdateQuantity, http.MethodPost)
		r.HandleFunc("/resources/:id/status", s.handleUpdateStatus, http.MethodPost)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeResult(w, types.Ok(map[string]any{
		"status": "ok",
		"height": s.ledger.Height(),
	}))
}

func (s *Service) principalFromContext(ctx context.Context) (types.Principal, error) {
	principal, ok := ctx.Value(contextKeyPrincipal).(types.Principal)
	if !ok {
		return "", fmt.Errorf("principal not found in context")
	}
	return principal, nil
}
