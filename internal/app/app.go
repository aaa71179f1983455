package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/presence-analyzer/presence-analyzer/internal/config"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}
	return newApplication(cfg)
}

func newApplication(cfg config.Application) (*Application, error) {
	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	SetupMiddleware(r)
	RegisterRoutes(r, deps)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s (%s)", a.srv.Addr, a.cfg.Host)
	return a.srv.ListenAndServe()
}
