package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdem-analyzer/internal/config"
	"holdem-analyzer/pkg/poker/showdown"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	resolver *showdown.Resolver
}

// NewMux returns a new HTTP mux
func NewMux(version string, cfg config.Config) *Mux {
	resolver := showdown.NewResolver()
	resolver.Concurrent = cfg.ConcurrentEvaluation
	resolver.MinPlayers = cfg.Players.Min
	resolver.MaxPlayers = cfg.Players.Max

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		resolver: resolver,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/deck").Handler(this.getDeck())
	r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
	r.Methods(http.MethodPost).Path("/calculate").Handler(this.postCalculate())
	r.Methods(http.MethodPost).Path("/deal").Handler(this.postDeal())

	return this
}
