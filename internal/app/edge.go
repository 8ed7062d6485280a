package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/receptionist-backend/internal/auth"
	"github.com/heartmarshall/receptionist-backend/internal/config"
	"github.com/heartmarshall/receptionist-backend/internal/edge"
	"github.com/heartmarshall/receptionist-backend/internal/guard"
	"github.com/heartmarshall/receptionist-backend/internal/transport/middleware"
	"github.com/heartmarshall/receptionist-backend/internal/transport/rest"
)

// RunEdge is the edge proxy entry point.
func RunEdge(ctx context.Context) error {
	cfg, err := config.LoadEdge()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting edge",
		buildAttrs("edge"),
		slog.String("backend", cfg.Edge.APIBaseURL()),
		slog.Duration("upstream_timeout", cfg.Edge.UpstreamTimeout),
	)

	handler, err := NewEdgeHandler(cfg, logger)
	if err != nil {
		return err
	}

	return serve(ctx, logger, cfg.Server, handler)
}

// NewEdgeHandler builds the edge mux: health, metrics and the proxied routes.
func NewEdgeHandler(cfg *config.EdgeConfig, logger *slog.Logger) (http.Handler, error) {
	// The edge only verifies; the issuer claim is checked by the backend.
	verifier, err := auth.NewVerifierFromBase64(cfg.Edge.PublicKeyBase64, "")
	if err != nil {
		return nil, fmt.Errorf("edge public key: %w", err)
	}

	proxy, err := edge.NewProxy(cfg.Edge.APIBaseURL(), cfg.Edge.UpstreamTimeout, nil)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	health := rest.NewHealthHandler(BuildVersion(), rest.Probe{Name: "backend", Ping: proxy.Ping})
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.Handler())
	}

	h := edge.NewHandler(proxy, edge.CookieConfig{
		Domain:      cfg.Edge.CookieDomain,
		ForceSecure: cfg.Edge.CookieSecure,
	}, cfg.Edge.MaxBodyBytes, logger)
	h.Mount(mux, guard.Registry{
		guard.StrategyJWT:    guard.JWT(verifier),
		guard.StrategyPublic: guard.Public(),
	}, edge.Routes())

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, nil
}
