package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Probe checks one dependency.
type Probe struct {
	Name string
	Ping func(ctx context.Context) error
	// Optional probes are reported but never fail readiness.
	Optional bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	probes  []Probe
	version string
}

// NewHealthHandler creates a HealthHandler over the given probes.
func NewHealthHandler(version string, probes ...Probe) *HealthHandler {
	return &HealthHandler{probes: probes, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every required probe passes,
// 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.probes))
	ok := true
	for _, p := range h.probes {
		start := time.Now()
		if err := p.Ping(ctx); err != nil {
			components[p.Name] = CompStatus{Status: "down"}
			if !p.Optional {
				ok = false
			}
			continue
		}
		components[p.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, ok
}
