package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 2 * time.Second

// dbPinger is satisfied by *pgxpool.Pool.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now(), now: time.Now}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status    string               `json:"status"`
	Version   string               `json:"version,omitempty"`
	Uptime    string               `json:"uptime,omitempty"`
	Checks    map[string]CheckInfo `json:"checks,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// CheckInfo reports one dependency.
type CheckInfo struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live reports that the process is serving. It never touches the database.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	check := h.pingDB(r.Context())
	status := http.StatusOK
	if check.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: check.Status, Timestamp: h.now()})
}

// Health is Ready plus version, uptime and per-check details.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	check := h.pingDB(r.Context())
	status := http.StatusOK
	if check.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	now := h.now()
	writeJSON(w, status, HealthResponse{
		Status:    check.Status,
		Version:   h.version,
		Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
		Checks:    map[string]CheckInfo{"database": check},
		Timestamp: now,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CheckInfo {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CheckInfo{Status: "down", Error: err.Error()}
	}
	return CheckInfo{Status: "ok", Latency: time.Since(start).String()}
}
