package rest

import (
	"net/http"

	"github.com/heartmarshall/timebill-backend/internal/transport/middleware"
)

// Handlers bundles every endpoint group served by the router.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Report        *ReportHandler
	Dashboard     *DashboardHandler
	Client        *ClientHandler
	Group         *GroupHandler
	ActivityType  *ActivityTypeHandler
	TimeEntry     *TimeEntryHandler
	User          *UserHandler
	Metrics       http.Handler // nil disables the endpoint
	MetricsPath   string
	LoginLimit    middleware.Middleware
	RefreshLimit  middleware.Middleware
	RouteObserver middleware.Middleware
}

// NewRouter registers all routes. Cross-cutting middleware (request id,
// logging, recovery, CORS, token parsing) is applied by the caller around
// the returned handler; per-route guards are applied here.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, handler http.HandlerFunc, guards ...middleware.Middleware) {
		mws := make([]middleware.Middleware, 0, len(guards)+1)
		if h.RouteObserver != nil {
			mws = append(mws, h.RouteObserver)
		}
		mws = append(mws, guards...)
		mux.Handle(pattern, middleware.Chain(mws...)(handler))
	}

	authed := middleware.Middleware(middleware.RequireUser)
	admin := middleware.Middleware(middleware.RequireAdmin)

	// Probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, h.Metrics)
	}

	// Auth.
	route("POST /api/auth/login", h.Auth.Login, optional(h.LoginLimit)...)
	route("POST /api/auth/refresh", h.Auth.Refresh, optional(h.RefreshLimit)...)
	route("POST /api/auth/logout", h.Auth.Logout, authed)
	route("GET /api/auth/me", h.Auth.Me, authed)

	// Reports are readable by every authenticated role.
	route("GET /api/reports", h.Report.Get, authed)
	route("GET /api/reports/export", h.Report.Export, authed)

	route("GET /api/dashboard", h.Dashboard.Get, admin)

	route("GET /api/clients", h.Client.List, admin)
	route("POST /api/clients", h.Client.Create, admin)
	route("PUT /api/clients/{id}", h.Client.Update, admin)
	route("DELETE /api/clients/{id}", h.Client.Delete, admin)

	route("GET /api/client-groups", h.Group.List, admin)
	route("POST /api/client-groups", h.Group.Create, admin)
	route("PUT /api/client-groups/{id}", h.Group.Update, admin)
	route("DELETE /api/client-groups/{id}", h.Group.Delete, admin)

	route("GET /api/activity-types", h.ActivityType.List, admin)
	route("POST /api/activity-types", h.ActivityType.Create, admin)
	route("GET /api/activity-types/{id}", h.ActivityType.Get, authed)
	route("PUT /api/activity-types/{id}", h.ActivityType.Update, admin)
	route("DELETE /api/activity-types/{id}", h.ActivityType.Delete, admin)

	route("GET /api/time-entries", h.TimeEntry.List, admin)
	route("POST /api/time-entries", h.TimeEntry.Create, admin)
	route("PUT /api/time-entries/{id}", h.TimeEntry.Update, admin)
	route("DELETE /api/time-entries/{id}", h.TimeEntry.Delete, admin)

	route("GET /api/users", h.User.List, admin)
	route("POST /api/users", h.User.Create, admin)
	route("PUT /api/users/{id}", h.User.Update, admin)
	route("DELETE /api/users/{id}", h.User.Delete, admin)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})

	return mux
}

func optional(mw middleware.Middleware) []middleware.Middleware {
	if mw == nil {
		return nil
	}
	return []middleware.Middleware{mw}
}
