package rest

import (
	"net/http"

	"github.com/ellishaven/careops-backend/internal/transport/middleware"
)

// Handlers bundles the REST handlers registered by NewRouter.
type Handlers struct {
	Auth         *AuthHandler
	Compliance   *ComplianceHandler
	Notification *NotificationHandler
	Staffing     *StaffingHandler
	Health       *HealthHandler
}

// NewRouter registers all REST routes on a fresh mux. Admin staffing
// routes are wrapped with the Admin middleware; everything else relies
// on the outer chain (Auth included) applied by the caller.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /compliance", h.Compliance.List)
	mux.HandleFunc("POST /compliance/{id}/complete", h.Compliance.Complete)

	mux.HandleFunc("GET /notifications", h.Notification.List)
	mux.HandleFunc("POST /notifications/{id}/read", h.Notification.MarkRead)

	admin := middleware.Admin()
	mux.Handle("POST /admin/staffing/assign", admin(http.HandlerFunc(h.Staffing.AssignAll)))
	mux.Handle("GET /admin/staffing/coverage", admin(http.HandlerFunc(h.Staffing.Coverage)))

	return mux
}
