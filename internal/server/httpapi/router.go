// Package httpapi is the backend's REST transport: a chi router serving the
// user and LOV endpoints in the {code, status, description, message, data}
// envelope, plus health and Prometheus metrics.
package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/useradmin/internal/logging"
	"github.com/dmitrijs2005/useradmin/internal/server/services"
)

// API paths, relative to the configured prefix.
const (
	PathRegister      = "/user/register_user"
	PathLogin         = "/auth/admin_login"
	PathGetProfile    = "/user/get_profile"
	PathUpdateProfile = "/user/update_user"
	PathUserCount     = "/user/get_user_count"
	PathUsersList     = "/user/user_list"
	PathDeleteUser    = "/user/delete_user"
	PathRanks         = "/lov/get_ranks"
	PathRoles         = "/lov/get_roles"
)

// Handler is the thin HTTP layer over the services.
type Handler struct {
	users   *services.UserService
	lovs    *services.LovService
	logger  logging.Logger
	metrics *Metrics
}

func NewHandler(us *services.UserService, ls *services.LovService, l logging.Logger, m *Metrics) *Handler {
	return &Handler{users: us, lovs: ls, logger: l.With("module", "http_api"), metrics: m}
}

// NewRouter wires all endpoints with middleware. A non-empty prefix mounts
// the API under it; /health and /metrics always stay at the root.
func NewRouter(h *Handler, prefix string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger, h.metrics))
	r.Use(cors)

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	api := func(r chi.Router) {
		r.Post(PathRegister, h.handleRegister)
		r.Post(PathLogin, h.handleLogin)
		r.Post(PathGetProfile, h.handleGetProfile)
		r.Post(PathUpdateProfile, h.handleUpdateProfile)
		r.Post(PathDeleteUser, h.handleDeleteUser)
		r.Get(PathRanks, h.handleRanks)
		r.Get(PathRoles, h.handleRoles)

		r.Group(func(r chi.Router) {
			r.Use(requireBearer(h.users, h.logger, h.metrics))
			r.Get(PathUserCount, h.handleUserCount)
			r.Get(PathUsersList, h.handleUsersList)
		})
	}

	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		api(r)
	} else {
		if !strings.HasPrefix(prefix, "/") {
			prefix = "/" + prefix
		}
		r.Route(prefix, api)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
