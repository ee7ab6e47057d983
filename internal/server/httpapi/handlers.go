package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/useradmin/internal/common"
	"github.com/dmitrijs2005/useradmin/internal/server/services"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Rank     string   `json:"rank"`
	Role     []string `json:"role"`
}

type identifierRequest struct {
	UUID string `json:"uuid"`
}

type updateRequest struct {
	UUID string   `json:"uuid"`
	Name string   `json:"name"`
	Rank string   `json:"rank"`
	Role []string `json:"role"`
}

// decode reads a JSON body into T, answering 400 itself on failure.
func decode[T any](h *Handler, w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn(r.Context(), "failed to decode request body",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		writeFailure(w, http.StatusBadRequest, msgBadBody)
		return nil, false
	}
	return &req, true
}

// fail logs the error at a level matching its class and writes the response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		h.logger.Error(r.Context(), op+" failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
	} else {
		h.logger.Info(r.Context(), op+" rejected", "reason", err.Error())
	}
	writeError(w, err)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, "healthy", nil)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[registerRequest](h, w, r)
	if !ok {
		return
	}

	user, err := h.users.Register(r.Context(), services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Rank:     req.Rank,
		Roles:    req.Role,
	})
	if err != nil {
		h.fail(w, r, "register", err)
		return
	}

	h.metrics.UsersRegistered.Inc()
	h.logger.Info(r.Context(), "Registered", "username", user.Username, "uuid", user.UUID)
	writeOK(w, http.StatusCreated, descRegistered, user)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[credentialsRequest](h, w, r)
	if !ok {
		return
	}

	res, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.metrics.AuthFailures.Inc()
		}
		h.fail(w, r, "login", err)
		return
	}

	writeOK(w, http.StatusOK, descLoggedIn, res)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[identifierRequest](h, w, r)
	if !ok {
		return
	}

	user, err := h.users.Profile(r.Context(), req.UUID)
	if err != nil {
		h.fail(w, r, "get profile", err)
		return
	}

	writeOK(w, http.StatusOK, descProfile, user)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[updateRequest](h, w, r)
	if !ok {
		return
	}

	err := h.users.UpdateProfile(r.Context(), services.ProfileInput{
		UUID:  req.UUID,
		Name:  req.Name,
		Rank:  req.Rank,
		Roles: req.Role,
	})
	if err != nil {
		h.fail(w, r, "update profile", err)
		return
	}

	writeOK(w, http.StatusOK, descProfileUpdated, nil)
}

func (h *Handler) handleUserCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.users.Count(r.Context())
	if err != nil {
		h.fail(w, r, "count users", err)
		return
	}
	writeOK(w, http.StatusOK, descCount, n)
}

func (h *Handler) handleUsersList(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		h.fail(w, r, "list users", err)
		return
	}
	writeOK(w, http.StatusOK, descList, list)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[identifierRequest](h, w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), req.UUID); err != nil {
		h.fail(w, r, "delete user", err)
		return
	}

	h.metrics.UsersDeleted.Inc()
	h.logger.Info(r.Context(), "Deleted", "uuid", req.UUID)
	writeOK(w, http.StatusOK, descDeleted, nil)
}

func (h *Handler) handleRanks(w http.ResponseWriter, r *http.Request) {
	items, err := h.lovs.Ranks(r.Context())
	if err != nil {
		h.fail(w, r, "list ranks", err)
		return
	}
	writeOK(w, http.StatusOK, descRanks, items)
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	items, err := h.lovs.Roles(r.Context())
	if err != nil {
		h.fail(w, r, "list roles", err)
		return
	}
	writeOK(w, http.StatusOK, descRoles, items)
}
