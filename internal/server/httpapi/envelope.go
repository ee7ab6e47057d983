package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/useradmin/internal/common"
	"github.com/dmitrijs2005/useradmin/internal/server/services"
)

// SuccessCode marks a successful envelope.
const SuccessCode = 111

const (
	statusOK    = "OK"
	statusError = "ERROR"
)

// Success descriptions. ProfileUpdated is matched verbatim by clients.
const (
	descRegistered     = "User registered successfully"
	descLoggedIn       = "Login successful"
	descProfile        = "Profile fetched successfully"
	descProfileUpdated = "Profile updated successfully"
	descCount          = "User count fetched successfully"
	descList           = "Users fetched successfully"
	descDeleted        = "User deleted successfully"
	descRanks          = "Ranks fetched successfully"
	descRoles          = "Roles fetched successfully"
)

const (
	msgBadBody  = "Invalid request body"
	msgInternal = "Internal server error"
)

// Envelope wraps every response body.
type Envelope struct {
	Code        int    `json:"code"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Message     string `json:"message,omitempty"`
	Data        any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, httpStatus int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(env)
}

func writeOK(w http.ResponseWriter, httpStatus int, description string, data any) {
	writeJSON(w, httpStatus, Envelope{
		Code:        SuccessCode,
		Status:      statusOK,
		Description: description,
		Message:     description,
		Data:        data,
	})
}

func writeFailure(w http.ResponseWriter, httpStatus int, message string) {
	writeJSON(w, httpStatus, Envelope{Code: httpStatus, Status: statusError, Message: message})
}

// writeError maps a service error onto the status it belongs to. Errors that
// carry no caller-facing message are reported as internal.
func writeError(w http.ResponseWriter, err error) {
	httpStatus := statusFor(err)
	msg := services.Message(err)
	if msg == "" || httpStatus == http.StatusInternalServerError {
		msg = msgInternal
	}
	writeFailure(w, httpStatus, msg)
}

func statusFor(err error) int {
	if services.Message(err) == "" {
		return http.StatusInternalServerError
	}
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
