package views

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/models"
	"github.com/dmitrijs2005/useradmin/internal/client/router"
	"github.com/dmitrijs2005/useradmin/internal/logging"
)

const MinPasswordLength = 6

// ValidationError is a form problem caught before anything is sent. Its text
// is shown to the user verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrUsernameRequired ValidationError = "Username is required"
	ErrPasswordRequired ValidationError = "Password is required"
	ErrPasswordTooShort ValidationError = "Password must be at least 6 characters"
	ErrPasswordMismatch ValidationError = "Passwords do not match"
	ErrRankRequired     ValidationError = "Please select a rank"
	ErrRoleRequired     ValidationError = "Please select at least one role"
)

const (
	RegisterSuccessMessage = "Registration successful! Redirecting to login..."
	registerFailedMessage  = "Registration failed"
)

type RegisterForm struct {
	Username string
	Password string
	Confirm  string
	Name     string
}

type RegisterView struct {
	lifecycle

	api    api.Client
	logger logging.Logger

	State   State
	Message string
	Form    RegisterForm
	Rank    *Picker
	Roles   *Picker
}

func NewRegisterView(c api.Client, logger logging.Logger) *RegisterView {
	rank, roles := emptyPickers()
	return &RegisterView{api: c, logger: logger, Rank: rank, Roles: roles}
}

// Mount resets the form and loads the rank and role options.
func (v *RegisterView) Mount(ctx context.Context) {
	gen := v.mount()
	v.State = StateLoading
	v.Message = ""
	v.Form = RegisterForm{}

	rank, roles, err := loadPickers(ctx, v.api)
	if !v.live(gen) {
		return
	}
	if err != nil {
		v.logger.Warn(ctx, "register: loading pickers failed", "error", err)
		v.State = StateError
		v.Message = lookupText(err)
		v.Rank, v.Roles = emptyPickers()
		return
	}

	v.Rank, v.Roles = rank, roles
	v.State = StateReady
}

// Validate checks the form locally; the first problem found is returned.
func (v *RegisterView) Validate() error {
	switch {
	case strings.TrimSpace(v.Form.Username) == "":
		return ErrUsernameRequired
	case v.Form.Password == "":
		return ErrPasswordRequired
	case utf8.RuneCountInString(v.Form.Password) < MinPasswordLength:
		return ErrPasswordTooShort
	case v.Form.Password != v.Form.Confirm:
		return ErrPasswordMismatch
	case v.Rank.Value() == "":
		return ErrRankRequired
	case len(v.Roles.UUIDs()) == 0:
		return ErrRoleRequired
	}
	return nil
}

// Submit validates the form and, if it passes, registers the user.
func (v *RegisterView) Submit(ctx context.Context) Outcome {
	if err := v.Validate(); err != nil {
		v.Message = err.Error()
		return Outcome{}
	}

	gen := v.current()
	res, err := v.api.Register(ctx, models.RegistrationRequest{
		Username: strings.TrimSpace(v.Form.Username),
		Password: v.Form.Password,
		Name:     strings.TrimSpace(v.Form.Name),
		Rank:     v.Rank.Value(),
		Role:     v.Roles.UUIDs(),
	})
	if !v.live(gen) {
		return Outcome{}
	}
	if err != nil {
		v.logger.Error(ctx, "register failed", "error", err)
	}
	if err != nil || !res.OK {
		v.Message = failureText(err, res.Message, registerFailedMessage)
		return Outcome{}
	}

	v.Message = RegisterSuccessMessage
	v.Form = RegisterForm{}
	return Outcome{Navigate: router.PathLogin}
}
