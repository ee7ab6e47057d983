package models

import "errors"

// ErrMissingField is wrapped by every payload validation failure.
var ErrMissingField = errors.New("missing field")

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationRequest is sent as-is; Rank and Role hold bare uuids, not LovRefs.
type RegistrationRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Name     string   `json:"name,omitempty"`
	Rank     string   `json:"rank"`
	Role     []string `json:"role"`
}

// ProfileUpdateRequest targets the user identified by UUID.
type ProfileUpdateRequest struct {
	UUID string   `json:"uuid"`
	Name string   `json:"name"`
	Rank string   `json:"rank"`
	Role []string `json:"role"`
}

// IdentifierRequest is the body of get_profile and delete_user.
type IdentifierRequest struct {
	UUID string `json:"uuid"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

func (d *LoginData) Validate() error {
	if d.Token == "" {
		return errors.Join(ErrMissingField, errors.New("token"))
	}
	return d.User.Validate()
}
