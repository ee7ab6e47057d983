// Package models holds the backend's persisted records and the JSON views
// it answers with.
package models

import "time"

// User is a stored account. Rank and roles are kept as LOV ids; services
// resolve them into Lov values for responses.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	RankID       *string
	RoleIDs      []string
	CreatedAt    time.Time
}

// UserView is the public shape of a user: no password hash, LOVs resolved.
type UserView struct {
	UUID        string    `json:"uuid"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Rank        *Lov      `json:"rank"`
	Roles       []Lov     `json:"roles"`
	DateCreated time.Time `json:"date_created"`
}

// LoginView is the payload of a successful login.
type LoginView struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}
