// Package models holds the data the console exchanges with the backend:
// user snapshots, LOV references and the request bodies it sends.
package models

import (
	"fmt"
	"time"
)

// LovRef is a list-of-values reference: one rank or one role.
type LovRef struct {
	UUID string `json:"uuid"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (l LovRef) Validate() error {
	if l.UUID == "" {
		return fmt.Errorf("%w: uuid", ErrMissingField)
	}
	return nil
}

// UserSummary is an immutable snapshot of a user as the backend reports it.
// Rank is optional; Roles may be empty.
type UserSummary struct {
	UUID        string    `json:"uuid"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Rank        *LovRef   `json:"rank"`
	Roles       []LovRef  `json:"roles"`
	DateCreated time.Time `json:"date_created"`
}

// Validate rejects snapshots missing the fields the views rely on.
func (u *UserSummary) Validate() error {
	if u == nil {
		return fmt.Errorf("%w: user", ErrMissingField)
	}
	if u.UUID == "" {
		return fmt.Errorf("%w: uuid", ErrMissingField)
	}
	if u.Username == "" {
		return fmt.Errorf("%w: username", ErrMissingField)
	}
	if u.Rank != nil {
		if err := u.Rank.Validate(); err != nil {
			return fmt.Errorf("rank: %w", err)
		}
	}
	for i, r := range u.Roles {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("roles[%d]: %w", i, err)
		}
	}
	return nil
}

// DisplayName falls back to the username when no name was given.
func (u *UserSummary) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// RankUUID returns the rank identifier or "" when the user has no rank.
func (u *UserSummary) RankUUID() string {
	if u.Rank == nil {
		return ""
	}
	return u.Rank.UUID
}

// RoleUUIDs unwraps the roles to bare identifiers.
func (u *UserSummary) RoleUUIDs() []string {
	ids := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		ids = append(ids, r.UUID)
	}
	return ids
}

// UsersListItem is one row of the dashboard table.
type UsersListItem = UserSummary
