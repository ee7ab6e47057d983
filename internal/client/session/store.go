// Package session holds the console's notion of who is logged in: a bearer
// token and the last user snapshot the backend returned, persisted together.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useradmin/internal/client/models"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

var ErrInvalidSession = errors.New("invalid session")

// Session is the token/user pair. Neither field is ever set without the other.
type Session struct {
	Token string
	User  *models.UserSummary
}

// Store is the session context object handed to every view. It is the only
// code that touches the Persister.
type Store struct {
	p Persister
}

func NewStore(p Persister) *Store {
	return &Store{p: p}
}

// SetSession stores a freshly logged-in session, replacing any previous one.
func (s *Store) SetSession(ctx context.Context, token string, user *models.UserSummary) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidSession)
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return s.save(ctx, token, user)
}

// Current returns the stored session, or nil when there is none. A
// half-written pair (one key without the other) counts as no session.
func (s *Store) Current(ctx context.Context) (*Session, error) {
	token, err := s.p.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	raw, err := s.p.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(raw) == 0 {
		return nil, nil
	}

	var user models.UserSummary
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: stored user: %v", ErrInvalidSession, err)
	}
	return &Session{Token: string(token), User: &user}, nil
}

// Token returns the bearer token or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	cur, err := s.Current(ctx)
	if err != nil || cur == nil {
		return "", err
	}
	return cur.Token, nil
}

// User returns the cached user snapshot or nil when logged out.
func (s *Store) User(ctx context.Context) (*models.UserSummary, error) {
	cur, err := s.Current(ctx)
	if err != nil || cur == nil {
		return nil, err
	}
	return cur.User, nil
}

// Clear removes token and user together.
func (s *Store) Clear(ctx context.Context) error {
	return s.p.Clear(ctx)
}

// ApplyProfile copies an accepted profile edit into the cached user. Only
// name, rank and roles change. It is a no-op returning false when nobody is
// logged in or uuid belongs to someone else.
func (s *Store) ApplyProfile(ctx context.Context, uuid, name string, rank *models.LovRef, roles []models.LovRef) (bool, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return false, err
	}
	if cur == nil || cur.User.UUID != uuid {
		return false, nil
	}

	cur.User.Name = name
	cur.User.Rank = rank
	cur.User.Roles = roles
	if err := s.save(ctx, cur.Token, cur.User); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, token string, user *models.UserSummary) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.p.Set(ctx, map[string][]byte{
		KeyToken: []byte(token),
		KeyUser:  raw,
	})
}
