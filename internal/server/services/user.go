// Package services contains the backend's business logic: account
// registration and login, profile reads and edits, the user list, and the
// rank and role lists.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/useradmin/internal/common"
	"github.com/dmitrijs2005/useradmin/internal/server/auth"
	"github.com/dmitrijs2005/useradmin/internal/server/config"
	"github.com/dmitrijs2005/useradmin/internal/server/models"
	"github.com/dmitrijs2005/useradmin/internal/server/repositories/repomanager"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// Caller-facing messages.
const (
	msgMissingFields      = "Missing required fields"
	msgMissingCredentials = "Missing credentials"
	msgPasswordTooShort   = "Password must be at least 6 characters"
	msgUsernameTaken      = "Username already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
	msgUnknownRank        = "Unknown rank"
	msgUnknownRole        = "Unknown role"
	msgTokenMissing       = "Token is missing!"
	msgTokenInvalid       = "Token is invalid!"
)

type RegisterInput struct {
	Username string
	Password string
	Name     string
	Rank     string
	Roles    []string
}

type ProfileInput struct {
	UUID  string
	Name  string
	Rank  string
	Roles []string
}

// UserService provides the account operations:
// - Register / Login: create users and issue bearer tokens
// - Profile / UpdateProfile: read and edit one user by id
// - Count / List / Delete: the dashboard's view of all users
type UserService struct {
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the request, hashes the password and stores the user
// with its roles in one unit of work.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.UserView, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" || in.Rank == "" || len(in.Roles) == 0 {
		return nil, fail(common.ErrorValidation, msgMissingFields)
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, fail(common.ErrorValidation, msgPasswordTooShort)
	}

	cat, err := loadCatalog(ctx, s.repomanager.Lovs())
	if err != nil {
		return nil, err
	}
	rankID, roleIDs, err := cat.check(in.Rank, in.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Name: strings.TrimSpace(in.Name), PasswordHash: hash, RankID: rankID}
	err = s.repomanager.InTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if _, err := r.Users().Create(ctx, user); err != nil {
			return err
		}
		user.RoleIDs = roleIDs
		return r.Users().SetRoles(ctx, user.ID, roleIDs)
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, fail(common.ErrorConflict, msgUsernameTaken)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return cat.view(user), nil
}

// Login checks the credentials and returns a fresh token with the user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.LoginView, error) {
	if username == "" || password == "" {
		return nil, fail(common.ErrorValidation, msgMissingCredentials)
	}

	user, err := s.repomanager.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fail(common.ErrorUnauthorized, msgInvalidCredentials)
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("error checking password: %w", err)
	}
	if !ok {
		return nil, fail(common.ErrorUnauthorized, msgInvalidCredentials)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	cat, err := loadCatalog(ctx, s.repomanager.Lovs())
	if err != nil {
		return nil, err
	}

	return &models.LoginView{Token: token, User: cat.view(user)}, nil
}

// Authenticate returns the user id carried by a bearer token.
func (s *UserService) Authenticate(token string) (string, error) {
	if token == "" {
		return "", fail(common.ErrorUnauthorized, msgTokenMissing)
	}
	id, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", &Error{Kind: errors.Join(common.ErrorUnauthorized, err), Message: msgTokenInvalid}
	}
	return id, nil
}

func (s *UserService) Profile(ctx context.Context, id string) (*models.UserView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fail(common.ErrorNotFound, msgUserNotFound)
	}

	user, err := s.repomanager.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fail(common.ErrorNotFound, msgUserNotFound)
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	cat, err := loadCatalog(ctx, s.repomanager.Lovs())
	if err != nil {
		return nil, err
	}
	return cat.view(user), nil
}

// UpdateProfile rewrites name, rank and roles of the user named by in.UUID.
// An empty rank clears it.
func (s *UserService) UpdateProfile(ctx context.Context, in ProfileInput) error {
	if _, err := uuid.Parse(in.UUID); err != nil {
		return fail(common.ErrorNotFound, msgUserNotFound)
	}

	cat, err := loadCatalog(ctx, s.repomanager.Lovs())
	if err != nil {
		return err
	}

	var rankID *string
	if in.Rank != "" {
		if _, ok := cat.ranks[in.Rank]; !ok {
			return fail(common.ErrorValidation, msgUnknownRank)
		}
		rankID = &in.Rank
	}
	roleIDs, err := cat.checkRoles(in.Roles)
	if err != nil {
		return err
	}

	err = s.repomanager.InTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if err := r.Users().UpdateProfile(ctx, in.UUID, strings.TrimSpace(in.Name), rankID); err != nil {
			return err
		}
		return r.Users().SetRoles(ctx, in.UUID, roleIDs)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fail(common.ErrorNotFound, msgUserNotFound)
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

func (s *UserService) Count(ctx context.Context) (int, error) {
	n, err := s.repomanager.Users().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return n, nil
}

// List returns every user, newest first. The result is never nil.
func (s *UserService) List(ctx context.Context) ([]*models.UserView, error) {
	list, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	cat, err := loadCatalog(ctx, s.repomanager.Lovs())
	if err != nil {
		return nil, err
	}

	views := make([]*models.UserView, 0, len(list))
	for _, u := range list {
		views = append(views, cat.view(u))
	}
	return views, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fail(common.ErrorNotFound, msgUserNotFound)
	}
	if err := s.repomanager.Users().Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fail(common.ErrorNotFound, msgUserNotFound)
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

func (c *catalog) check(rank string, roles []string) (*string, []string, error) {
	if _, ok := c.ranks[rank]; !ok {
		return nil, nil, fail(common.ErrorValidation, msgUnknownRank)
	}
	roleIDs, err := c.checkRoles(roles)
	if err != nil {
		return nil, nil, err
	}
	return &rank, roleIDs, nil
}

// checkRoles verifies every id and drops duplicates, keeping first-seen order.
func (c *catalog) checkRoles(roles []string) ([]string, error) {
	seen := make(map[string]bool, len(roles))
	ids := make([]string, 0, len(roles))
	for _, id := range roles {
		if _, ok := c.roles[id]; !ok {
			return nil, fail(common.ErrorValidation, msgUnknownRole)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
