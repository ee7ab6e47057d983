// Package users stores accounts and their role assignments.
package users

import (
	"context"

	"github.com/dmitrijs2005/useradmin/internal/server/models"
)

// Repository is the account store. Lookups of missing rows return
// common.ErrorNotFound; a taken username on Create returns common.ErrorConflict.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name string, rankID *string) error
	SetRoles(ctx context.Context, userID string, roleIDs []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// List returns every user, newest first.
	List(ctx context.Context) ([]*models.User, error)
}
