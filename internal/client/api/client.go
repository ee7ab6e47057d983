package api

import (
	"context"

	"github.com/dmitrijs2005/useradmin/internal/client/models"
)

// Client is the transport-agnostic contract the views depend on.
type Client interface {
	Register(ctx context.Context, req models.RegistrationRequest) (Result[Empty], error)
	Login(ctx context.Context, creds models.Credentials) (Result[models.LoginData], error)
	GetProfile(ctx context.Context, uuid string) (Result[models.UserSummary], error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (Result[Empty], error)
	GetUserCount(ctx context.Context, token string) (Result[int], error)
	GetUsersList(ctx context.Context, token string) (Result[[]models.UsersListItem], error)
	DeleteUser(ctx context.Context, uuid string) (Result[Empty], error)
	GetRanks(ctx context.Context) ([]models.LovRef, error)
	GetRoles(ctx context.Context) ([]models.LovRef, error)
}
