package views

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/models"
	"github.com/dmitrijs2005/useradmin/internal/client/session"
	"github.com/dmitrijs2005/useradmin/internal/logging"
)

// fakeAPI records calls and answers with canned results. onCall runs before
// each answer, letting a test act "while the request is in flight".
type fakeAPI struct {
	mu    sync.Mutex
	calls []api.Operation

	registerRes api.Result[api.Empty]
	registerErr error
	loginRes    api.Result[models.LoginData]
	loginErr    error
	profileRes  api.Result[models.UserSummary]
	profileErr  error
	updateRes   api.Result[api.Empty]
	updateErr   error
	countRes    api.Result[int]
	countErr    error
	listRes     api.Result[[]models.UsersListItem]
	listErr     error
	deleteRes   api.Result[api.Empty]
	deleteErr   error
	ranks       []models.LovRef
	ranksErr    error
	roles       []models.LovRef
	rolesErr    error

	lastRegister models.RegistrationRequest
	lastUpdate   models.ProfileUpdateRequest
	lastProfile  string
	lastDelete   string
	lastToken    string

	onCall func(op api.Operation)
}

func (f *fakeAPI) record(op api.Operation) {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	hook := f.onCall
	f.mu.Unlock()
	if hook != nil {
		hook(op)
	}
}

func (f *fakeAPI) Calls() []api.Operation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.Operation(nil), f.calls...)
}

func (f *fakeAPI) Register(_ context.Context, req models.RegistrationRequest) (api.Result[api.Empty], error) {
	f.record(api.OpRegister)
	f.lastRegister = req
	return f.registerRes, f.registerErr
}

func (f *fakeAPI) Login(_ context.Context, _ models.Credentials) (api.Result[models.LoginData], error) {
	f.record(api.OpLogin)
	return f.loginRes, f.loginErr
}

func (f *fakeAPI) GetProfile(_ context.Context, uuid string) (api.Result[models.UserSummary], error) {
	f.record(api.OpGetProfile)
	f.lastProfile = uuid
	return f.profileRes, f.profileErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, req models.ProfileUpdateRequest) (api.Result[api.Empty], error) {
	f.record(api.OpUpdateProfile)
	f.lastUpdate = req
	return f.updateRes, f.updateErr
}

func (f *fakeAPI) GetUserCount(_ context.Context, token string) (api.Result[int], error) {
	f.record(api.OpUserCount)
	f.mu.Lock()
	f.lastToken = token
	f.mu.Unlock()
	return f.countRes, f.countErr
}

func (f *fakeAPI) GetUsersList(_ context.Context, _ string) (api.Result[[]models.UsersListItem], error) {
	f.record(api.OpUsersList)
	return f.listRes, f.listErr
}

func (f *fakeAPI) DeleteUser(_ context.Context, uuid string) (api.Result[api.Empty], error) {
	f.record(api.OpDeleteUser)
	f.lastDelete = uuid
	return f.deleteRes, f.deleteErr
}

func (f *fakeAPI) GetRanks(context.Context) ([]models.LovRef, error) {
	f.record(api.OpRanks)
	return f.ranks, f.ranksErr
}

func (f *fakeAPI) GetRoles(context.Context) ([]models.LovRef, error) {
	f.record(api.OpRoles)
	return f.roles, f.rolesErr
}

var (
	rankCaptain = models.LovRef{UUID: "rank-1", Code: "CPT", Name: "Captain"}
	rankMajor   = models.LovRef{UUID: "rank-2", Code: "MAJ", Name: "Major"}
	roleAdmin   = models.LovRef{UUID: "role-1", Code: "ADM", Name: "Administrator"}
	roleOps     = models.LovRef{UUID: "role-2", Code: "OPS", Name: "Operations"}
	roleAudit   = models.LovRef{UUID: "role-3", Code: "AUD", Name: "Auditor"}
)

func withLOVs(f *fakeAPI) *fakeAPI {
	f.ranks = []models.LovRef{rankCaptain, rankMajor}
	f.roles = []models.LovRef{roleAdmin, roleOps, roleAudit}
	return f
}

func user(uuid, username string) models.UserSummary {
	return models.UserSummary{
		UUID:        uuid,
		Username:    username,
		Name:        username + " name",
		Rank:        &rankCaptain,
		Roles:       []models.LovRef{roleAdmin},
		DateCreated: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func loggedIn(t *testing.T, u models.UserSummary) *session.Store {
	t.Helper()
	s := session.NewStore(session.NewMemoryPersister())
	require.NoError(t, s.SetSession(context.Background(), "tok-1", &u))
	return s
}

func nop() logging.Logger { return logging.Nop() }
