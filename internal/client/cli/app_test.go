package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/models"
	"github.com/dmitrijs2005/useradmin/internal/client/router"
	"github.com/dmitrijs2005/useradmin/internal/client/session"
	"github.com/dmitrijs2005/useradmin/internal/logging"
)

var (
	captain = models.LovRef{UUID: "rank-1", Code: "CPT", Name: "Captain"}
	major   = models.LovRef{UUID: "rank-2", Code: "MAJ", Name: "Major"}
	admin   = models.LovRef{UUID: "role-1", Code: "ADM", Name: "Administrator"}
	ops     = models.LovRef{UUID: "role-2", Code: "OPS", Name: "Operations"}
)

func summary(uuid, username string) models.UserSummary {
	return models.UserSummary{
		UUID: uuid, Username: username, Name: strings.ToUpper(username),
		Rank: &captain, Roles: []models.LovRef{admin},
		DateCreated: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// stubAPI answers like a healthy backend holding anna, boris and carl.
type stubAPI struct {
	deleted    []string
	registered []models.RegistrationRequest
	updated    []models.ProfileUpdateRequest
	deleteOK   bool
}

func (s *stubAPI) Register(_ context.Context, req models.RegistrationRequest) (api.Result[api.Empty], error) {
	s.registered = append(s.registered, req)
	return api.Result[api.Empty]{OK: true}, nil
}

func (s *stubAPI) Login(_ context.Context, c models.Credentials) (api.Result[models.LoginData], error) {
	if c.Password != "secret" {
		return api.Result[models.LoginData]{Message: "Invalid credentials"}, nil
	}
	u := summary("a", c.Username)
	return api.Result[models.LoginData]{OK: true, Data: models.LoginData{Token: "tok", User: &u}}, nil
}

func (s *stubAPI) GetProfile(_ context.Context, uuid string) (api.Result[models.UserSummary], error) {
	return api.Result[models.UserSummary]{OK: true, Data: summary(uuid, "anna")}, nil
}

func (s *stubAPI) UpdateProfile(_ context.Context, req models.ProfileUpdateRequest) (api.Result[api.Empty], error) {
	s.updated = append(s.updated, req)
	return api.Result[api.Empty]{OK: true}, nil
}

func (s *stubAPI) GetUserCount(context.Context, string) (api.Result[int], error) {
	return api.Result[int]{OK: true, Data: 3}, nil
}

func (s *stubAPI) GetUsersList(context.Context, string) (api.Result[[]models.UsersListItem], error) {
	return api.Result[[]models.UsersListItem]{OK: true, Data: []models.UsersListItem{
		summary("a", "anna"), summary("b", "boris"), summary("c", "carl"),
	}}, nil
}

func (s *stubAPI) DeleteUser(_ context.Context, uuid string) (api.Result[api.Empty], error) {
	s.deleted = append(s.deleted, uuid)
	if !s.deleteOK {
		return api.Result[api.Empty]{Message: "User not found"}, nil
	}
	return api.Result[api.Empty]{OK: true}, nil
}

func (s *stubAPI) GetRanks(context.Context) ([]models.LovRef, error) {
	return []models.LovRef{captain, major}, nil
}

func (s *stubAPI) GetRoles(context.Context) ([]models.LovRef, error) {
	return []models.LovRef{admin, ops}, nil
}

type harness struct {
	app   *App
	api   *stubAPI
	store *session.Store
	out   *bytes.Buffer
}

// newHarness builds an App reading the given lines as if typed. Passwords
// come through the same reader because stdin is treated as piped.
func newHarness(t *testing.T, lines ...string) *harness {
	t.Helper()
	stubTerminal(t, false, nil)

	h := &harness{
		api:   &stubAPI{deleteOK: true},
		store: session.NewStore(session.NewMemoryPersister()),
		out:   &bytes.Buffer{},
	}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	h.app = newApp(h.api, h.store, logging.Nop(), in, h.out)
	return h
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	u := summary("a", "anna")
	require.NoError(t, h.store.SetSession(context.Background(), "tok", &u))
}

func TestOpen_ProtectedRouteGoesThroughLogin(t *testing.T) {
	h := newHarness(t, "anna", "secret")

	require.NoError(t, h.app.Open(context.Background(), router.PathDashboard))

	assert.Equal(t, router.PathDashboard, h.app.current.Path)
	text := h.out.String()
	assert.Contains(t, text, "== Login ==")
	assert.Contains(t, text, "Welcome, ANNA!")
	assert.Contains(t, text, "Rank: "+captain.Name)
	assert.Contains(t, text, "Roles: "+admin.Name)
	assert.Contains(t, text, "Total registered users: 3")
	assert.Contains(t, text, "boris")

	u, err := h.store.User(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anna", u.Username)
}

func TestOpen_FailedLoginStaysOnLogin(t *testing.T) {
	h := newHarness(t, "anna", "wrong")

	require.NoError(t, h.app.Open(context.Background(), router.PathRoot))

	assert.Equal(t, router.PathLogin, h.app.current.Path)
	assert.Contains(t, h.out.String(), "Invalid credentials")
	assert.False(t, h.app.isLoggedIn(context.Background()))
}

func TestOpen_UnknownRoute(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.app.Open(context.Background(), "/nowhere"), router.ErrUnknownRoute)
}

func TestRegisterThenLogin(t *testing.T) {
	h := newHarness(t,
		"newbie", "secret", "secret", "New Bie",
		"/cap", "CPT",
		"OPS", "ADM", "OPS", "",
		"newbie", "secret",
	)

	require.NoError(t, h.app.Open(context.Background(), router.PathRegister))

	require.Len(t, h.api.registered, 1)
	req := h.api.registered[0]
	assert.Equal(t, "newbie", req.Username)
	assert.Equal(t, "rank-1", req.Rank)
	assert.Equal(t, []string{"role-1"}, req.Role)

	text := h.out.String()
	assert.Contains(t, text, "Registration successful! Redirecting to login...")
	assert.Contains(t, text, "== Login ==")
	assert.Equal(t, router.PathDashboard, h.app.current.Path)
}

func TestRegister_MismatchStaysOnForm(t *testing.T) {
	h := newHarness(t, "newbie", "secret", "secreT", "", "CPT", "ADM", "")

	require.NoError(t, h.app.Open(context.Background(), router.PathRegister))

	assert.Empty(t, h.api.registered)
	assert.Contains(t, h.out.String(), "Passwords do not match")
	assert.Equal(t, router.PathRegister, h.app.current.Path)
}

func TestDelete_ConfirmRemovesRow(t *testing.T) {
	h := newHarness(t, "y")
	h.login(t)
	ctx := context.Background()
	require.NoError(t, h.app.Open(ctx, router.PathDashboard))

	require.NoError(t, h.app.Delete(ctx, "b"))

	assert.Equal(t, []string{"b"}, h.api.deleted)
	assert.Equal(t, []string{"a", "c"}, uuids(h.app.dashboard.Users))
	assert.Equal(t, 3, h.app.dashboard.Count)
}

func TestDelete_DeclineMakesNoCall(t *testing.T) {
	h := newHarness(t, "n")
	h.login(t)
	ctx := context.Background()
	require.NoError(t, h.app.Open(ctx, router.PathDashboard))

	require.NoError(t, h.app.Delete(ctx, "b"))

	assert.Empty(t, h.api.deleted)
	assert.False(t, h.app.dashboard.Confirming)
	assert.Len(t, h.app.dashboard.Users, 3)
}

func TestDelete_RequiresDashboard(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.app.Delete(context.Background(), "b"), ErrNotOnDashboard)
}

func TestProfile_EditOwn(t *testing.T) {
	h := newHarness(t, "y", "Anna Karenina", "MAJ", "OPS", "")
	h.login(t)
	ctx := context.Background()

	require.NoError(t, h.app.Open(ctx, router.PathProfile))

	require.Len(t, h.api.updated, 1)
	assert.Equal(t, models.ProfileUpdateRequest{
		UUID: "a", Name: "Anna Karenina", Rank: "rank-2", Role: []string{"role-1", "role-2"},
	}, h.api.updated[0])
	assert.Contains(t, h.out.String(), "Profile updated successfully!")

	u, err := h.store.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Anna Karenina", u.Name)
	assert.Equal(t, "rank-2", u.RankUUID())
}

func TestProfile_ViewOnly(t *testing.T) {
	h := newHarness(t, "n")
	h.login(t)

	require.NoError(t, h.app.Open(context.Background(), router.ProfileTarget("b")))

	assert.Empty(t, h.api.updated)
	assert.Equal(t, "b", h.app.profile.Target)
	assert.Contains(t, h.out.String(), "Captain")
}

func TestLogout_ClearsSessionAndShowsLogin(t *testing.T) {
	h := newHarness(t, "", "")
	h.login(t)
	ctx := context.Background()
	require.NoError(t, h.app.Open(ctx, router.PathDashboard))

	require.NoError(t, h.app.Logout(ctx))

	assert.False(t, h.app.isLoggedIn(ctx))
	assert.Equal(t, router.PathLogin, h.app.current.Path)
	assert.Contains(t, h.out.String(), "Logged out.")
}

func TestStatus(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	assert.Empty(t, h.app.status(ctx))

	h.login(t)
	h.app.current = router.Route{Path: router.PathDashboard}
	assert.Equal(t, "(anna /dashboard)", h.app.status(ctx))
}

func uuids(items []models.UsersListItem) []string {
	out := make([]string, 0, len(items))
	for _, u := range items {
		out = append(out, u.UUID)
	}
	return out
}
