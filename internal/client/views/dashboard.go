package views

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/models"
	"github.com/dmitrijs2005/useradmin/internal/client/router"
	"github.com/dmitrijs2005/useradmin/internal/client/session"
	"github.com/dmitrijs2005/useradmin/internal/logging"
)

const (
	countFailedMessage = "Could not fetch user count"
	listFailedMessage  = "Could not fetch users list"
)

var (
	ErrUnknownUser   = errors.New("user is not in the list")
	ErrNothingStaged = errors.New("no delete is awaiting confirmation")
)

type DashboardView struct {
	lifecycle

	api    api.Client
	store  *session.Store
	logger logging.Logger

	State   State
	Message string
	User    *models.UserSummary
	Count   int
	Users   []models.UsersListItem

	// Confirming is set while a delete is staged; Staged is its target.
	Confirming bool
	Staged     string
}

func NewDashboardView(c api.Client, store *session.Store, logger logging.Logger) *DashboardView {
	return &DashboardView{api: c, store: store, logger: logger}
}

// Mount checks the session, then fetches the count and the list. The two
// fetches are independent and run concurrently.
func (v *DashboardView) Mount(ctx context.Context) Outcome {
	gen := v.mount()
	v.State, v.Message = StateLoading, ""
	v.User, v.Count, v.Users = nil, 0, nil
	v.Cancel()

	cur, err := v.store.Current(ctx)
	if err != nil {
		v.logger.Error(ctx, "dashboard: reading session failed", "error", err)
	}
	if err != nil || cur == nil {
		return Outcome{Navigate: router.PathLogin}
	}
	v.User = cur.User

	var (
		countRes api.Result[int]
		listRes  api.Result[[]models.UsersListItem]
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		countRes, err = v.api.GetUserCount(ctx, cur.Token)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		listRes, err = v.api.GetUsersList(ctx, cur.Token)
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		return nil
	})
	err = g.Wait()

	if !v.live(gen) {
		return Outcome{}
	}

	switch {
	case err != nil:
		v.logger.Error(ctx, "dashboard: loading failed", "error", err)
		v.fail(GenericErrorMessage)
	case !countRes.OK:
		v.fail(failureText(nil, countRes.Message, countFailedMessage))
	case !listRes.OK:
		v.fail(failureText(nil, listRes.Message, listFailedMessage))
	default:
		v.Count = countRes.Data
		v.Users = listRes.Data
		v.State = StateReady
	}
	return Outcome{}
}

func (v *DashboardView) fail(msg string) {
	v.State = StateError
	v.Message = msg
}

// Stage marks a user for deletion; nothing is sent until Confirm.
func (v *DashboardView) Stage(uuid string) error {
	if !slices.ContainsFunc(v.Users, func(u models.UsersListItem) bool { return u.UUID == uuid }) {
		return fmt.Errorf("%w: %s", ErrUnknownUser, uuid)
	}
	v.Confirming = true
	v.Staged = uuid
	return nil
}

// Cancel drops the staged delete without any network call.
func (v *DashboardView) Cancel() {
	v.Confirming = false
	v.Staged = ""
}

// Confirm deletes the staged user. On success only that row leaves the local
// list; Count keeps the value fetched at mount. A failed delete keeps the row
// and is only logged.
func (v *DashboardView) Confirm(ctx context.Context) error {
	if !v.Confirming {
		return ErrNothingStaged
	}
	uuid := v.Staged
	v.Cancel()

	gen := v.current()
	res, err := v.api.DeleteUser(ctx, uuid)
	if !v.live(gen) {
		return nil
	}
	if err != nil || !res.OK {
		v.logger.Warn(ctx, "delete user failed", "uuid", uuid, "message", res.Message, "error", err)
		return nil
	}

	v.Users = slices.DeleteFunc(v.Users, func(u models.UsersListItem) bool { return u.UUID == uuid })
	return nil
}

// Logout clears the session and sends the user to the login view.
func (v *DashboardView) Logout(ctx context.Context) (Outcome, error) {
	v.Unmount()
	if err := v.store.Clear(ctx); err != nil {
		return Outcome{}, fmt.Errorf("clear session: %w", err)
	}
	return Outcome{Navigate: router.PathLogin}, nil
}

// EditTarget is the profile route for a row's "Edit" action.
func (v *DashboardView) EditTarget(uuid string) string {
	return router.ProfileTarget(uuid)
}
