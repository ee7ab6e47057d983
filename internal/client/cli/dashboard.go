package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useradmin/internal/client/router"
	"github.com/dmitrijs2005/useradmin/internal/client/views"
)

var ErrNotOnDashboard = errors.New("open the dashboard first")

func (a *App) showDashboard(ctx context.Context) (views.Outcome, error) {
	v := a.dashboard
	out := v.Mount(ctx)
	if out.Navigate != "" {
		return out, nil
	}

	a.println("== Dashboard ==")
	if v.State == views.StateError {
		a.println(v.Message)
		return views.Outcome{}, nil
	}
	a.renderDashboard()
	return views.Outcome{}, nil
}

func (a *App) renderDashboard() {
	v := a.dashboard
	if v.User != nil {
		a.printf("Welcome, %s!\n", v.User.DisplayName())
		a.printf("Rank: %s\n", dash(refName(v.User.Rank)))
		a.printf("Roles: %s\n", dash(refNames(v.User.Roles)))
	}
	a.printf("Total registered users: %d\n\n", v.Count)
	a.renderUsers(v.Users)
}

// Delete stages uuid on the dashboard, asks for confirmation, then confirms
// or cancels. A failed delete leaves the table as it was.
func (a *App) Delete(ctx context.Context, uuid string) error {
	if a.current.Path != router.PathDashboard || a.dashboard.State != views.StateReady {
		return ErrNotOnDashboard
	}

	v := a.dashboard
	if err := v.Stage(uuid); err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete user %s?", uuid), a.out)
	if err != nil || !ok {
		v.Cancel()
		return err
	}

	if err := v.Confirm(ctx); err != nil {
		return err
	}
	a.renderDashboard()
	return nil
}
