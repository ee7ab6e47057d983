package cli

import (
	"context"

	"github.com/dmitrijs2005/useradmin/internal/client/router"
	"github.com/dmitrijs2005/useradmin/internal/client/views"
)

// showProfile shows the addressed profile and offers to edit it. Empty
// answers keep the current values.
func (a *App) showProfile(ctx context.Context, r router.Route) (views.Outcome, error) {
	v := a.profile
	out := v.Mount(ctx, r)
	if out.Navigate != "" {
		return out, nil
	}

	a.println("== Profile ==")
	if v.State == views.StateError {
		a.println(v.Message)
		return views.Outcome{}, nil
	}
	a.renderProfile(v.Profile)

	edit, err := Confirm(a.reader, "Edit this profile?", a.out)
	if err != nil || !edit {
		return views.Outcome{}, err
	}

	name, err := getSimpleText(a.reader, "Full name (empty to keep)", a.out)
	if err != nil {
		return views.Outcome{}, err
	}
	if name != "" {
		v.Name = name
	}
	if err := a.choose(v.Rank, "Rank"); err != nil {
		return views.Outcome{}, err
	}
	if err := a.choose(v.Roles, "Roles"); err != nil {
		return views.Outcome{}, err
	}

	out = v.Submit(ctx)
	a.println(v.Message)
	if v.Profile != nil {
		a.renderProfile(v.Profile)
	}
	return out, nil
}
