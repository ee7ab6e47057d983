package cli

import (
	"context"

	"github.com/dmitrijs2005/useradmin/internal/client/views"
	"github.com/dmitrijs2005/useradmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// readSecret prompts for a password and returns it as a string, wiping the
// raw bytes.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// showRegister fills in the registration form and submits it. Local
// validation errors are printed and leave the user on the form's route.
func (a *App) showRegister(ctx context.Context) (views.Outcome, error) {
	v := a.register
	a.println("== Register ==")
	v.Mount(ctx)
	if v.State == views.StateError {
		a.println(v.Message)
		return views.Outcome{}, nil
	}

	var err error
	if v.Form.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return views.Outcome{}, err
	}
	if v.Form.Password, err = a.readSecret("Password"); err != nil {
		return views.Outcome{}, err
	}
	if v.Form.Confirm, err = a.readSecret("Confirm password"); err != nil {
		return views.Outcome{}, err
	}
	if v.Form.Name, err = getSimpleText(a.reader, "Full name (optional)", a.out); err != nil {
		return views.Outcome{}, err
	}
	if err := a.choose(v.Rank, "Rank"); err != nil {
		return views.Outcome{}, err
	}
	if err := a.choose(v.Roles, "Roles"); err != nil {
		return views.Outcome{}, err
	}

	out := v.Submit(ctx)
	a.println(v.Message)
	return out, nil
}

func (a *App) showLogin(ctx context.Context) (views.Outcome, error) {
	v := a.login
	a.println("== Login ==")
	v.Mount(ctx)

	var err error
	if v.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return views.Outcome{}, err
	}
	if v.Password, err = a.readSecret("Password"); err != nil {
		return views.Outcome{}, err
	}

	out := v.Submit(ctx)
	if v.Message != "" {
		a.println(v.Message)
	}
	return out, nil
}

// Logout clears the session and returns to the login form.
func (a *App) Logout(ctx context.Context) error {
	out, err := a.dashboard.Logout(ctx)
	if err != nil {
		return err
	}
	a.println("Logged out.")
	return a.Open(ctx, out.Navigate)
}
