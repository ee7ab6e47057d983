// Package router maps console paths to views and keeps logged-out users away
// from the protected ones.
package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

const (
	PathRoot      = "/"
	PathRegister  = "/register"
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathProfile   = "/profile"
)

var ErrUnknownRoute = errors.New("unknown route")

// TokenSource reports the current bearer token, "" when logged out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Route is a resolved navigation target.
type Route struct {
	Path  string
	Query url.Values
}

// UUID returns the "uuid" query parameter, used by the profile view.
func (r Route) UUID() string {
	return r.Query.Get("uuid")
}

func (r Route) String() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

// Decision is the outcome of Resolve: the route to render and, when the guard
// or an alias intervened, the originally requested target.
type Decision struct {
	Route      Route
	Redirected bool
	From       string
}

type routeDef struct {
	protected bool
	alias     string
}

var routes = map[string]routeDef{
	PathRoot:      {alias: PathLogin},
	PathRegister:  {},
	PathLogin:     {},
	PathDashboard: {protected: true},
	PathProfile:   {protected: true},
}

// Router resolves targets against the route table. The guard only checks that
// a token is present; it never asks the backend whether the token is valid.
type Router struct {
	tokens TokenSource
}

func New(tokens TokenSource) *Router {
	return &Router{tokens: tokens}
}

// Protected reports whether path requires a session.
func Protected(path string) bool {
	return routes[path].protected
}

func (r *Router) Resolve(ctx context.Context, target string) (Decision, error) {
	u, err := url.Parse(target)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownRoute, target)
	}

	path := u.Path
	if path == "" {
		path = PathRoot
	}

	def, ok := routes[path]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	if def.alias != "" {
		return redirect(def.alias, target), nil
	}

	if def.protected {
		token, err := r.tokens.Token(ctx)
		if err != nil {
			return Decision{}, fmt.Errorf("read session: %w", err)
		}
		if token == "" {
			return redirect(PathLogin, target), nil
		}
	}

	return Decision{Route: Route{Path: path, Query: u.Query()}}, nil
}

func redirect(to, from string) Decision {
	return Decision{Route: Route{Path: to}, Redirected: true, From: from}
}

// ProfileTarget builds the dashboard's "Edit" link for a user.
func ProfileTarget(uuid string) string {
	if uuid == "" {
		return PathProfile
	}
	return PathProfile + "?" + url.Values{"uuid": {uuid}}.Encode()
}
