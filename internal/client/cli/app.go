package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/config"
	"github.com/dmitrijs2005/useradmin/internal/client/router"
	"github.com/dmitrijs2005/useradmin/internal/client/session"
	"github.com/dmitrijs2005/useradmin/internal/client/views"
	"github.com/dmitrijs2005/useradmin/internal/filex"
	"github.com/dmitrijs2005/useradmin/internal/logging"
)

// maxHops bounds redirect chains; a chain this long means a routing bug.
const maxHops = 8

var ErrTooManyRedirects = errors.New("too many redirects")

type App struct {
	api    api.Client
	store  *session.Store
	router *router.Router
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB

	register  *views.RegisterView
	login     *views.LoginView
	dashboard *views.DashboardView
	profile   *views.ProfileView

	// current is the route on screen; unmount releases its view.
	current router.Route
	unmount func()
}

// NewApp opens the session database and builds the API client from c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(c.SessionDB)
	if err != nil {
		logger.Error(ctx, "error preparing session directory", "error", err)
		return nil, err
	}

	db, err := session.OpenSQLite(ctx, path)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	client := api.NewHTTPClient(c.ResolveBaseURL(),
		api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}),
		api.WithLogger(logger),
	)
	logger.Debug(ctx, "api client ready", "base_url", client.BaseURL())

	a := newApp(client, session.NewStore(session.NewSQLitePersister(db)), logger, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c api.Client, store *session.Store, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		api:       c,
		store:     store,
		router:    router.New(store),
		logger:    logger,
		reader:    bufio.NewReader(in),
		out:       out,
		register:  views.NewRegisterView(c, logger),
		login:     views.NewLoginView(c, store, logger),
		dashboard: views.NewDashboardView(c, store, logger),
		profile:   views.NewProfileView(c, store, logger),
	}
}

// Run shows the dashboard for a stored session, the login form otherwise,
// then hands over to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to the useradmin console (type 'help' for commands)")

	start := router.PathRoot
	if a.isLoggedIn(ctx) {
		start = router.PathDashboard
	}
	if err := a.Open(ctx, start); err != nil {
		a.logger.Error(ctx, "opening start screen failed", "error", err)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) Close() {
	a.leave()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	tok, err := a.store.Token(ctx)
	return err == nil && tok != ""
}

// status is the REPL prompt decoration: the logged-in user and the screen.
func (a *App) status(ctx context.Context) string {
	s := a.current.Path
	if u, err := a.store.User(ctx); err == nil && u != nil {
		s = u.Username + " " + s
	}
	if s == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", s)
}

// Open navigates to target, following redirects from the guard and from
// the screens themselves.
func (a *App) Open(ctx context.Context, target string) error {
	for i := 0; i < maxHops; i++ {
		d, err := a.router.Resolve(ctx, target)
		if err != nil {
			return err
		}
		if d.Redirected {
			a.logger.Debug(ctx, "redirect", "from", d.From, "to", d.Route.String())
		}

		a.leave()
		a.current = d.Route

		out, err := a.show(ctx, d.Route)
		if err != nil {
			return err
		}
		if out.Navigate == "" {
			return nil
		}
		target = out.Navigate
	}
	return ErrTooManyRedirects
}

func (a *App) leave() {
	if a.unmount != nil {
		a.unmount()
		a.unmount = nil
	}
}

func (a *App) show(ctx context.Context, r router.Route) (views.Outcome, error) {
	switch r.Path {
	case router.PathRegister:
		a.unmount = a.register.Unmount
		return a.showRegister(ctx)
	case router.PathLogin:
		a.unmount = a.login.Unmount
		return a.showLogin(ctx)
	case router.PathDashboard:
		a.unmount = a.dashboard.Unmount
		return a.showDashboard(ctx)
	case router.PathProfile:
		a.unmount = a.profile.Unmount
		return a.showProfile(ctx, r)
	default:
		return views.Outcome{}, fmt.Errorf("%w: %s", router.ErrUnknownRoute, r.Path)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
