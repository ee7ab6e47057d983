package views

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/models"
	"github.com/dmitrijs2005/useradmin/internal/client/router"
	"github.com/dmitrijs2005/useradmin/internal/client/session"
	"github.com/dmitrijs2005/useradmin/internal/logging"
)

const (
	loginFailedMessage  = "Login failed"
	credentialsRequired = "Username and password are required"
)

type LoginView struct {
	lifecycle

	api    api.Client
	store  *session.Store
	logger logging.Logger

	State    State
	Message  string
	Username string
	Password string
}

func NewLoginView(c api.Client, store *session.Store, logger logging.Logger) *LoginView {
	return &LoginView{api: c, store: store, logger: logger}
}

func (v *LoginView) Mount(context.Context) {
	v.mount()
	v.State = StateReady
	v.Message = ""
	v.Username, v.Password = "", ""
}

// Submit logs in and stores the returned session.
func (v *LoginView) Submit(ctx context.Context) Outcome {
	if strings.TrimSpace(v.Username) == "" || v.Password == "" {
		v.Message = credentialsRequired
		return Outcome{}
	}

	gen := v.current()
	res, err := v.api.Login(ctx, models.Credentials{
		Username: strings.TrimSpace(v.Username),
		Password: v.Password,
	})
	v.Password = ""
	if !v.live(gen) {
		return Outcome{}
	}
	if err != nil {
		v.logger.Error(ctx, "login failed", "error", err)
	}
	if err != nil || !res.OK {
		v.Message = failureText(err, res.Message, loginFailedMessage)
		return Outcome{}
	}

	if err := v.store.SetSession(ctx, res.Data.Token, res.Data.User); err != nil {
		v.logger.Error(ctx, "storing session failed", "error", err)
		v.Message = GenericErrorMessage
		return Outcome{}
	}

	v.Message = ""
	return Outcome{Navigate: router.PathDashboard}
}
