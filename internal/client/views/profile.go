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
	ProfileUpdatedMessage = "Profile updated successfully!"
	profileLoadFailed     = "Error loading profile"
	profileUpdateFailed   = "Update failed"
)

// ProfileView edits one user. The target comes from the route's uuid
// parameter; without one the logged-in user edits themselves.
type ProfileView struct {
	lifecycle

	api    api.Client
	store  *session.Store
	logger logging.Logger

	State   State
	Message string
	Target  string
	Self    bool
	Profile *models.UserSummary
	Name    string
	Rank    *Picker
	Roles   *Picker
}

func NewProfileView(c api.Client, store *session.Store, logger logging.Logger) *ProfileView {
	rank, roles := emptyPickers()
	return &ProfileView{api: c, store: store, logger: logger, Rank: rank, Roles: roles}
}

// Mount loads the target's profile and both pickers, preselecting the
// target's current rank and roles.
func (v *ProfileView) Mount(ctx context.Context, route router.Route) Outcome {
	gen := v.mount()
	v.State, v.Message = StateLoading, ""
	v.Profile, v.Name = nil, ""
	v.Rank, v.Roles = emptyPickers()

	cur, err := v.store.Current(ctx)
	if err != nil {
		v.logger.Error(ctx, "profile: reading session failed", "error", err)
	}
	if err != nil || cur == nil {
		return Outcome{Navigate: router.PathLogin}
	}

	v.Target = route.UUID()
	if v.Target == "" {
		v.Target = cur.User.UUID
	}
	v.Self = v.Target == cur.User.UUID

	res, err := v.api.GetProfile(ctx, v.Target)
	if !v.live(gen) {
		return Outcome{}
	}
	if err != nil {
		v.logger.Error(ctx, "profile: load failed", "uuid", v.Target, "error", err)
	}
	if err != nil || !res.OK {
		v.State = StateError
		v.Message = failureText(err, res.Message, profileLoadFailed)
		return Outcome{}
	}

	rank, roles, err := loadPickers(ctx, v.api)
	if !v.live(gen) {
		return Outcome{}
	}
	if err != nil {
		v.logger.Warn(ctx, "profile: loading pickers failed", "error", err)
		v.State = StateError
		v.Message = lookupText(err)
		return Outcome{}
	}

	profile := res.Data
	v.Profile = &profile
	v.Name = profile.Name
	v.Rank, v.Roles = rank, roles
	if profile.Rank != nil {
		v.Rank.Preselect(*profile.Rank)
	}
	v.Roles.Preselect(profile.Roles...)
	v.State = StateReady
	return Outcome{}
}

// Submit sends the edited fields. When the target is the logged-in user the
// cached session user picks up the new name, rank and roles.
func (v *ProfileView) Submit(ctx context.Context) Outcome {
	if v.State != StateReady {
		return Outcome{}
	}

	name := strings.TrimSpace(v.Name)
	rank := v.Rank.Ref()
	roles := v.Roles.Selected()

	gen := v.current()
	res, err := v.api.UpdateProfile(ctx, models.ProfileUpdateRequest{
		UUID: v.Target,
		Name: name,
		Rank: v.Rank.Value(),
		Role: v.Roles.UUIDs(),
	})
	if !v.live(gen) {
		return Outcome{}
	}
	if err != nil {
		v.logger.Error(ctx, "profile: update failed", "uuid", v.Target, "error", err)
	}
	if err != nil || !res.OK {
		v.Message = failureText(err, res.Message, profileUpdateFailed)
		return Outcome{}
	}

	v.Message = ProfileUpdatedMessage
	v.Profile.Name, v.Profile.Rank, v.Profile.Roles = name, rank, roles

	if v.Self {
		if _, err := v.store.ApplyProfile(ctx, v.Target, name, rank, roles); err != nil {
			v.logger.Error(ctx, "profile: updating session failed", "error", err)
		}
	}
	return Outcome{}
}
