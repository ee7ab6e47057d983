package views

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/router"
)

func mountedRegister(t *testing.T, f *fakeAPI) *RegisterView {
	t.Helper()
	v := NewRegisterView(f, nop())
	v.Mount(context.Background())
	require.Equal(t, StateReady, v.State)
	return v
}

func fillValid(t *testing.T, v *RegisterView) {
	t.Helper()
	v.Form = RegisterForm{Username: "alice", Password: "secret", Confirm: "secret", Name: "Alice"}
	require.NoError(t, v.Rank.Select("rank-1"))
	require.NoError(t, v.Roles.Select("role-1"))
	require.NoError(t, v.Roles.Select("role-3"))
}

func registerCalls(f *fakeAPI) int {
	n := 0
	for _, op := range f.Calls() {
		if op == api.OpRegister {
			n++
		}
	}
	return n
}

func TestRegister_MountLoadsPickers(t *testing.T) {
	f := withLOVs(&fakeAPI{})
	v := mountedRegister(t, f)

	assert.Len(t, v.Rank.Options(), 2)
	assert.Len(t, v.Roles.Options(), 3)
	assert.False(t, v.Rank.Multi())
	assert.True(t, v.Roles.Multi())
}

func TestRegister_MountLookupFailure(t *testing.T) {
	f := withLOVs(&fakeAPI{})
	f.rolesErr = fmt.Errorf("%w: failed to fetch roles: boom", api.ErrLookupFailed)

	v := NewRegisterView(f, nop())
	v.Mount(context.Background())

	assert.Equal(t, StateError, v.State)
	assert.Equal(t, lookupFailedMessage, v.Message)
	assert.Empty(t, v.Roles.Options())
}

func TestRegister_PasswordMismatchNeverCallsAPI(t *testing.T) {
	f := withLOVs(&fakeAPI{})
	v := mountedRegister(t, f)
	fillValid(t, v)
	v.Form.Confirm = "secreT"

	out := v.Submit(context.Background())

	assert.Empty(t, out.Navigate)
	assert.Equal(t, ErrPasswordMismatch.Error(), v.Message)
	assert.Zero(t, registerCalls(f))
}

func TestRegister_PasswordLengthBoundary(t *testing.T) {
	f := withLOVs(&fakeAPI{registerRes: api.Result[api.Empty]{OK: true}})
	v := mountedRegister(t, f)
	fillValid(t, v)

	v.Form.Password, v.Form.Confirm = "12345", "12345"
	v.Submit(context.Background())
	assert.Equal(t, ErrPasswordTooShort.Error(), v.Message)
	assert.Zero(t, registerCalls(f))

	// six bytes, three characters
	v.Form.Password, v.Form.Confirm = "ééé", "ééé"
	assert.Equal(t, ErrPasswordTooShort, v.Validate())
	v.Submit(context.Background())
	assert.Zero(t, registerCalls(f))

	v.Form.Password, v.Form.Confirm = "éééééé", "éééééé"
	assert.NoError(t, v.Validate())

	v.Form.Password, v.Form.Confirm = "123456", "123456"
	out := v.Submit(context.Background())
	assert.Equal(t, 1, registerCalls(f))
	assert.Equal(t, router.PathLogin, out.Navigate)
}

func TestRegister_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *RegisterView)
		want   error
	}{
		{"valid", func(*RegisterView) {}, nil},
		{"blank username", func(v *RegisterView) { v.Form.Username = "  " }, ErrUsernameRequired},
		{"no password", func(v *RegisterView) { v.Form.Password, v.Form.Confirm = "", "" }, ErrPasswordRequired},
		{"no rank", func(v *RegisterView) { v.Rank.Clear() }, ErrRankRequired},
		{"no roles", func(v *RegisterView) { v.Roles.Clear() }, ErrRoleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mountedRegister(t, withLOVs(&fakeAPI{}))
			fillValid(t, v)
			tt.mutate(v)

			err := v.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegister_SuccessSendsBareUUIDs(t *testing.T) {
	f := withLOVs(&fakeAPI{registerRes: api.Result[api.Empty]{OK: true}})
	v := mountedRegister(t, f)
	fillValid(t, v)

	out := v.Submit(context.Background())

	assert.Equal(t, router.PathLogin, out.Navigate)
	assert.Equal(t, RegisterSuccessMessage, v.Message)
	assert.Equal(t, "alice", f.lastRegister.Username)
	assert.Equal(t, "Alice", f.lastRegister.Name)
	assert.Equal(t, "rank-1", f.lastRegister.Rank)
	assert.Equal(t, []string{"role-1", "role-3"}, f.lastRegister.Role)
}

func TestRegister_FailureMessages(t *testing.T) {
	tests := []struct {
		name string
		res  api.Result[api.Empty]
		err  error
		want string
	}{
		{"server message", api.Result[api.Empty]{Message: "Username already exists"}, nil, "Username already exists"},
		{"fallback", api.Result[api.Empty]{}, nil, registerFailedMessage},
		{"transport", api.Result[api.Empty]{}, fmt.Errorf("%w: dial", api.ErrUnavailable), GenericErrorMessage},
		{"schema", api.Result[api.Empty]{}, &api.SchemaError{Op: api.OpRegister, Reason: "x"}, GenericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := withLOVs(&fakeAPI{registerRes: tt.res, registerErr: tt.err})
			v := mountedRegister(t, f)
			fillValid(t, v)

			out := v.Submit(context.Background())
			assert.Empty(t, out.Navigate)
			assert.Equal(t, tt.want, v.Message)
		})
	}
}

func TestRegister_ResultAfterUnmountIsDropped(t *testing.T) {
	f := withLOVs(&fakeAPI{registerRes: api.Result[api.Empty]{OK: true}})
	v := mountedRegister(t, f)
	fillValid(t, v)
	f.onCall = func(op api.Operation) {
		if op == api.OpRegister {
			v.Unmount()
		}
	}

	out := v.Submit(context.Background())

	assert.Empty(t, out.Navigate)
	assert.Empty(t, v.Message)
}
