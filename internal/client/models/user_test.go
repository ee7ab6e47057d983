package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSummary_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    *UserSummary
		wantErr bool
	}{
		{name: "nil", user: nil, wantErr: true},
		{name: "no uuid", user: &UserSummary{Username: "a"}, wantErr: true},
		{name: "no username", user: &UserSummary{UUID: "u"}, wantErr: true},
		{name: "rank without uuid", user: &UserSummary{UUID: "u", Username: "a", Rank: &LovRef{Code: "CPT"}}, wantErr: true},
		{name: "role without uuid", user: &UserSummary{UUID: "u", Username: "a", Roles: []LovRef{{UUID: "r1"}, {Name: "x"}}}, wantErr: true},
		{name: "minimal", user: &UserSummary{UUID: "u", Username: "a"}},
		{name: "full", user: &UserSummary{UUID: "u", Username: "a", Rank: &LovRef{UUID: "k"}, Roles: []LovRef{{UUID: "r1"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingField))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserSummary_Helpers(t *testing.T) {
	u := &UserSummary{
		UUID:     "u1",
		Username: "alice",
		Rank:     &LovRef{UUID: "rank-1", Code: "CPT", Name: "Captain"},
		Roles:    []LovRef{{UUID: "role-1"}, {UUID: "role-2"}},
	}

	assert.Equal(t, "alice", u.DisplayName())
	u.Name = "Alice A."
	assert.Equal(t, "Alice A.", u.DisplayName())
	assert.Equal(t, "rank-1", u.RankUUID())
	assert.Equal(t, []string{"role-1", "role-2"}, u.RoleUUIDs())

	u.Rank = nil
	assert.Empty(t, u.RankUUID())
}

func TestUserSummary_DecodesNullRank(t *testing.T) {
	var u UserSummary
	err := json.Unmarshal([]byte(`{"uuid":"u","username":"bob","name":"","rank":null,"roles":[],"date_created":"2024-05-01T10:00:00Z"}`), &u)
	require.NoError(t, err)
	assert.Nil(t, u.Rank)
	assert.Empty(t, u.Roles)
	assert.Equal(t, 2024, u.DateCreated.Year())
}

func TestLoginData_Validate(t *testing.T) {
	assert.Error(t, (&LoginData{User: &UserSummary{UUID: "u", Username: "a"}}).Validate())
	assert.Error(t, (&LoginData{Token: "t"}).Validate())
	assert.NoError(t, (&LoginData{Token: "t", User: &UserSummary{UUID: "u", Username: "a"}}).Validate())
}

func TestRegistrationRequest_JSONShape(t *testing.T) {
	b, err := json.Marshal(RegistrationRequest{Username: "a", Password: "secret", Rank: "r", Role: []string{"x", "y"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"a","password":"secret","rank":"r","role":["x","y"]}`, string(b))
}
