package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, s string) *Envelope {
	t.Helper()
	var e Envelope
	require.NoError(t, json.Unmarshal([]byte(s), &e))
	return &e
}

func TestRule_Succeeded(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		env  string
		want bool
	}{
		{name: "code match", rule: ByCode(111), env: `{"code":111}`, want: true},
		{name: "code as string", rule: ByCode(111), env: `{"code":"111"}`, want: true},
		{name: "code mismatch", rule: ByCode(111), env: `{"code":400,"message":"bad"}`, want: false},
		{name: "code missing", rule: ByCode(111), env: `{"status":"OK"}`, want: false},
		{name: "status match", rule: ByStatus("OK"), env: `{"code":111,"status":"OK"}`, want: true},
		{name: "status mismatch", rule: ByStatus("OK"), env: `{"code":111,"status":"FAILED"}`, want: false},
		{name: "description match", rule: ByDescription(ProfileUpdatedDescription), env: `{"description":"Profile updated successfully"}`, want: true},
		{name: "description mismatch", rule: ByDescription(ProfileUpdatedDescription), env: `{"code":111,"description":"User not found"}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Succeeded(decodeEnvelope(t, tt.env)))
		})
	}
}

func TestCode_RejectsNonNumericString(t *testing.T) {
	var e Envelope
	require.Error(t, json.Unmarshal([]byte(`{"code":"abc"}`), &e))
}

func TestEnvelope_HasDataAndText(t *testing.T) {
	assert.False(t, decodeEnvelope(t, `{"code":111}`).HasData())
	assert.False(t, decodeEnvelope(t, `{"code":111,"data":null}`).HasData())
	assert.True(t, decodeEnvelope(t, `{"code":111,"data":0}`).HasData())

	assert.Equal(t, "m", decodeEnvelope(t, `{"message":"m","description":"d"}`).Text())
	assert.Equal(t, "d", decodeEnvelope(t, `{"description":"d"}`).Text())
}

func TestContract_FallsBackToCode(t *testing.T) {
	c := Contract{}
	assert.Equal(t, "code==111", c.rule(OpLogin).String())
	assert.Equal(t, "status==OK", DefaultContract().rule(OpRanks).String())
	assert.Equal(t, "description=="+ProfileUpdatedDescription, DefaultContract().rule(OpUpdateProfile).String())
}
