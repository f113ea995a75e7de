package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaller_Anonymous(t *testing.T) {
	caller := Anonymous()

	_, ok := caller.User()
	assert.False(t, ok)

	name, ok := caller.Username()
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestCaller_Identified(t *testing.T) {
	u := &User{Username: "celeb"}
	caller := Identified(u)

	got, ok := caller.User()
	require.True(t, ok)
	assert.Same(t, u, got)

	name, ok := caller.Username()
	require.True(t, ok)
	assert.Equal(t, "celeb", name)
}

func TestUserEnvelope_Shape(t *testing.T) {
	u := &User{
		Username: "celeb",
		Email:    "celeb@example.com",
		Hash:     "secret-hash",
		Bio:      "famous",
		Image:    "http://img",
	}

	data, err := json.Marshal(NewUserEnvelope(u, "tok123"))
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	user := decoded["user"]
	require.NotNil(t, user)
	assert.Equal(t, "celeb", user["username"])
	assert.Equal(t, "celeb@example.com", user["email"])
	assert.Equal(t, "tok123", user["token"])
	assert.Equal(t, "famous", user["bio"])
	assert.Equal(t, "http://img", user["image"])

	// The password hash must never appear on the wire.
	assert.NotContains(t, string(data), "secret-hash")
}

func TestProfileEnvelope_Shape(t *testing.T) {
	env := ProfileEnvelope{Profile: Profile{Username: "celeb", Following: true}}

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"profile":{"username":"celeb","bio":"","image":"","following":true}}`, string(data))
}
