package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindingFixture struct {
	User struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	} `json:"user"`
}

func TestDecodeBody_Valid(t *testing.T) {
	var dst bindingFixture
	errs := DecodeBody(strings.NewReader(`{"user":{"username":"celeb","email":"celeb@example.com","password":"pw"}}`), &dst)
	require.Nil(t, errs)
	assert.Equal(t, "celeb", dst.User.Username)
	assert.Equal(t, "celeb@example.com", dst.User.Email)
}

func TestDecodeBody_EmptyBody(t *testing.T) {
	var dst bindingFixture
	errs := DecodeBody(strings.NewReader(""), &dst)
	require.NotNil(t, errs)
	assert.Equal(t, FieldErrors{"error": "EOF"}, errs)
}

func TestDecodeBody_MalformedJSON(t *testing.T) {
	var dst bindingFixture
	errs := DecodeBody(strings.NewReader(`{ gibberish `), &dst)
	require.NotNil(t, errs)
	assert.Equal(t, FieldErrors{
		"error": "invalid character 'g' looking for beginning of object key string",
	}, errs)
}

func TestDecodeBody_MissingRequiredFields(t *testing.T) {
	var dst bindingFixture
	errs := DecodeBody(strings.NewReader(`{"user":{"email":"celeb@example.com"}}`), &dst)
	require.NotNil(t, errs)
	assert.Equal(t, FieldErrors{
		"Username": "Field validation for 'Username' failed on the 'required' tag",
		"Password": "Field validation for 'Password' failed on the 'required' tag",
	}, errs)
}

func TestDecodeBody_InvalidEmail(t *testing.T) {
	var dst bindingFixture
	errs := DecodeBody(strings.NewReader(`{"user":{"username":"celeb","email":"nope","password":"pw"}}`), &dst)
	require.NotNil(t, errs)
	assert.Equal(t, FieldErrors{
		"Email": "Field validation for 'Email' failed on the 'email' tag",
	}, errs)
}
