package model

import "time"

// User represents a registered account. Bio and Image default to the empty
// string; they are never null on the wire.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose password hash
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Caller is the identity a request is made under: either anonymous or a
// resolved user. Consumers must handle both variants explicitly rather than
// dereferencing a possibly-nil user.
type Caller struct {
	user *User
}

// Anonymous returns the caller for an unauthenticated request.
func Anonymous() Caller {
	return Caller{}
}

// Identified returns the caller for a request authenticated as u.
func Identified(u *User) Caller {
	return Caller{user: u}
}

// User returns the authenticated user, or false for an anonymous caller.
func (c Caller) User() (*User, bool) {
	if c.user == nil {
		return nil, false
	}
	return c.user, true
}

// Username returns the authenticated username, or false for an anonymous
// caller.
func (c Caller) Username() (string, bool) {
	if c.user == nil {
		return "", false
	}
	return c.user.Username, true
}

// Profile is the public projection of a user, annotated with the
// caller-relative following flag.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// UserResponse is the authenticated-user view returned by the user endpoints.
type UserResponse struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// UserEnvelope wraps a UserResponse under the "user" key.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// NewUserEnvelope projects a user and its bearer token into the wire shape.
func NewUserEnvelope(u *User, token string) UserEnvelope {
	return UserEnvelope{User: UserResponse{
		Email:    u.Email,
		Token:    token,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}}
}

// ProfileEnvelope wraps a Profile under the "profile" key.
type ProfileEnvelope struct {
	Profile Profile `json:"profile"`
}
