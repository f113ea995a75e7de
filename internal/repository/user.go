package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/plume-pub/plume/api/internal/database"
	"github.com/plume-pub/plume/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. The unique indexes on username and email make
// this an atomic check-and-insert; a clash surfaces as database.ErrDuplicate
// wrapped with the offending field name.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			username: $username,
			email: $email,
			hash: $hash,
			bio: $bio,
			image: $image,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"hash":     user.Hash,
		"bio":      user.Bio,
		"image":    user.Image,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return mapUniqueError(err)
	}

	if data, ok := asRecord(result); ok {
		user.ID = convertSurrealID(data["id"])
		user.CreatedOn = getTime(data, "created_on")
		user.UpdatedOn = getTime(data, "updated_on")
	}
	return nil
}

// GetByUsername retrieves a user by username, returning (nil, nil) when no
// such user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	return r.queryUser(ctx, query, vars)
}

// GetByEmail retrieves a user by email, returning (nil, nil) when no such
// user exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	return r.queryUser(ctx, query, vars)
}

// Update writes the user's mutable fields back to storage. Username and
// email changes go through the same unique indexes as Create.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			username = $username,
			email = $email,
			hash = $hash,
			bio = $bio,
			image = $image,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"hash":     user.Hash,
		"bio":      user.Bio,
		"image":    user.Image,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return mapUniqueError(err)
	}
	return nil
}

func (r *UserRepository) queryUser(ctx context.Context, query string, vars map[string]interface{}) (*model.User, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

func parseUser(result interface{}) (*model.User, error) {
	data, ok := asRecord(result)
	if !ok {
		return nil, errors.New("unexpected user record format")
	}

	return &model.User{
		ID:        convertSurrealID(data["id"]),
		Username:  getString(data, "username"),
		Email:     getString(data, "email"),
		Hash:      getString(data, "hash"),
		Bio:       getString(data, "bio"),
		Image:     getString(data, "image"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}, nil
}

// mapUniqueError converts a unique index violation into a
// database.DuplicateError naming the field the clash occurred on. Attribution
// goes by the index name from EnsureSchema: the message also quotes the
// clashing value, and a value like "username@example.com" must not be
// mistaken for a username clash.
func mapUniqueError(err error) error {
	if !isUniqueConstraintError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, userUsernameIndex):
		return &database.DuplicateError{Field: "username"}
	case strings.Contains(msg, userEmailIndex):
		return &database.DuplicateError{Field: "email"}
	}
	return fmt.Errorf("%w: %v", database.ErrDuplicate, err)
}
