package service

import (
	"context"
	"errors"

	"github.com/plume-pub/plume/api/internal/database"
	"github.com/plume-pub/plume/api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// UserService handles registration, login, and account updates.
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account. Username and email uniqueness is enforced
// atomically by the storage layer; a clash returns ErrUsernameTaken or
// ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Hash:     hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, mapDuplicateError(err)
	}
	return user, nil
}

// Authenticate verifies an email/password pair. An unknown email and a wrong
// password both return ErrInvalidCredentials, so a caller cannot tell which
// part failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateParams holds the optional fields of a partial account update. A nil
// field is left unchanged.
type UpdateParams struct {
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Image    *string
}

// Update applies a partial update to the user and persists it. A new
// password is rehashed; username and email changes go through the same
// uniqueness checks as registration.
func (s *UserService) Update(ctx context.Context, user *model.User, params UpdateParams) (*model.User, error) {
	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}
	if params.Image != nil {
		user.Image = *params.Image
	}
	if params.Password != nil {
		hash, err := hashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		user.Hash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, mapDuplicateError(err)
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// mapDuplicateError resolves a storage duplicate error to the field-specific
// service error.
func mapDuplicateError(err error) error {
	var dup *database.DuplicateError
	if !errors.As(err, &dup) {
		return err
	}
	switch dup.Field {
	case "username":
		return ErrUsernameTaken
	case "email":
		return ErrEmailTaken
	}
	return err
}
