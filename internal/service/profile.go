package service

import (
	"context"

	"github.com/plume-pub/plume/api/internal/model"
)

// FollowRepository defines the interface for follow relation storage.
// Follow and Unfollow must be idempotent.
type FollowRepository interface {
	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
	IsFollowing(ctx context.Context, follower, followee string) (bool, error)
}

// ProfileService resolves public profiles and manages follow relations.
type ProfileService struct {
	userRepo   UserRepository
	followRepo FollowRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo UserRepository, followRepo FollowRepository) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// Resolve returns the profile for username as seen by caller. The following
// flag is always false for anonymous callers.
func (s *ProfileService) Resolve(ctx context.Context, caller model.Caller, username string) (*model.Profile, error) {
	subject, err := s.getSubject(ctx, username)
	if err != nil {
		return nil, err
	}

	following := false
	if follower, ok := caller.Username(); ok {
		following, err = s.followRepo.IsFollowing(ctx, follower, subject.Username)
		if err != nil {
			return nil, err
		}
	}

	return profileOf(subject, following), nil
}

// Follow makes follower follow username and returns the resulting profile.
// Following an already-followed user is a no-op; following yourself records
// no relation and reports following as false.
func (s *ProfileService) Follow(ctx context.Context, follower *model.User, username string) (*model.Profile, error) {
	subject, err := s.getSubject(ctx, username)
	if err != nil {
		return nil, err
	}

	if follower.Username == subject.Username {
		return profileOf(subject, false), nil
	}

	if err := s.followRepo.Follow(ctx, follower.Username, subject.Username); err != nil {
		return nil, err
	}
	return profileOf(subject, true), nil
}

// Unfollow removes the follow relation from follower to username, if any,
// and returns the resulting profile. Unfollowing a user who was never
// followed is a no-op.
func (s *ProfileService) Unfollow(ctx context.Context, follower *model.User, username string) (*model.Profile, error) {
	subject, err := s.getSubject(ctx, username)
	if err != nil {
		return nil, err
	}

	if follower.Username != subject.Username {
		if err := s.followRepo.Unfollow(ctx, follower.Username, subject.Username); err != nil {
			return nil, err
		}
	}
	return profileOf(subject, false), nil
}

func (s *ProfileService) getSubject(ctx context.Context, username string) (*model.User, error) {
	subject, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrProfileNotFound
	}
	return subject, nil
}

func profileOf(u *model.User, following bool) *model.Profile {
	return &model.Profile{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}
