package repository

import (
	"context"
	"errors"

	"github.com/plume-pub/plume/api/internal/database"
)

// FollowRepository handles follow relation data access. Edges are keyed by
// the composite (follower, followee) record ID, so creating or deleting the
// same edge twice is a no-op at the storage level.
type FollowRepository struct {
	db database.Database
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db database.Database) *FollowRepository {
	return &FollowRepository{db: db}
}

// Follow records that follower follows followee. Calling it again for an
// existing edge leaves the edge unchanged.
func (r *FollowRepository) Follow(ctx context.Context, follower, followee string) error {
	query := `
		UPSERT type::thing("follow", [$follower, $followee]) SET
			follower = $follower,
			followee = $followee,
			created_on = time::now()
	`

	vars := map[string]interface{}{
		"follower": follower,
		"followee": followee,
	}

	return r.db.Execute(ctx, query, vars)
}

// Unfollow removes the follow edge if it exists. Removing a missing edge is
// not an error.
func (r *FollowRepository) Unfollow(ctx context.Context, follower, followee string) error {
	query := `DELETE type::thing("follow", [$follower, $followee])`

	vars := map[string]interface{}{
		"follower": follower,
		"followee": followee,
	}

	return r.db.Execute(ctx, query, vars)
}

// IsFollowing reports whether follower currently follows followee.
func (r *FollowRepository) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	query := `SELECT * FROM type::thing("follow", [$follower, $followee])`

	vars := map[string]interface{}{
		"follower": follower,
		"followee": followee,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return result != nil, nil
}
