package users

import (
	"context"
	"errors"
	"fmt"
)

// Service contains business logic for users.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Upsert inserts a new user keyed by email, or updates the display fields
// and bucket folder of an existing one. It returns the user's id and
// whether the call inserted (true) or updated (false).
//
// The existence check and the insert are separate round-trips, so two
// concurrent first-writes for the same email can both observe "absent";
// the unique constraint on email decides the race and the loser's insert
// fails with a constraint violation.
func (s *Service) Upsert(ctx context.Context, user User) (int64, bool, error) {
	existing, err := s.Repo.FindByEmail(ctx, user.Email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return -1, false, fmt.Errorf("find user by email: %w", err)
		}
		userID, err := s.Repo.Insert(ctx, user)
		if err != nil {
			return -1, false, fmt.Errorf("insert user: %w", err)
		}
		return userID, true, nil
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return -1, false, fmt.Errorf("update user: %w", err)
	}
	return existing.UserID, false, nil
}

// List returns all users ordered ascending by id.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.Repo.ListOrdered(ctx)
}
