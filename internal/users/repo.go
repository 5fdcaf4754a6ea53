package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

// Repo defines persistence operations for users. Each operation is a single
// round-trip; there is no multi-statement transaction here.
type Repo interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, userID int64) (User, error)
	Insert(ctx context.Context, user User) (int64, error)
	Update(ctx context.Context, user User) error
	ListOrdered(ctx context.Context) ([]User, error)
}
