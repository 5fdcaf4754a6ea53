package users

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[int64]User
	nextID int64
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[int64]User),
		nextID: 1,
	}
}

// FindByEmail returns the user with the given email.
func (r *MemoryRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

// FindByID returns the user with the given id.
func (r *MemoryRepo) FindByID(ctx context.Context, userID int64) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

// Insert assigns the next id, enforcing email uniqueness the way the
// relational schema does.
func (r *MemoryRepo) Insert(ctx context.Context, user User) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return 0, fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	user.UserID = r.nextID
	r.nextID++
	r.byID[user.UserID] = user
	return user.UserID, nil
}

// Update rewrites the mutable fields of the user with the given email.
func (r *MemoryRepo) Update(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.byID {
		if existing.Email == user.Email {
			existing.LastName = user.LastName
			existing.FirstName = user.FirstName
			existing.BucketFolder = user.BucketFolder
			r.byID[id] = existing
			return nil
		}
	}
	return ErrNotFound
}

// ListOrdered returns all users ordered ascending by id.
func (r *MemoryRepo) ListOrdered(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, 0, len(r.byID))
	for _, user := range r.byID {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
