package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// FindByEmail looks a user up by its unique email.
func (r *PGRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT userid, email, lastname, firstname, bucketfolder
FROM users
WHERE email = $1
LIMIT 1`
	return r.scanOne(ctx, query, email)
}

// FindByID looks a user up by its numeric id.
func (r *PGRepo) FindByID(ctx context.Context, userID int64) (User, error) {
	const query = `
SELECT userid, email, lastname, firstname, bucketfolder
FROM users
WHERE userid = $1
LIMIT 1`
	return r.scanOne(ctx, query, userID)
}

// Insert creates a new user and returns its assigned id.
func (r *PGRepo) Insert(ctx context.Context, user User) (int64, error) {
	const query = `
INSERT INTO users (email, lastname, firstname, bucketfolder)
VALUES ($1, $2, $3, $4)
RETURNING userid`
	var userID int64
	err := r.DB.QueryRowContext(ctx, query,
		user.Email,
		user.LastName,
		user.FirstName,
		user.BucketFolder,
	).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Update rewrites the display fields and bucket folder of the user with the
// given email. The numeric id is never touched.
func (r *PGRepo) Update(ctx context.Context, user User) error {
	const query = `
UPDATE users
SET lastname = $1, firstname = $2, bucketfolder = $3
WHERE email = $4`
	_, err := r.DB.ExecContext(ctx, query,
		user.LastName,
		user.FirstName,
		user.BucketFolder,
		user.Email,
	)
	return err
}

// ListOrdered returns all users ordered ascending by id.
func (r *PGRepo) ListOrdered(ctx context.Context) ([]User, error) {
	const query = `
SELECT userid, email, lastname, firstname, bucketfolder
FROM users
ORDER BY userid ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.UserID,
			&user.Email,
			&user.LastName,
			&user.FirstName,
			&user.BucketFolder,
		); err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, rows.Err()
}

func (r *PGRepo) scanOne(ctx context.Context, query string, arg any) (User, error) {
	var user User
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.UserID,
		&user.Email,
		&user.LastName,
		&user.FirstName,
		&user.BucketFolder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
