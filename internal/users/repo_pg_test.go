package users

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsertReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ada@example.com", "Lovelace", "Ada", "ada-folder").
		WillReturnRows(sqlmock.NewRows([]string{"userid"}).AddRow(int64(5)))

	userID, err := repo.Insert(context.Background(), User{
		Email:        "ada@example.com",
		LastName:     "Lovelace",
		FirstName:    "Ada",
		BucketFolder: "ada-folder",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if userID != 5 {
		t.Fatalf("expected userid 5, got %d", userID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE users").
		WithArgs("Lovelace", "Ada", "new-folder", "ada@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), User{
		Email:        "ada@example.com",
		LastName:     "Lovelace",
		FirstName:    "Ada",
		BucketFolder: "new-folder",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoFindByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT userid, email, lastname, firstname, bucketfolder").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"userid", "email", "lastname", "firstname", "bucketfolder"}))

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListOrdered(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	rows := sqlmock.NewRows([]string{"userid", "email", "lastname", "firstname", "bucketfolder"}).
		AddRow(int64(1), "a@x.com", "A", "A", "fa").
		AddRow(int64(2), "b@x.com", "B", "B", "fb")
	mock.ExpectQuery("SELECT userid, email, lastname, firstname, bucketfolder").
		WillReturnRows(rows)

	out, err := repo.ListOrdered(context.Background())
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}
	if out[0].UserID != 1 || out[1].UserID != 2 {
		t.Fatalf("unexpected ordering: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
