package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintClassification(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503"}
	uniqueErr := &pgconn.PgError{Code: "23505"}
	otherErr := &pgconn.PgError{Code: "42P01"}

	if !IsForeignKeyViolation(fkErr) {
		t.Fatalf("expected 23503 to classify as foreign-key violation")
	}
	if !IsUniqueViolation(uniqueErr) {
		t.Fatalf("expected 23505 to classify as unique violation")
	}
	if !IsConstraintViolation(fkErr) || !IsConstraintViolation(uniqueErr) {
		t.Fatalf("expected both codes to classify as constraint violations")
	}
	if IsConstraintViolation(otherErr) {
		t.Fatalf("42P01 must not classify as constraint violation")
	}
	if IsConstraintViolation(errors.New("plain error")) {
		t.Fatalf("plain errors must not classify as constraint violations")
	}
}

func TestConstraintClassificationUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("insert asset: %w", &pgconn.PgError{Code: "23503"})
	if !IsForeignKeyViolation(wrapped) {
		t.Fatalf("expected wrapped PgError to classify")
	}
}
