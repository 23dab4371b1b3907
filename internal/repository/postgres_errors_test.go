package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_PatientsTable_email"}
	foreign := &pgconn.PgError{Code: "23503", ConstraintName: "idx_PatientsTable_email"}

	assert.True(t, isDuplicateKeyError(unique, "email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert: %w", unique), "email"))
	assert.False(t, isDuplicateKeyError(unique, "license"))
	assert.False(t, isDuplicateKeyError(foreign, "email"))
	assert.False(t, isDuplicateKeyError(errors.New("boom"), "email"))
}
