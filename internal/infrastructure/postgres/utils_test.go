package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestViolatedConstraint_DevuelveElNombreDelConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"}
	wrapped := fmt.Errorf("insert user: %w", pgErr)

	assert.Equal(t, "users_email_key", violatedConstraint(wrapped))
	assert.True(t, isUniqueViolation(wrapped))
}

func TestViolatedConstraint_IgnoraOtrosCodigos(t *testing.T) {
	// foreign_key_violation no es un duplicado
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "orders_customer_id_fkey"}

	assert.Empty(t, violatedConstraint(fkErr))
	assert.False(t, isUniqueViolation(fkErr))
}

func TestViolatedConstraint_ErrorGenericoNoEsDuplicado(t *testing.T) {
	err := errors.New("connection refused")

	assert.Empty(t, violatedConstraint(err))
	assert.False(t, isUniqueViolation(err))
}
