package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de unique_violation.
const codeUniqueViolation = "23505"

// violatedConstraint devuelve el nombre del constraint único violado cuando
// err es un rechazo por duplicado de Postgres; cadena vacía en cualquier
// otro caso. Útil para distinguir qué unicidad falló (email, user_id+sku).
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
