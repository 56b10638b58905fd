package postgres

import (
	"bookshop/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
)

// sqlStateError is implemented by pgconn.PgError.
type sqlStateError interface {
	SQLState() string
}

func hasSQLState(err error, code string) bool {
	var stateErr sqlStateError
	if errors.As(err, &stateErr) {
		return stateErr.SQLState() == code
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, sqlStateUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, sqlStateForeignKeyViolation)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasSQLState(err, sqlStateCheckViolation)
}
