package postgres

import (
	domainerrors "authsvc/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgCodeUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgCodeForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCodeCheckViolation
}

// translateWriteError converts a failed insert or update into a domain error.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrAccountAlreadyExists.WrapMessage(details)
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrRequiredFieldMissing.WrapMessage(details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidReference.WrapMessage(details)
	case isCheckConstraintViolation(err):
		return domainerrors.ErrConstraintViolation.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
