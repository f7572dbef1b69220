package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConstraintViolationFromPgCode(t *testing.T) {
	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "exec")
	}

	assert.True(t, isUniqueConstraintViolation(wrap(pgCodeUniqueViolation)))
	assert.True(t, isNotNullConstraintViolation(wrap(pgCodeNotNullViolation)))
	assert.True(t, isForeignKeyConstraintViolation(wrap(pgCodeForeignKeyViolation)))
	assert.True(t, isCheckConstraintViolation(wrap(pgCodeCheckViolation)))

	other := wrap("40001")
	assert.False(t, isUniqueConstraintViolation(other))
	assert.False(t, isNotNullConstraintViolation(other))
	assert.False(t, isForeignKeyConstraintViolation(other))
	assert.False(t, isCheckConstraintViolation(other))
	assert.Empty(t, pgErrorCode(errors.New("plain")))
}
