package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateNotFound(t *testing.T) {
	err := translate(fmt.Errorf("query: %w", gorm.ErrRecordNotFound))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranslateUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: ApplicationUserJobIndex}
	err := translate(fmt.Errorf("insert: %w", pgErr))

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.True(t, IsDuplicateOn(err, ApplicationUserJobIndex))
	assert.False(t, IsDuplicateOn(err, UserEmailIndex))

	var unwrapped *pgconn.PgError
	assert.True(t, errors.As(err, &unwrapped))
}

func TestTranslateGormDuplicate(t *testing.T) {
	err := translate(gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.False(t, IsDuplicateOn(err, UserEmailIndex))
}

func TestTranslatePassThrough(t *testing.T) {
	boom := errors.New("connection reset")
	assert.Same(t, boom, translate(boom))
	assert.NoError(t, translate(nil))
}
