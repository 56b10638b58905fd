package postgres

import (
	"testing"

	"bookshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePgError struct {
	code string
}

func (e *fakePgError) Error() string    { return "pg error " + e.code }
func (e *fakePgError) SQLState() string { return e.code }

func TestConstraintViolationHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		check      bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "wrapped pg unique", err: errors.Wrap(&fakePgError{code: "23505"}, "insert"), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "pg foreign key", err: &fakePgError{code: "23503"}, foreignKey: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "pg check", err: &fakePgError{code: "23514"}, check: true},
		{name: "other pg error", err: &fakePgError{code: "40001"}},
		{name: "plain error", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
