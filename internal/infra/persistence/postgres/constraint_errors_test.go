package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, Message: "violation"}, "failed to insert offer")
	}

	tests := []struct {
		name       string
		err        error
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "foreign key sqlstate", err: wrapped("23503"), foreignKey: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "not null sqlstate", err: wrapped("23502"), notNull: true},
		{name: "check sqlstate", err: wrapped("23514"), check: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "unique is none of them", err: wrapped("23505")},
		{name: "plain error", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
