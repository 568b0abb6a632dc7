package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperrors.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "fk_ledger_entries_account"}, apperrors.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514", ConstraintName: "chk_tax_rates_percentage"}, apperrors.ErrValidation},
		{"numeric overflow", &pgconn.PgError{Code: "22003"}, apperrors.ErrValidation},
		{"wrapped numeric overflow", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "22003"}), apperrors.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError(tc.err, "ledger entry"), tc.want)
		})
	}
}

func TestMapWriteError_OtherErrorsStayInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := mapWriteError(cause, "ledger entry")

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)

	serialization := mapWriteError(&pgconn.PgError{Code: "40001"}, "ledger entry")
	assert.NotErrorIs(t, serialization, apperrors.ErrValidation)
}
