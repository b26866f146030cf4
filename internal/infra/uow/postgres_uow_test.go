//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "wrapped deadlock", err: infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "40P01"}), expected: true},
		{name: "marked deadlock", err: errs.Mark(&pgconn.PgError{Code: "40P01"}, errTransactionCommit), expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "context error", err: context.Canceled, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry_StopsAtMaxRetries(t *testing.T) {
	err := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(err, 0, 3))
	assert.True(t, shouldRetry(err, 2, 3))
	assert.False(t, shouldRetry(err, 3, 3))
	assert.False(t, shouldRetry(err, 0, 0))
}

func TestCalculateBackoff_Bounds(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := range 4 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
