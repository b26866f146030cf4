//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestOptionalText(t *testing.T) {
	assert.False(t, pgconv.OptionalStringToPgtype("").Valid)
	assert.Equal(t, pgtype.Text{String: "birthday", Valid: true}, pgconv.OptionalStringToPgtype("birthday"))
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
	assert.Equal(t, "birthday", pgconv.StringFromPgtype(pgconv.OptionalStringToPgtype("birthday")))
}

func TestTimeConversion(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, now, pgconv.TimeFromPgtype(pgconv.TimeToPgtype(now)))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
}
