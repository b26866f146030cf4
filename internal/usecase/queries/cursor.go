package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"loyalty-ledger/internal/pkg/errs"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
	CursorVersionV1  = "v1"
)

// EncodeAfterCursor returns an opaque token that resumes a newest-first
// listing strictly below seq.
func EncodeAfterCursor(seq int64) string {
	cursorData := fmt.Sprintf("%s:%d", CursorVersionV1, seq)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, errs.New("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, errs.Wrap(err, "invalid cursor encoding")
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, errs.New("unsupported cursor version")
	}

	seq, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "invalid sequence")
	}
	if seq <= 0 {
		return 0, errs.New("sequence must be positive")
	}
	return seq, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
