//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertReplayed reports whether the response was served from an earlier
// write with the same idempotency key.
func AssertReplayed(t *testing.T, w *httptest.ResponseRecorder, replayed bool) {
	t.Helper()
	if replayed {
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		return
	}
	assert.Empty(t, w.Header().Get("Idempotent-Replayed"))
}
