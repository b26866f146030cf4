package api

import (
	"net/http"
	"strings"

	"loyalty-ledger/internal/domain/principal"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

var (
	errNoPrincipal  = errs.New("no principal on request")
	errInvalidPath  = errs.New("invalid path parameter")
	errInvalidInput = errs.New("invalid request")
)

func idempotencyKey(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(headerIdempotencyKey))
}

// principalOf aborts with 401 when auth did not run.
func principalOf(c *gin.Context) (principal.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", httperr.Detail{Code: "unauthorized"})
	}
	return p, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidPath, name), "Invalid "+name, httperr.Detail{Code: "invalid_path"})
		return uuid.Nil, false
	}
	return id, true
}

func abortBind(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidInput), "Invalid request", httperr.Detail{Code: "invalid_request"})
}

// writeCommandResult answers 201 for a fresh write and 200 with a marker
// header when the request replayed an earlier one.
func writeCommandResult(c *gin.Context, replayed bool, body any) {
	if replayed {
		c.Header(headerReplayed, "true")
		c.JSON(http.StatusOK, body)
		return
	}
	c.JSON(http.StatusCreated, body)
}
