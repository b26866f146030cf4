package httperr

import (
	"context"
	"log/slog"
	"net/http"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type rule struct {
	target  error
	status  int
	code    string
	message string
}

// First match wins, so specific sentinels go before the catch-alls.
var rules = []rule{
	{commands.ErrInsufficientBalance, http.StatusUnprocessableEntity, "insufficient_balance", "Insufficient balance"},
	{commands.ErrRewardInactive, http.StatusConflict, "reward_inactive", "Reward is inactive"},
	{commands.ErrDuplicateCheckIn, http.StatusConflict, "duplicate_check_in", "Idempotency key already used by another operation"},
	{commands.ErrIdempotencyKeyMismatch, http.StatusUnprocessableEntity, "idempotency_key_mismatch", "Idempotency key was used for a different request"},
	{commands.ErrDuplicateIdempotencyKey, http.StatusConflict, "duplicate_idempotency_key", "Idempotency key already used"},
	{commands.ErrUnknownReward, http.StatusNotFound, "unknown_reward", "Reward not found"},
	{commands.ErrUnknownBusiness, http.StatusNotFound, "unknown_business", "Business not found"},
	{commands.ErrRewardNotOwned, http.StatusForbidden, "reward_not_owned", "Reward belongs to another business"},
	{commands.ErrIdempotencyKeyRequired, http.StatusBadRequest, "idempotency_key_required", "Idempotency-Key header is required"},
	{commands.ErrInvalidPointsCost, http.StatusBadRequest, "invalid_points_cost", "Points cost must be a positive integer"},
	{reward.ErrEmptyName, http.StatusBadRequest, "invalid_reward", "Reward name cannot be empty"},
	{reward.ErrNameTooLong, http.StatusBadRequest, "invalid_reward", "Reward name is too long"},
	{reward.ErrDescriptionTooLong, http.StatusBadRequest, "invalid_reward", "Reward description is too long"},
	{business.ErrInvalidPointsPerCheckIn, http.StatusBadRequest, "invalid_points_per_check_in", "Points per check-in must be between 1 and 10000"},
	{ledger.ErrInvalidPoints, http.StatusBadRequest, "invalid_points", "Points must be a non-zero amount within limits"},
	{ledger.ErrInvalidIdempotencyKey, http.StatusBadRequest, "invalid_idempotency_key", "Idempotency key must be 1-255 characters"},
	{ledger.ErrInvalidPartition, http.StatusBadRequest, "invalid_partition", "Customer and business ids are required"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor", "Invalid cursor"},
	{commands.ErrStorageUnavailable, http.StatusServiceUnavailable, "storage_unavailable", "Storage temporarily unavailable"},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, "timeout", "Request timed out"},
}

// Abort maps a use case error onto its HTTP status and aborts the request.
// Unknown errors become 500.
func Abort(c *gin.Context, err error) {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			detail := Detail{Code: r.code, Retryable: r.status == http.StatusServiceUnavailable}
			AbortWithError(c, r.status, err, r.message, detail)
			return
		}
	}

	// read paths surface repository errors unmarked
	if infra.IsKind(err, infra.KindUnavailable) {
		AbortWithError(c, http.StatusServiceUnavailable, err, "Storage temporarily unavailable",
			Detail{Code: "storage_unavailable", Retryable: true})
		return
	}

	slog.Error("unmapped error", "path", c.Request.URL.Path, "error", err.Error(),
		"stack", errs.ExtractStackLines(err, 8))
	Internal(c, err)
}
