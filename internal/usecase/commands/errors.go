package commands

import (
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
)

var (
	ErrDuplicateIdempotencyKey = errs.New("idempotency key already used for this partition")
	ErrDuplicateCheckIn        = errs.New("idempotency key already used by a different operation")
	ErrIdempotencyKeyRequired  = errs.New("idempotency key is required")
	ErrIdempotencyKeyMismatch  = errs.New("idempotency key already used with a different request")
	ErrUnknownBusiness         = errs.New("unknown business")
	ErrUnknownReward           = errs.New("unknown reward")
	ErrStorageUnavailable      = errs.New("storage unavailable")

	// Domain rule violations surface unchanged.
	ErrInsufficientBalance = ledger.ErrInsufficientBalance
	ErrRewardInactive      = reward.ErrRewardInactive
	ErrRewardNotOwned      = reward.ErrRewardNotOwned
	ErrInvalidPointsCost   = reward.ErrInvalidPointsCost
)

// translateRepoErr maps infra errors onto use case sentinels. notFound may be
// nil when a missing row is not expected.
func translateRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsTransient(err):
		return errs.Mark(err, ErrStorageUnavailable)
	default:
		return err
	}
}
