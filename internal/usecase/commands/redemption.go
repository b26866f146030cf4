package commands

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemRequest struct {
	CustomerID uuid.UUID
	RewardID   uuid.UUID
	// IdempotencyKey is optional. Without it every call is a new attempt.
	IdempotencyKey string
}

type RedeemResult struct {
	RedemptionID  uuid.UUID
	RewardID      uuid.UUID
	BusinessID    uuid.UUID
	LedgerEntryID uuid.UUID
	PointsSpent   int64
	NewBalance    int64
	CreatedAt     time.Time
	Replayed      bool
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, req RedeemRequest) (*RedeemResult, error)
}

type redemptionUseCaseImpl struct {
	ledger *PointsLedger
	uow    shared.UnitOfWork
	clock  clock.Clock
}

func NewRedemptionUseCase(ledger *PointsLedger, uow shared.UnitOfWork, clk clock.Clock) RedemptionCommands {
	return &redemptionUseCaseImpl{ledger: ledger, uow: uow, clock: clk}
}

// Redeem debits the reward cost and records the redemption in one unit of
// work. The reward is re-read under a shared lock after the partition lock so
// the debit always matches the cost in effect at commit.
func (uc *redemptionUseCaseImpl) Redeem(ctx context.Context, req RedeemRequest) (*RedeemResult, error) {
	rw, err := uc.uow.CommandReads().RewardByID(ctx, req.RewardID)
	if err != nil {
		return nil, translateRepoErr(err, ErrUnknownReward)
	}
	if err = rw.CanBeRedeemed(); err != nil {
		return nil, err
	}

	p, err := ledger.NewPartition(req.CustomerID, rw.BusinessID())
	if err != nil {
		return nil, err
	}
	key, err := uc.idempotencyKey(req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	var (
		result    *RedeemResult
		debit     *ledger.Entry
		pending   *ledger.Entry
		appendErr error
	)
	start := time.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, debit, pending, appendErr = nil, nil, nil, nil

		if err := tx.Ledger().LockPartition(ctx, p); err != nil {
			return translateRepoErr(err, nil)
		}
		current, err := tx.Rewards().FindForShare(ctx, req.RewardID)
		if err != nil {
			return translateRepoErr(err, ErrUnknownReward)
		}
		if err := current.CanBeRedeemed(); err != nil {
			return err
		}

		now := uc.clock.Now()
		entry, err := ledger.NewDebit(p, current.PointsCost(), ledger.ReasonRedemption, key, "redeem "+current.Name().String(), now)
		if err != nil {
			return err
		}
		pending = entry

		appended, err := uc.ledger.AppendInTx(ctx, tx, entry)
		appendErr = err
		if errs.Is(err, ErrDuplicateIdempotencyKey) && appended != nil {
			result, err = uc.replay(ctx, tx, appended, req)
			return err
		}
		if err != nil {
			return err
		}

		rd, err := redemption.NewRedemption(current, appended, now)
		if err != nil {
			return err
		}
		if err := tx.Redemptions().Create(ctx, rd); err != nil {
			return translateRepoErr(err, nil)
		}
		debit = appended
		result = newRedeemResult(rd, appended.BalanceAfter(), false)
		return nil
	})
	if pending != nil {
		outcome := err
		if outcome == nil {
			outcome = appendErr
		}
		uc.ledger.observe(pending, outcome, start)
	}
	if err != nil {
		return nil, err
	}

	if debit != nil {
		uc.ledger.committed(debit)
	}
	return result, nil
}

// replay answers a retried request with the redemption stored under its key.
// A key reused for another reward is rejected.
func (uc *redemptionUseCaseImpl) replay(ctx context.Context, tx shared.Tx, prior *ledger.Entry, req RedeemRequest) (*RedeemResult, error) {
	if prior.Reason() != ledger.ReasonRedemption {
		return nil, ErrDuplicateIdempotencyKey
	}
	rd, err := tx.Reads().RedemptionByLedgerEntryID(ctx, prior.ID())
	if err != nil {
		return nil, translateRepoErr(err, nil)
	}
	if rd.RewardID() != req.RewardID {
		return nil, ErrIdempotencyKeyMismatch
	}
	return newRedeemResult(rd, prior.BalanceAfter(), true), nil
}

func (uc *redemptionUseCaseImpl) idempotencyKey(raw string) (ledger.IdempotencyKey, error) {
	if raw == "" {
		raw = "redeem:" + uuid.NewString()
	}
	return ledger.NewIdempotencyKey(raw)
}

func newRedeemResult(rd *redemption.Redemption, balanceAfter int64, replayed bool) *RedeemResult {
	return &RedeemResult{
		RedemptionID:  rd.ID(),
		RewardID:      rd.RewardID(),
		BusinessID:    rd.BusinessID(),
		LedgerEntryID: rd.LedgerEntryID(),
		PointsSpent:   rd.PointsSpent(),
		NewBalance:    balanceAfter,
		CreatedAt:     rd.CreatedAt(),
		Replayed:      replayed,
	}
}
