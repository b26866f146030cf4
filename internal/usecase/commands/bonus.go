package commands

import (
	"context"
	"strings"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type GrantBonusRequest struct {
	CustomerID     uuid.UUID
	Points         int64 // negative values claw points back
	Note           string
	IdempotencyKey string
}

type GrantBonusResult struct {
	EntryID    uuid.UUID
	Delta      int64
	NewBalance int64
	Replayed   bool
}

type BonusCommands interface {
	Grant(ctx context.Context, actorBusinessID uuid.UUID, req GrantBonusRequest) (*GrantBonusResult, error)
}

type bonusUseCaseImpl struct {
	ledger *PointsLedger
	uow    shared.UnitOfWork
	clock  clock.Clock
}

func NewBonusUseCase(ledger *PointsLedger, uow shared.UnitOfWork, clk clock.Clock) BonusCommands {
	return &bonusUseCaseImpl{ledger: ledger, uow: uow, clock: clk}
}

func (uc *bonusUseCaseImpl) Grant(ctx context.Context, actorBusinessID uuid.UUID, req GrantBonusRequest) (*GrantBonusResult, error) {
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return nil, ErrIdempotencyKeyRequired
	}
	key, err := ledger.NewIdempotencyKey(req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	p, err := ledger.NewPartition(req.CustomerID, actorBusinessID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.uow.CommandReads().EarningPolicy(ctx, actorBusinessID); err != nil {
		return nil, translateRepoErr(err, ErrUnknownBusiness)
	}

	entry, err := ledger.NewAdjustment(p, req.Points, key, strings.TrimSpace(req.Note), uc.clock.Now())
	if err != nil {
		return nil, err
	}

	appended, err := uc.ledger.Append(ctx, entry)
	if errs.Is(err, ErrDuplicateIdempotencyKey) && appended != nil && appended.Reason() == ledger.ReasonBonusAdjustment {
		if appended.Delta() != entry.Delta() {
			return nil, ErrIdempotencyKeyMismatch
		}
		return newGrantBonusResult(appended, true), nil
	}
	if err != nil {
		return nil, err
	}
	return newGrantBonusResult(appended, false), nil
}

func newGrantBonusResult(e *ledger.Entry, replayed bool) *GrantBonusResult {
	return &GrantBonusResult{
		EntryID:    e.ID(),
		Delta:      e.Delta(),
		NewBalance: e.BalanceAfter(),
		Replayed:   replayed,
	}
}
