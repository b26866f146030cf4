package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	CustomerID      uuid.UUID
	BusinessID      uuid.UUID
	IdempotencyKey  string
	ClientTimestamp *time.Time
}

type CheckInResult struct {
	EntryID       uuid.UUID
	PointsAwarded int64
	NewBalance    int64
	Replayed      bool
}

type CheckInCommands interface {
	CheckIn(ctx context.Context, req CheckInRequest) (*CheckInResult, error)
}

type checkInUseCaseImpl struct {
	ledger        *PointsLedger
	uow           shared.UnitOfWork
	clock         clock.Clock
	defaultPoints int64
}

// NewCheckInUseCase awards defaultPoints per visit unless the business has
// configured its own amount.
func NewCheckInUseCase(ledger *PointsLedger, uow shared.UnitOfWork, clk clock.Clock, defaultPoints int64) CheckInCommands {
	return &checkInUseCaseImpl{ledger: ledger, uow: uow, clock: clk, defaultPoints: defaultPoints}
}

func (uc *checkInUseCaseImpl) CheckIn(ctx context.Context, req CheckInRequest) (*CheckInResult, error) {
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return nil, ErrIdempotencyKeyRequired
	}
	key, err := ledger.NewIdempotencyKey(req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	p, err := ledger.NewPartition(req.CustomerID, req.BusinessID)
	if err != nil {
		return nil, err
	}

	policy, err := uc.uow.CommandReads().EarningPolicy(ctx, req.BusinessID)
	if err != nil {
		return nil, translateRepoErr(err, ErrUnknownBusiness)
	}

	now := uc.clock.Now()
	if req.ClientTimestamp != nil {
		slog.Debug("check-in client clock",
			slog.String("partition", p.Key()),
			slog.Duration("skew", now.Sub(*req.ClientTimestamp)))
	}

	entry, err := ledger.NewCredit(p, policy.PointsFor(uc.defaultPoints), ledger.ReasonCheckIn, key, "", now)
	if err != nil {
		return nil, err
	}

	appended, err := uc.ledger.Append(ctx, entry)
	if errs.Is(err, ErrDuplicateIdempotencyKey) && appended != nil {
		if appended.Reason() != ledger.ReasonCheckIn {
			return nil, errs.Mark(err, ErrDuplicateCheckIn)
		}
		return newCheckInResult(appended, true), nil
	}
	if err != nil {
		return nil, err
	}
	return newCheckInResult(appended, false), nil
}

func newCheckInResult(e *ledger.Entry, replayed bool) *CheckInResult {
	return &CheckInResult{
		EntryID:       e.ID(),
		PointsAwarded: e.Delta(),
		NewBalance:    e.BalanceAfter(),
		Replayed:      replayed,
	}
}
