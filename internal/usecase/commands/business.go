package commands

import (
	"context"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type EarningPolicyResult struct {
	BusinessID       uuid.UUID
	PointsPerCheckIn int64
}

type BusinessCommands interface {
	// ConfigureEarning sets the points awarded per check-in. The first call
	// registers the business with the ledger.
	ConfigureEarning(ctx context.Context, businessID uuid.UUID, pointsPerCheckIn int64) (*EarningPolicyResult, error)
}

type businessUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBusinessUseCase(uow shared.UnitOfWork, clk clock.Clock) BusinessCommands {
	return &businessUseCaseImpl{uow: uow, clock: clk}
}

func (uc *businessUseCaseImpl) ConfigureEarning(ctx context.Context, businessID uuid.UUID, pointsPerCheckIn int64) (*EarningPolicyResult, error) {
	policy, err := business.NewEarningPolicy(businessID, pointsPerCheckIn, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var stored *business.EarningPolicy
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Businesses().Upsert(ctx, policy)
		if err != nil {
			return translateRepoErr(err, nil)
		}
		stored = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &EarningPolicyResult{BusinessID: stored.BusinessID(), PointsPerCheckIn: stored.PointsPerCheckIn()}, nil
}
