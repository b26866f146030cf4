package commands

import (
	"context"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// UpsertRewardRequest creates a reward when ID is nil and replaces the
// editable fields otherwise. Active is ignored on create.
type UpsertRewardRequest struct {
	ID          uuid.UUID
	Name        string
	Description string
	PointsCost  int64
	Active      *bool
}

type RewardCommands interface {
	Upsert(ctx context.Context, actorBusinessID uuid.UUID, req UpsertRewardRequest) (*queries.RewardView, error)
	SetActive(ctx context.Context, actorBusinessID, rewardID uuid.UUID, active bool) (*queries.RewardView, error)
}

type rewardUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRewardUseCase(uow shared.UnitOfWork, clk clock.Clock) RewardCommands {
	return &rewardUseCaseImpl{uow: uow, clock: clk}
}

func (uc *rewardUseCaseImpl) Upsert(ctx context.Context, actorBusinessID uuid.UUID, req UpsertRewardRequest) (*queries.RewardView, error) {
	if req.ID == uuid.Nil {
		return uc.create(ctx, actorBusinessID, req)
	}

	var updated *reward.Reward
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rw, err := tx.Rewards().FindForUpdate(ctx, req.ID)
		if err != nil {
			return translateRepoErr(err, ErrUnknownReward)
		}
		active := rw.IsActive()
		if req.Active != nil {
			active = *req.Active
		}
		if err := rw.Update(actorBusinessID, req.Name, req.Description, req.PointsCost, active, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Rewards().Update(ctx, rw); err != nil {
			return translateRepoErr(err, ErrUnknownReward)
		}
		updated = rw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRewardView(updated), nil
}

func (uc *rewardUseCaseImpl) create(ctx context.Context, actorBusinessID uuid.UUID, req UpsertRewardRequest) (*queries.RewardView, error) {
	rw, err := reward.NewReward(uuid.Nil, actorBusinessID, req.Name, req.Description, req.PointsCost, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if _, err := uc.uow.CommandReads().EarningPolicy(ctx, actorBusinessID); err != nil {
		return nil, translateRepoErr(err, ErrUnknownBusiness)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rewards().Create(ctx, rw); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrUnknownBusiness)
			}
			return translateRepoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRewardView(rw), nil
}

// SetActive toggles availability. Deactivating a reward leaves its past
// redemptions untouched.
func (uc *rewardUseCaseImpl) SetActive(ctx context.Context, actorBusinessID, rewardID uuid.UUID, active bool) (*queries.RewardView, error) {
	var updated *reward.Reward
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rw, err := tx.Rewards().FindForUpdate(ctx, rewardID)
		if err != nil {
			return translateRepoErr(err, ErrUnknownReward)
		}
		if err := rw.SetActive(actorBusinessID, active, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Rewards().Update(ctx, rw); err != nil {
			return translateRepoErr(err, ErrUnknownReward)
		}
		updated = rw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRewardView(updated), nil
}
