package repository

import (
	"context"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RewardWriteQueries interface {
	CreateReward(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRewardParams) (sqlc.Rewards, error)
	UpdateReward(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRewardParams) (int64, error)
	GetRewardByIDForShare(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rewards, error)
	GetRewardByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rewards, error)
}

type RewardRepository struct {
	queries RewardWriteQueries
	db      sqlc.DBTX
}

func NewRewardRepository(queries RewardWriteQueries, db sqlc.DBTX) *RewardRepository {
	return &RewardRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RewardRepository) Create(ctx context.Context, rw *reward.Reward) error {
	if _, err := r.queries.CreateReward(ctx, r.db, converter.RewardToCreateParams(rw)); err != nil {
		return infra.WrapRepoErr("failed to create reward", err)
	}
	return nil
}

func (r *RewardRepository) Update(ctx context.Context, rw *reward.Reward) error {
	rows, err := r.queries.UpdateReward(ctx, r.db, converter.RewardToUpdateParams(rw))
	if err != nil {
		return infra.WrapRepoErr("failed to update reward", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("reward not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindForShare blocks concurrent cost edits until the caller's transaction ends.
func (r *RewardRepository) FindForShare(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	row, err := r.queries.GetRewardByIDForShare(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reward for share", err)
	}
	return converter.RewardFromRow(row), nil
}

func (r *RewardRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	row, err := r.queries.GetRewardByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reward for update", err)
	}
	return converter.RewardFromRow(row), nil
}
