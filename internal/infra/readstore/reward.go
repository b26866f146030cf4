package readstore

import (
	"context"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardReadQueries interface {
	GetRewardByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rewards, error)
	ListActiveRewardsByBusiness(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) ([]sqlc.Rewards, error)
	ListRewardsByBusiness(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) ([]sqlc.Rewards, error)
}

type RewardReadStore struct {
	queries RewardReadQueries
	db      sqlc.DBTX
}

func NewRewardReadStore(queries RewardReadQueries, db sqlc.DBTX) *RewardReadStore {
	return &RewardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RewardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	row, err := r.queries.GetRewardByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reward by id", err)
	}
	return converter.RewardFromRow(row), nil
}

func (r *RewardReadStore) ListActive(ctx context.Context, businessID uuid.UUID) ([]*queries.RewardView, error) {
	rows, err := r.queries.ListActiveRewardsByBusiness(ctx, r.db, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active rewards", err)
	}
	return toRewardViews(rows), nil
}

func (r *RewardReadStore) ListAll(ctx context.Context, businessID uuid.UUID) ([]*queries.RewardView, error) {
	rows, err := r.queries.ListRewardsByBusiness(ctx, r.db, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards", err)
	}
	return toRewardViews(rows), nil
}

func toRewardViews(rows []sqlc.Rewards) []*queries.RewardView {
	views := make([]*queries.RewardView, len(rows))
	for i, row := range rows {
		views[i] = converter.RewardViewFromRow(row)
	}
	return views
}
