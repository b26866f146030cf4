package converter

import (
	"loyalty-ledger/internal/domain/reward"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"
)

func RewardToCreateParams(r *reward.Reward) sqlc.CreateRewardParams {
	return sqlc.CreateRewardParams{
		ID:          r.ID(),
		BusinessID:  r.BusinessID(),
		Name:        r.Name().String(),
		Description: r.Description(),
		PointsCost:  r.PointsCost(),
		Active:      r.IsActive(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RewardToUpdateParams(r *reward.Reward) sqlc.UpdateRewardParams {
	return sqlc.UpdateRewardParams{
		ID:          r.ID(),
		Name:        r.Name().String(),
		Description: r.Description(),
		PointsCost:  r.PointsCost(),
		Active:      r.IsActive(),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RewardFromRow(row sqlc.Rewards) *reward.Reward {
	return reward.ReconstructReward(
		row.ID, row.BusinessID,
		row.Name, row.Description,
		row.PointsCost, row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func RewardViewFromRow(row sqlc.Rewards) *queries.RewardView {
	return &queries.RewardView{
		ID:          row.ID,
		BusinessID:  row.BusinessID,
		Name:        row.Name,
		Description: row.Description,
		PointsCost:  row.PointsCost,
		Active:      row.Active,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
