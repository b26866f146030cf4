package readstore

import (
	"context"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionReadQueries interface {
	GetRedemptionByLedgerEntryID(ctx context.Context, db sqlc.DBTX, ledgerEntryID uuid.UUID) (sqlc.Redemptions, error)
	ListRedemptionsForPartition(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRedemptionsForPartitionParams) ([]sqlc.ListRedemptionsForPartitionRow, error)
}

type RedemptionReadStore struct {
	queries RedemptionReadQueries
	db      sqlc.DBTX
}

func NewRedemptionReadStore(queries RedemptionReadQueries, db sqlc.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RedemptionReadStore) FindByLedgerEntryID(ctx context.Context, entryID uuid.UUID) (*redemption.Redemption, error) {
	row, err := r.queries.GetRedemptionByLedgerEntryID(ctx, r.db, entryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get redemption by ledger entry", err)
	}
	return converter.RedemptionFromRow(row), nil
}

func (r *RedemptionReadStore) ListForPartition(ctx context.Context, p ledger.Partition, limit int32) ([]*queries.RedemptionView, error) {
	rows, err := r.queries.ListRedemptionsForPartition(ctx, r.db, sqlc.ListRedemptionsForPartitionParams{
		CustomerID: p.CustomerID,
		BusinessID: p.BusinessID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}

	views := make([]*queries.RedemptionView, len(rows))
	for i, row := range rows {
		views[i] = &queries.RedemptionView{
			ID:            row.ID,
			CustomerID:    row.CustomerID,
			BusinessID:    row.BusinessID,
			RewardID:      row.RewardID,
			RewardName:    row.RewardName,
			LedgerEntryID: row.LedgerEntryID,
			PointsSpent:   row.PointsSpent,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
