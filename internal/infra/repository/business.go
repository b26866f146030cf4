package repository

import (
	"context"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
)

type BusinessWriteQueries interface {
	UpsertBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertBusinessParams) (sqlc.Businesses, error)
}

type BusinessRepository struct {
	queries BusinessWriteQueries
	db      sqlc.DBTX
}

func NewBusinessRepository(queries BusinessWriteQueries, db sqlc.DBTX) *BusinessRepository {
	return &BusinessRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessRepository) Upsert(ctx context.Context, p *business.EarningPolicy) (*business.EarningPolicy, error) {
	row, err := r.queries.UpsertBusiness(ctx, r.db, sqlc.UpsertBusinessParams{
		ID:               p.BusinessID(),
		PointsPerCheckIn: p.PointsPerCheckIn(),
		Now:              pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert business", err)
	}
	return converter.EarningPolicyFromRow(row), nil
}
