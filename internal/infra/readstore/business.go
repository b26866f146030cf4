package readstore

import (
	"context"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BusinessReadQueries interface {
	GetBusiness(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Businesses, error)
}

type BusinessReadStore struct {
	queries BusinessReadQueries
	db      sqlc.DBTX
}

func NewBusinessReadStore(queries BusinessReadQueries, db sqlc.DBTX) *BusinessReadStore {
	return &BusinessReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessReadStore) EarningPolicy(ctx context.Context, businessID uuid.UUID) (*business.EarningPolicy, error) {
	row, err := r.queries.GetBusiness(ctx, r.db, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get business", err)
	}
	return converter.EarningPolicyFromRow(row), nil
}
