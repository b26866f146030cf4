package repository

import (
	"context"

	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RedemptionWriteQueries interface {
	CreateRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRedemptionParams) error
	GetRedemptionByLedgerEntryID(ctx context.Context, db sqlc.DBTX, ledgerEntryID uuid.UUID) (sqlc.Redemptions, error)
}

type RedemptionRepository struct {
	queries RedemptionWriteQueries
	db      sqlc.DBTX
}

func NewRedemptionRepository(queries RedemptionWriteQueries, db sqlc.DBTX) *RedemptionRepository {
	return &RedemptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RedemptionRepository) Create(ctx context.Context, rd *redemption.Redemption) error {
	if err := r.queries.CreateRedemption(ctx, r.db, converter.RedemptionToCreateParams(rd)); err != nil {
		return infra.WrapRepoErr("failed to create redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) FindByLedgerEntryID(ctx context.Context, entryID uuid.UUID) (*redemption.Redemption, error) {
	row, err := r.queries.GetRedemptionByLedgerEntryID(ctx, r.db, entryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get redemption by ledger entry", err)
	}
	return converter.RedemptionFromRow(row), nil
}
