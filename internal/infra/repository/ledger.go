package repository

import (
	"context"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
)

type LedgerWriteQueries interface {
	LockLedgerPartition(ctx context.Context, db sqlc.DBTX, partitionKey string) error
	GetPartitionBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPartitionBalanceParams) (int64, error)
	GetLedgerEntryByIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLedgerEntryByIdempotencyKeyParams) (sqlc.LedgerEntries, error)
	InsertLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerEntryParams) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

// LockPartition takes a transaction-scoped advisory lock. It is released by
// commit or rollback.
func (r *LedgerRepository) LockPartition(ctx context.Context, p ledger.Partition) error {
	if err := r.queries.LockLedgerPartition(ctx, r.db, p.Key()); err != nil {
		return infra.WrapRepoErr("failed to lock ledger partition", err)
	}
	return nil
}

func (r *LedgerRepository) Balance(ctx context.Context, p ledger.Partition) (int64, error) {
	balance, err := r.queries.GetPartitionBalance(ctx, r.db, sqlc.GetPartitionBalanceParams{
		CustomerID: p.CustomerID,
		BusinessID: p.BusinessID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get partition balance", err)
	}
	return balance, nil
}

func (r *LedgerRepository) FindByIdempotencyKey(ctx context.Context, p ledger.Partition, key ledger.IdempotencyKey) (*ledger.Entry, error) {
	row, err := r.queries.GetLedgerEntryByIdempotencyKey(ctx, r.db, sqlc.GetLedgerEntryByIdempotencyKeyParams{
		CustomerID:     p.CustomerID,
		BusinessID:     p.BusinessID,
		IdempotencyKey: key.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get ledger entry by idempotency key", err)
	}
	e, err := converter.EntryFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode ledger entry", err, infra.KindDBFailure)
	}
	return e, nil
}

func (r *LedgerRepository) Insert(ctx context.Context, e *ledger.Entry) (int64, error) {
	seq, err := r.queries.InsertLedgerEntry(ctx, r.db, converter.EntryToInsertParams(e))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert ledger entry", err)
	}
	return seq, nil
}
