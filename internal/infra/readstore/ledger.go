package readstore

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LedgerReadQueries interface {
	GetPartitionBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPartitionBalanceParams) (int64, error)
	GetPartitionSummary(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPartitionSummaryParams) (sqlc.GetPartitionSummaryRow, error)
	ListLedgerEntriesFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerEntriesFirstPageParams) ([]sqlc.LedgerEntries, error)
	ListLedgerEntriesKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerEntriesKeysetParams) ([]sqlc.LedgerEntries, error)
	ListTopCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTopCustomersParams) ([]sqlc.ListTopCustomersRow, error)
	GetBusinessStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBusinessStatsParams) (sqlc.GetBusinessStatsRow, error)
	ListRecentCheckIns(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentCheckInsParams) ([]sqlc.LedgerEntries, error)
	ListCustomerBalances(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListCustomerBalancesRow, error)
	ListCustomerActivity(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomerActivityParams) ([]sqlc.LedgerEntries, error)
}

// LedgerReadStore runs each read as a single statement, so it sees either all
// or none of a concurrent append.
type LedgerReadStore struct {
	queries LedgerReadQueries
	db      sqlc.DBTX
}

func NewLedgerReadStore(queries LedgerReadQueries, db sqlc.DBTX) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerReadStore) Balance(ctx context.Context, p ledger.Partition) (int64, error) {
	balance, err := r.queries.GetPartitionBalance(ctx, r.db, sqlc.GetPartitionBalanceParams{
		CustomerID: p.CustomerID,
		BusinessID: p.BusinessID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get partition balance", err)
	}
	return balance, nil
}

func (r *LedgerReadStore) Summary(ctx context.Context, p ledger.Partition) (ledger.Summary, error) {
	row, err := r.queries.GetPartitionSummary(ctx, r.db, sqlc.GetPartitionSummaryParams{
		CustomerID: p.CustomerID,
		BusinessID: p.BusinessID,
	})
	if err != nil {
		return ledger.Summary{}, infra.WrapRepoErr("failed to get partition summary", err)
	}
	return ledger.Summary{
		Balance:         row.Balance,
		VisitCount:      row.VisitCount,
		LastVisit:       pgconv.TimePtrFromPgtype(row.LastVisit),
		TotalEarned:     row.TotalEarned,
		TotalSpent:      row.TotalSpent,
		RewardsRedeemed: row.RewardsRedeemed,
	}, nil
}

func (r *LedgerReadStore) HistoryFirstPage(ctx context.Context, p ledger.Partition, limit int32) ([]*ledger.Entry, error) {
	rows, err := r.queries.ListLedgerEntriesFirstPage(ctx, r.db, sqlc.ListLedgerEntriesFirstPageParams{
		CustomerID: p.CustomerID,
		BusinessID: p.BusinessID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries first page", err)
	}
	return decodeEntries(rows)
}

func (r *LedgerReadStore) HistoryKeyset(ctx context.Context, p ledger.Partition, beforeSeq int64, limit int32) ([]*ledger.Entry, error) {
	rows, err := r.queries.ListLedgerEntriesKeyset(ctx, r.db, sqlc.ListLedgerEntriesKeysetParams{
		CustomerID: p.CustomerID,
		BusinessID: p.BusinessID,
		Seq:        beforeSeq,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries keyset", err)
	}
	return decodeEntries(rows)
}

func (r *LedgerReadStore) TopCustomers(ctx context.Context, businessID uuid.UUID, limit int32) ([]ledger.Accrual, error) {
	rows, err := r.queries.ListTopCustomers(ctx, r.db, sqlc.ListTopCustomersParams{
		BusinessID: businessID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top customers", err)
	}
	result := make([]ledger.Accrual, len(rows))
	for i, row := range rows {
		result[i] = ledger.Accrual{
			CustomerID:  row.CustomerID,
			TotalEarned: row.TotalEarned,
			VisitCount:  row.VisitCount,
			LastVisit:   pgconv.TimePtrFromPgtype(row.LastVisit),
		}
	}
	return result, nil
}

func (r *LedgerReadStore) BusinessStats(ctx context.Context, businessID uuid.UUID, since time.Time) (ledger.BusinessStats, error) {
	row, err := r.queries.GetBusinessStats(ctx, r.db, sqlc.GetBusinessStatsParams{
		BusinessID: businessID,
		Since:      pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return ledger.BusinessStats{}, infra.WrapRepoErr("failed to get business stats", err)
	}
	return ledger.BusinessStats{
		TotalCheckIns:   row.TotalCheckIns,
		ActiveCustomers: row.ActiveCustomers,
		RewardsRedeemed: row.RewardsRedeemed,
		PointsIssued:    row.PointsIssued,
		CheckInsSince:   row.CheckInsSince,
	}, nil
}

func (r *LedgerReadStore) RecentCheckIns(ctx context.Context, businessID uuid.UUID, limit int32) ([]*ledger.Entry, error) {
	rows, err := r.queries.ListRecentCheckIns(ctx, r.db, sqlc.ListRecentCheckInsParams{
		BusinessID: businessID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent check-ins", err)
	}
	return decodeEntries(rows)
}

func (r *LedgerReadStore) CustomerBalances(ctx context.Context, customerID uuid.UUID) ([]ledger.CustomerBalance, error) {
	rows, err := r.queries.ListCustomerBalances(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer balances", err)
	}
	result := make([]ledger.CustomerBalance, len(rows))
	for i, row := range rows {
		result[i] = ledger.CustomerBalance{
			BusinessID: row.BusinessID,
			Summary: ledger.Summary{
				Balance:         row.Balance,
				VisitCount:      row.VisitCount,
				LastVisit:       pgconv.TimePtrFromPgtype(row.LastVisit),
				TotalEarned:     row.TotalEarned,
				TotalSpent:      row.TotalSpent,
				RewardsRedeemed: row.RewardsRedeemed,
			},
		}
	}
	return result, nil
}

func (r *LedgerReadStore) CustomerActivity(ctx context.Context, customerID uuid.UUID, limit int32) ([]*ledger.Entry, error) {
	rows, err := r.queries.ListCustomerActivity(ctx, r.db, sqlc.ListCustomerActivityParams{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer activity", err)
	}
	return decodeEntries(rows)
}

func decodeEntries(rows []sqlc.LedgerEntries) ([]*ledger.Entry, error) {
	entries, err := converter.EntriesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode ledger entries", err, infra.KindDBFailure)
	}
	return entries, nil
}
