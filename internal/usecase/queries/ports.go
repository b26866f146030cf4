package queries

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"

	"github.com/google/uuid"
)

// LedgerReadStore is the storage side of ledger reads. Every method observes
// only committed appends.
type LedgerReadStore interface {
	Balance(ctx context.Context, p ledger.Partition) (int64, error)
	Summary(ctx context.Context, p ledger.Partition) (ledger.Summary, error)
	HistoryFirstPage(ctx context.Context, p ledger.Partition, limit int32) ([]*ledger.Entry, error)
	HistoryKeyset(ctx context.Context, p ledger.Partition, beforeSeq int64, limit int32) ([]*ledger.Entry, error)
	TopCustomers(ctx context.Context, businessID uuid.UUID, limit int32) ([]ledger.Accrual, error)
	BusinessStats(ctx context.Context, businessID uuid.UUID, since time.Time) (ledger.BusinessStats, error)
	RecentCheckIns(ctx context.Context, businessID uuid.UUID, limit int32) ([]*ledger.Entry, error)
	// CustomerBalances returns one row per business the customer has entries
	// with, most recently active first.
	CustomerBalances(ctx context.Context, customerID uuid.UUID) ([]ledger.CustomerBalance, error)
	CustomerActivity(ctx context.Context, customerID uuid.UUID, limit int32) ([]*ledger.Entry, error)
}

// LedgerReader is the accessor surface of the points ledger. Projections read
// entries only through it.
type LedgerReader interface {
	Balance(ctx context.Context, customerID, businessID uuid.UUID) (int64, error)
	History(ctx context.Context, customerID, businessID uuid.UUID, cursor *Cursor, limit int) ([]*ledger.Entry, *Cursor, error)
	Summary(ctx context.Context, customerID, businessID uuid.UUID) (ledger.Summary, error)
	TopCustomers(ctx context.Context, businessID uuid.UUID, limit int) ([]ledger.Accrual, error)
	BusinessStats(ctx context.Context, businessID uuid.UUID, since time.Time) (ledger.BusinessStats, error)
	RecentCheckIns(ctx context.Context, businessID uuid.UUID, limit int) ([]*ledger.Entry, error)
	CustomerBalances(ctx context.Context, customerID uuid.UUID) ([]ledger.CustomerBalance, error)
	CustomerActivity(ctx context.Context, customerID uuid.UUID, limit int) ([]*ledger.Entry, error)
}

type RewardReadStore interface {
	ListActive(ctx context.Context, businessID uuid.UUID) ([]*RewardView, error)
	ListAll(ctx context.Context, businessID uuid.UUID) ([]*RewardView, error)
}

type RedemptionReadStore interface {
	ListForPartition(ctx context.Context, p ledger.Partition, limit int32) ([]*RedemptionView, error)
}

// SummaryCache holds summaries between appends. Begin must be called before
// reading the store; Put drops the value if the partition was invalidated
// after that Begin.
type SummaryCache interface {
	Begin(p ledger.Partition) uint64
	Get(p ledger.Partition) (ledger.Summary, bool)
	Put(p ledger.Partition, s ledger.Summary, epoch uint64)
}
