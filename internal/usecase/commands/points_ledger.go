package commands

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// ProjectionInvalidator drops derived state for a partition after an append.
type ProjectionInvalidator interface {
	Invalidate(p ledger.Partition)
}

// PointsLedger is the only writer of ledger entries. Other components read
// entries through its accessors.
type PointsLedger struct {
	uow         shared.UnitOfWork
	reads       queries.LedgerReadStore
	invalidator ProjectionInvalidator
}

var _ queries.LedgerReader = (*PointsLedger)(nil)

// NewPointsLedger builds the ledger. invalidator may be nil.
func NewPointsLedger(uow shared.UnitOfWork, reads queries.LedgerReadStore, invalidator ProjectionInvalidator) *PointsLedger {
	return &PointsLedger{uow: uow, reads: reads, invalidator: invalidator}
}

// Append settles entry against the partition balance and stores it in its own
// unit of work. When the idempotency key was used before, the stored entry is
// returned together with ErrDuplicateIdempotencyKey.
func (l *PointsLedger) Append(ctx context.Context, entry *ledger.Entry) (*ledger.Entry, error) {
	start := time.Now()

	var appended *ledger.Entry
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := l.AppendInTx(ctx, tx, entry)
		appended = e
		return err
	})

	l.observe(entry, err, start)
	if err != nil {
		if errs.Is(err, ErrDuplicateIdempotencyKey) {
			return appended, err
		}
		return nil, err
	}
	l.committed(appended)
	return appended, nil
}

// AppendInTx is Append inside a unit of work owned by the caller. The caller
// must call committed once its unit of work has been committed.
func (l *PointsLedger) AppendInTx(ctx context.Context, tx shared.Tx, entry *ledger.Entry) (*ledger.Entry, error) {
	// Nothing has happened yet, so a cancelled request leaves no trace.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := entry.Partition()
	repo := tx.Ledger()
	if err := repo.LockPartition(ctx, p); err != nil {
		return nil, translateRepoErr(err, nil)
	}

	existing, err := repo.FindByIdempotencyKey(ctx, p, entry.IdempotencyKey())
	if err == nil {
		return existing, ErrDuplicateIdempotencyKey
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, translateRepoErr(err, nil)
	}

	balance, err := repo.Balance(ctx, p)
	if err != nil {
		return nil, translateRepoErr(err, nil)
	}
	settled, err := entry.Settle(balance)
	if err != nil {
		return nil, err
	}

	seq, err := repo.Insert(ctx, settled)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateIdempotencyKey)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUnknownBusiness)
		}
		return nil, translateRepoErr(err, nil)
	}
	return settled.WithSeq(seq), nil
}

func (l *PointsLedger) committed(e *ledger.Entry) {
	metrics.RecordPoints(e.Kind().String(), e.Magnitude())
	if l.invalidator != nil {
		l.invalidator.Invalidate(e.Partition())
	}
}

func (l *PointsLedger) observe(entry *ledger.Entry, err error, start time.Time) {
	outcome := metrics.OutcomeCommitted
	switch {
	case err == nil:
	case errs.Is(err, ErrDuplicateIdempotencyKey):
		outcome = metrics.OutcomeReplayed
	case errs.Is(err, ErrInsufficientBalance):
		outcome = metrics.OutcomeInsufficient
	default:
		outcome = metrics.OutcomeFailed
	}
	metrics.RecordAppend(entry.Reason().String(), outcome, time.Since(start))
}

func (l *PointsLedger) Balance(ctx context.Context, customerID, businessID uuid.UUID) (int64, error) {
	p, err := ledger.NewPartition(customerID, businessID)
	if err != nil {
		return 0, err
	}
	balance, err := l.reads.Balance(ctx, p)
	return balance, translateRepoErr(err, nil)
}

// History pages newest first. A nil cursor or empty After starts at the newest
// entry; the returned cursor is nil on the last page.
func (l *PointsLedger) History(ctx context.Context, customerID, businessID uuid.UUID, cursor *queries.Cursor, limit int) ([]*ledger.Entry, *queries.Cursor, error) {
	p, err := ledger.NewPartition(customerID, businessID)
	if err != nil {
		return nil, nil, err
	}
	n := queries.ValidateLimit(limit)

	var entries []*ledger.Entry
	if cursor == nil || cursor.After == "" {
		entries, err = l.reads.HistoryFirstPage(ctx, p, int32(n+1))
	} else {
		beforeSeq, derr := queries.DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, queries.ErrInvalidCursor)
		}
		entries, err = l.reads.HistoryKeyset(ctx, p, beforeSeq, int32(n+1))
	}
	if err != nil {
		return nil, nil, translateRepoErr(err, nil)
	}

	if len(entries) <= n {
		return entries, nil, nil
	}
	entries = entries[:n]
	return entries, &queries.Cursor{After: queries.EncodeAfterCursor(entries[n-1].Seq())}, nil
}

func (l *PointsLedger) Summary(ctx context.Context, customerID, businessID uuid.UUID) (ledger.Summary, error) {
	p, err := ledger.NewPartition(customerID, businessID)
	if err != nil {
		return ledger.Summary{}, err
	}
	s, err := l.reads.Summary(ctx, p)
	return s, translateRepoErr(err, nil)
}

func (l *PointsLedger) TopCustomers(ctx context.Context, businessID uuid.UUID, limit int) ([]ledger.Accrual, error) {
	rows, err := l.reads.TopCustomers(ctx, businessID, int32(queries.ValidateLimit(limit)))
	return rows, translateRepoErr(err, nil)
}

func (l *PointsLedger) BusinessStats(ctx context.Context, businessID uuid.UUID, since time.Time) (ledger.BusinessStats, error) {
	s, err := l.reads.BusinessStats(ctx, businessID, since)
	return s, translateRepoErr(err, nil)
}

func (l *PointsLedger) RecentCheckIns(ctx context.Context, businessID uuid.UUID, limit int) ([]*ledger.Entry, error) {
	entries, err := l.reads.RecentCheckIns(ctx, businessID, int32(queries.ValidateLimit(limit)))
	return entries, translateRepoErr(err, nil)
}

func (l *PointsLedger) CustomerBalances(ctx context.Context, customerID uuid.UUID) ([]ledger.CustomerBalance, error) {
	if customerID == uuid.Nil {
		return nil, ledger.ErrInvalidPartition
	}
	rows, err := l.reads.CustomerBalances(ctx, customerID)
	return rows, translateRepoErr(err, nil)
}

func (l *PointsLedger) CustomerActivity(ctx context.Context, customerID uuid.UUID, limit int) ([]*ledger.Entry, error) {
	if customerID == uuid.Nil {
		return nil, ledger.ErrInvalidPartition
	}
	entries, err := l.reads.CustomerActivity(ctx, customerID, int32(queries.ValidateLimit(limit)))
	return entries, translateRepoErr(err, nil)
}
