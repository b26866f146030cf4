package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/readstore"
	"loyalty-ledger/internal/infra/repository"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	backoff    time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, maxRetries int) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		backoff:    50 * time.Millisecond,
	}
}

// ReadCommitted is enough: appends serialize on the partition advisory lock
// and every balance read happens after it is taken.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(infra.WrapRepoErr("failed to begin transaction", err, infra.KindUnavailable), errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(infra.WrapRepoErr("failed to commit transaction", err), errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, u.maxRetries) {
			if isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(infra.WrapRepoErr("transaction failed after max retries", err, infra.KindUnavailable), errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.backoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return infra.WrapRepoErr("transaction retry aborted", ctx.Err(), infra.KindUnavailable)
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	ledgerRepo     shared.LedgerRepository
	rewardRepo     shared.RewardRepository
	redemptionRepo shared.RedemptionRepository
	businessRepo   shared.BusinessRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.q, t.dbtx)
	}
	return t.ledgerRepo
}

func (t *pgTx) Rewards() shared.RewardRepository {
	if t.rewardRepo == nil {
		t.rewardRepo = repository.NewRewardRepository(t.q, t.dbtx)
	}
	return t.rewardRepo
}

func (t *pgTx) Redemptions() shared.RedemptionRepository {
	if t.redemptionRepo == nil {
		t.redemptionRepo = repository.NewRedemptionRepository(t.q, t.dbtx)
	}
	return t.redemptionRepo
}

func (t *pgTx) Businesses() shared.BusinessRepository {
	if t.businessRepo == nil {
		t.businessRepo = repository.NewBusinessRepository(t.q, t.dbtx)
	}
	return t.businessRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{q: t.q, dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	businessStore   *readstore.BusinessReadStore
	rewardStore     *readstore.RewardReadStore
	redemptionStore *readstore.RedemptionReadStore
}

func (r *commandReads) EarningPolicy(ctx context.Context, businessID uuid.UUID) (*business.EarningPolicy, error) {
	if r.businessStore == nil {
		r.businessStore = readstore.NewBusinessReadStore(r.q, r.dbtx)
	}
	return r.businessStore.EarningPolicy(ctx, businessID)
}

func (r *commandReads) RewardByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	if r.rewardStore == nil {
		r.rewardStore = readstore.NewRewardReadStore(r.q, r.dbtx)
	}
	return r.rewardStore.FindByID(ctx, id)
}

func (r *commandReads) RedemptionByLedgerEntryID(ctx context.Context, entryID uuid.UUID) (*redemption.Redemption, error) {
	if r.redemptionStore == nil {
		r.redemptionStore = readstore.NewRedemptionReadStore(r.q, r.dbtx)
	}
	return r.redemptionStore.FindByLedgerEntryID(ctx, entryID)
}
