package shared

import (
	"context"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once and must not keep state between attempts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Ledger() LedgerRepository
	Rewards() RewardRepository
	Redemptions() RedemptionRepository
	Businesses() BusinessRepository
	Reads() CommandReads
}

type CommandReads interface {
	EarningPolicy(ctx context.Context, businessID uuid.UUID) (*business.EarningPolicy, error)
	RewardByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error)
	RedemptionByLedgerEntryID(ctx context.Context, entryID uuid.UUID) (*redemption.Redemption, error)
}

// LedgerRepository is the only write path into the entry log.
type LedgerRepository interface {
	// LockPartition blocks until the caller owns the partition's serialization
	// point. It is released when the transaction ends.
	LockPartition(ctx context.Context, p ledger.Partition) error
	Balance(ctx context.Context, p ledger.Partition) (int64, error)
	FindByIdempotencyKey(ctx context.Context, p ledger.Partition, key ledger.IdempotencyKey) (*ledger.Entry, error)
	Insert(ctx context.Context, e *ledger.Entry) (int64, error)
}

type RewardRepository interface {
	Create(ctx context.Context, r *reward.Reward) error
	Update(ctx context.Context, r *reward.Reward) error
	// FindForShare reads a reward and keeps it from changing until the transaction ends.
	FindForShare(ctx context.Context, id uuid.UUID) (*reward.Reward, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reward.Reward, error)
}

type RedemptionRepository interface {
	Create(ctx context.Context, r *redemption.Redemption) error
	FindByLedgerEntryID(ctx context.Context, entryID uuid.UUID) (*redemption.Redemption, error)
}

type BusinessRepository interface {
	Upsert(ctx context.Context, p *business.EarningPolicy) (*business.EarningPolicy, error)
}
