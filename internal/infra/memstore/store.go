package memstore

import (
	"sync"
	"sync/atomic"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

// Store keeps all ledger state in process memory. Writes go through a unit of
// work and become visible to readers all at once on commit.
type Store struct {
	mu sync.RWMutex

	policies    map[uuid.UUID]*business.EarningPolicy
	partitions  map[ledger.Partition][]*ledger.Entry // ascending seq
	entryByKey  map[entryKey]*ledger.Entry
	entryByID   map[uuid.UUID]*ledger.Entry
	rewards     map[uuid.UUID]*reward.Reward
	redemptions map[ledger.Partition][]*redemption.Redemption // ascending creation
	byEntryID   map[uuid.UUID]*redemption.Redemption

	seq          atomic.Int64
	partitionMu  *lockTable
	rewardLockMu *lockTable
}

type entryKey struct {
	partition ledger.Partition
	key       ledger.IdempotencyKey
}

func New() *Store {
	return &Store{
		policies:     make(map[uuid.UUID]*business.EarningPolicy),
		partitions:   make(map[ledger.Partition][]*ledger.Entry),
		entryByKey:   make(map[entryKey]*ledger.Entry),
		entryByID:    make(map[uuid.UUID]*ledger.Entry),
		rewards:      make(map[uuid.UUID]*reward.Reward),
		redemptions:  make(map[ledger.Partition][]*redemption.Redemption),
		byEntryID:    make(map[uuid.UUID]*redemption.Redemption),
		partitionMu:  newLockTable(),
		rewardLockMu: newLockTable(),
	}
}

func (s *Store) nextSeq() int64 {
	return s.seq.Add(1)
}

// committedBalance must be called with mu held.
func (s *Store) committedBalance(p ledger.Partition) int64 {
	return ledger.Sum(s.partitions[p])
}

func cloneReward(r *reward.Reward) *reward.Reward {
	return reward.ReconstructReward(
		r.ID(), r.BusinessID(),
		r.Name().String(), r.Description(),
		r.PointsCost(), r.IsActive(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}
