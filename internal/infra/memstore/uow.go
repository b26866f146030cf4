package memstore

import (
	"context"
	"log/slog"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within stages every write in a memTx and applies them in one step when fn
// succeeds. Locks taken by fn are held until then.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(u.store)
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &commandReads{store: u.store}
}

type memTx struct {
	store    *Store
	releases []func()
	held     map[string]struct{}

	entries     []*ledger.Entry
	rewards     map[uuid.UUID]*reward.Reward
	rewardOrder []uuid.UUID
	redemptions []*redemption.Redemption
	policies    map[uuid.UUID]*business.EarningPolicy
}

func newMemTx(store *Store) *memTx {
	return &memTx{
		store:    store,
		held:     make(map[string]struct{}),
		rewards:  make(map[uuid.UUID]*reward.Reward),
		policies: make(map[uuid.UUID]*business.EarningPolicy),
	}
}

func (t *memTx) Ledger() shared.LedgerRepository         { return &ledgerRepo{tx: t} }
func (t *memTx) Rewards() shared.RewardRepository         { return &rewardRepo{tx: t} }
func (t *memTx) Redemptions() shared.RedemptionRepository { return &redemptionRepo{tx: t} }
func (t *memTx) Businesses() shared.BusinessRepository    { return &businessRepo{tx: t} }
func (t *memTx) Reads() shared.CommandReads               { return &commandReads{store: t.store, tx: t} }

// lock is reentrant within one transaction, like a Postgres advisory lock.
func (t *memTx) lock(ctx context.Context, table *lockTable, key string) error {
	if _, ok := t.held[key]; ok {
		return nil
	}
	release, err := table.acquire(ctx, key)
	if err != nil {
		return infra.WrapRepoErr("failed to acquire lock", err, infra.KindUnavailable)
	}
	t.held[key] = struct{}{}
	t.releases = append(t.releases, release)
	return nil
}

func (t *memTx) release() {
	for i := len(t.releases) - 1; i >= 0; i-- {
		t.releases[i]()
	}
	t.releases = nil
}

// commit checks the same constraints the Postgres schema enforces and then
// applies all staged writes.
func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	known := func(businessID uuid.UUID) bool {
		if _, ok := t.policies[businessID]; ok {
			return true
		}
		_, ok := s.policies[businessID]
		return ok
	}

	staged := make(map[entryKey]struct{}, len(t.entries))
	stagedIDs := make(map[uuid.UUID]struct{}, len(t.entries))
	for _, e := range t.entries {
		k := entryKey{partition: e.Partition(), key: e.IdempotencyKey()}
		if _, dup := s.entryByKey[k]; dup {
			return infra.WrapRepoErr("ledger entry idempotency key already used", nil, infra.KindDuplicateKey)
		}
		if _, dup := staged[k]; dup {
			return infra.WrapRepoErr("ledger entry idempotency key already used", nil, infra.KindDuplicateKey)
		}
		if !known(e.BusinessID()) {
			return infra.WrapRepoErr("ledger entry references unknown business", nil, infra.KindForeignKeyViolated)
		}
		staged[k] = struct{}{}
		stagedIDs[e.ID()] = struct{}{}
	}
	for _, id := range t.rewardOrder {
		if !known(t.rewards[id].BusinessID()) {
			return infra.WrapRepoErr("reward references unknown business", nil, infra.KindForeignKeyViolated)
		}
	}
	for _, r := range t.redemptions {
		if _, dup := s.byEntryID[r.LedgerEntryID()]; dup {
			return infra.WrapRepoErr("ledger entry already redeemed", nil, infra.KindDuplicateKey)
		}
		_, stagedEntry := stagedIDs[r.LedgerEntryID()]
		_, committedEntry := s.entryByID[r.LedgerEntryID()]
		if !stagedEntry && !committedEntry {
			return infra.WrapRepoErr("redemption references unknown ledger entry", nil, infra.KindForeignKeyViolated)
		}
		_, stagedReward := t.rewards[r.RewardID()]
		_, committedReward := s.rewards[r.RewardID()]
		if !stagedReward && !committedReward {
			return infra.WrapRepoErr("redemption references unknown reward", nil, infra.KindForeignKeyViolated)
		}
	}

	for id, p := range t.policies {
		s.policies[id] = p
	}
	for _, e := range t.entries {
		p := e.Partition()
		s.partitions[p] = append(s.partitions[p], e)
		s.entryByKey[entryKey{partition: p, key: e.IdempotencyKey()}] = e
		s.entryByID[e.ID()] = e
	}
	for _, id := range t.rewardOrder {
		s.rewards[id] = t.rewards[id]
	}
	for _, r := range t.redemptions {
		p := ledger.Partition{CustomerID: r.CustomerID(), BusinessID: r.BusinessID()}
		s.redemptions[p] = append(s.redemptions[p], r)
		s.byEntryID[r.LedgerEntryID()] = r
	}

	if len(t.entries) > 0 {
		slog.Debug("memstore commit", "entries", len(t.entries), "redemptions", len(t.redemptions))
	}
	return nil
}
