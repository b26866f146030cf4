package memstore

import (
	"context"

	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"

	"github.com/google/uuid"
)

type ledgerRepo struct {
	tx *memTx
}

func (r *ledgerRepo) LockPartition(ctx context.Context, p ledger.Partition) error {
	return r.tx.lock(ctx, r.tx.store.partitionMu, p.Key())
}

func (r *ledgerRepo) Balance(_ context.Context, p ledger.Partition) (int64, error) {
	s := r.tx.store
	s.mu.RLock()
	balance := s.committedBalance(p)
	s.mu.RUnlock()

	for _, e := range r.tx.entries {
		if e.Partition() == p {
			balance += e.Delta()
		}
	}
	return balance, nil
}

func (r *ledgerRepo) FindByIdempotencyKey(_ context.Context, p ledger.Partition, key ledger.IdempotencyKey) (*ledger.Entry, error) {
	for _, e := range r.tx.entries {
		if e.Partition() == p && e.IdempotencyKey() == key {
			return e, nil
		}
	}

	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entryByKey[entryKey{partition: p, key: key}]; ok {
		return e, nil
	}
	return nil, infra.WrapRepoErr("ledger entry not found", nil, infra.KindNotFound)
}

func (r *ledgerRepo) Insert(_ context.Context, e *ledger.Entry) (int64, error) {
	for _, staged := range r.tx.entries {
		if staged.Partition() == e.Partition() && staged.IdempotencyKey() == e.IdempotencyKey() {
			return 0, infra.WrapRepoErr("ledger entry idempotency key already used", nil, infra.KindDuplicateKey)
		}
	}
	seq := r.tx.store.nextSeq()
	r.tx.entries = append(r.tx.entries, e.WithSeq(seq))
	return seq, nil
}

type rewardRepo struct {
	tx *memTx
}

func (r *rewardRepo) Create(_ context.Context, rw *reward.Reward) error {
	s := r.tx.store
	s.mu.RLock()
	_, exists := s.rewards[rw.ID()]
	s.mu.RUnlock()
	if _, staged := r.tx.rewards[rw.ID()]; exists || staged {
		return infra.WrapRepoErr("reward already exists", nil, infra.KindDuplicateKey)
	}
	r.stage(rw)
	return nil
}

func (r *rewardRepo) Update(_ context.Context, rw *reward.Reward) error {
	if _, staged := r.tx.rewards[rw.ID()]; !staged {
		s := r.tx.store
		s.mu.RLock()
		_, exists := s.rewards[rw.ID()]
		s.mu.RUnlock()
		if !exists {
			return infra.WrapRepoErr("reward not found", nil, infra.KindNotFound)
		}
	}
	r.stage(rw)
	return nil
}

func (r *rewardRepo) FindForShare(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	return r.findLocked(ctx, id)
}

func (r *rewardRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	return r.findLocked(ctx, id)
}

// findLocked takes an exclusive lock where Postgres would take a shared one.
func (r *rewardRepo) findLocked(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	if err := r.tx.lock(ctx, r.tx.store.rewardLockMu, id.String()); err != nil {
		return nil, err
	}
	return r.tx.rewardByID(id)
}

func (r *rewardRepo) stage(rw *reward.Reward) {
	if _, ok := r.tx.rewards[rw.ID()]; !ok {
		r.tx.rewardOrder = append(r.tx.rewardOrder, rw.ID())
	}
	r.tx.rewards[rw.ID()] = cloneReward(rw)
}

type redemptionRepo struct {
	tx *memTx
}

func (r *redemptionRepo) Create(_ context.Context, rd *redemption.Redemption) error {
	for _, staged := range r.tx.redemptions {
		if staged.LedgerEntryID() == rd.LedgerEntryID() {
			return infra.WrapRepoErr("ledger entry already redeemed", nil, infra.KindDuplicateKey)
		}
	}
	r.tx.redemptions = append(r.tx.redemptions, rd)
	return nil
}

func (r *redemptionRepo) FindByLedgerEntryID(_ context.Context, entryID uuid.UUID) (*redemption.Redemption, error) {
	return r.tx.redemptionByEntryID(entryID)
}

type businessRepo struct {
	tx *memTx
}

func (r *businessRepo) Upsert(_ context.Context, p *business.EarningPolicy) (*business.EarningPolicy, error) {
	r.tx.policies[p.BusinessID()] = p
	return p, nil
}

func (t *memTx) rewardByID(id uuid.UUID) (*reward.Reward, error) {
	if rw, ok := t.rewards[id]; ok {
		return cloneReward(rw), nil
	}
	return t.store.rewardByID(id)
}

func (t *memTx) redemptionByEntryID(entryID uuid.UUID) (*redemption.Redemption, error) {
	for _, rd := range t.redemptions {
		if rd.LedgerEntryID() == entryID {
			return rd, nil
		}
	}
	return t.store.redemptionByEntryID(entryID)
}

func (t *memTx) earningPolicy(businessID uuid.UUID) (*business.EarningPolicy, error) {
	if p, ok := t.policies[businessID]; ok {
		return p, nil
	}
	return t.store.earningPolicy(businessID)
}

func (s *Store) rewardByID(id uuid.UUID) (*reward.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rw, ok := s.rewards[id]
	if !ok {
		return nil, infra.WrapRepoErr("reward not found", nil, infra.KindNotFound)
	}
	return cloneReward(rw), nil
}

func (s *Store) redemptionByEntryID(entryID uuid.UUID) (*redemption.Redemption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rd, ok := s.byEntryID[entryID]
	if !ok {
		return nil, infra.WrapRepoErr("redemption not found", nil, infra.KindNotFound)
	}
	return rd, nil
}

func (s *Store) earningPolicy(businessID uuid.UUID) (*business.EarningPolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[businessID]
	if !ok {
		return nil, infra.WrapRepoErr("business not found", nil, infra.KindNotFound)
	}
	return p, nil
}

type commandReads struct {
	store *Store
	tx    *memTx
}

func (r *commandReads) EarningPolicy(_ context.Context, businessID uuid.UUID) (*business.EarningPolicy, error) {
	if r.tx != nil {
		return r.tx.earningPolicy(businessID)
	}
	return r.store.earningPolicy(businessID)
}

func (r *commandReads) RewardByID(_ context.Context, id uuid.UUID) (*reward.Reward, error) {
	if r.tx != nil {
		return r.tx.rewardByID(id)
	}
	return r.store.rewardByID(id)
}

func (r *commandReads) RedemptionByLedgerEntryID(_ context.Context, entryID uuid.UUID) (*redemption.Redemption, error) {
	if r.tx != nil {
		return r.tx.redemptionByEntryID(entryID)
	}
	return r.store.redemptionByEntryID(entryID)
}
