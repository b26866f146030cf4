package memstore

import (
	"bytes"
	"context"
	"sort"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type LedgerReadStore struct {
	store *Store
}

func NewLedgerReadStore(store *Store) *LedgerReadStore {
	return &LedgerReadStore{store: store}
}

func (r *LedgerReadStore) Balance(_ context.Context, p ledger.Partition) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.committedBalance(p), nil
}

func (r *LedgerReadStore) Summary(_ context.Context, p ledger.Partition) (ledger.Summary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return ledger.Summarize(r.store.partitions[p], int64(len(r.store.redemptions[p]))), nil
}

func (r *LedgerReadStore) HistoryFirstPage(_ context.Context, p ledger.Partition, limit int32) ([]*ledger.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return newestFirst(r.store.partitions[p], 0, limit), nil
}

func (r *LedgerReadStore) HistoryKeyset(_ context.Context, p ledger.Partition, beforeSeq int64, limit int32) ([]*ledger.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return newestFirst(r.store.partitions[p], beforeSeq, limit), nil
}

func (r *LedgerReadStore) TopCustomers(_ context.Context, businessID uuid.UUID, limit int32) ([]ledger.Accrual, error) {
	r.store.mu.RLock()
	var rows []ledger.Accrual
	for p, entries := range r.store.partitions {
		if p.BusinessID != businessID {
			continue
		}
		s := ledger.Summarize(entries, 0)
		rows = append(rows, ledger.Accrual{
			CustomerID:  p.CustomerID,
			TotalEarned: s.TotalEarned,
			VisitCount:  s.VisitCount,
			LastVisit:   s.LastVisit,
		})
	}
	r.store.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalEarned != rows[j].TotalEarned {
			return rows[i].TotalEarned > rows[j].TotalEarned
		}
		return bytes.Compare(rows[i].CustomerID[:], rows[j].CustomerID[:]) < 0
	})
	if len(rows) > int(limit) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *LedgerReadStore) BusinessStats(_ context.Context, businessID uuid.UUID, since time.Time) (ledger.BusinessStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var stats ledger.BusinessStats
	for p, entries := range r.store.partitions {
		if p.BusinessID != businessID || len(entries) == 0 {
			continue
		}
		stats.ActiveCustomers++
		s := ledger.Summarize(entries, 0)
		stats.TotalCheckIns += s.VisitCount
		stats.PointsIssued += s.TotalEarned
		stats.CheckInsSince += ledger.CountCheckInsSince(entries, since)
	}
	for p, rds := range r.store.redemptions {
		if p.BusinessID == businessID {
			stats.RewardsRedeemed += int64(len(rds))
		}
	}
	return stats, nil
}

func (r *LedgerReadStore) RecentCheckIns(_ context.Context, businessID uuid.UUID, limit int32) ([]*ledger.Entry, error) {
	r.store.mu.RLock()
	var result []*ledger.Entry
	for p, entries := range r.store.partitions {
		if p.BusinessID != businessID {
			continue
		}
		for _, e := range entries {
			if e.Reason() == ledger.ReasonCheckIn {
				result = append(result, e)
			}
		}
	}
	r.store.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Seq() > result[j].Seq() })
	if len(result) > int(limit) {
		result = result[:limit]
	}
	return result, nil
}

func (r *LedgerReadStore) CustomerBalances(_ context.Context, customerID uuid.UUID) ([]ledger.CustomerBalance, error) {
	r.store.mu.RLock()
	type row struct {
		balance ledger.CustomerBalance
		lastSeq int64
	}
	var rows []row
	for p, entries := range r.store.partitions {
		if p.CustomerID != customerID || len(entries) == 0 {
			continue
		}
		rows = append(rows, row{
			balance: ledger.CustomerBalance{
				BusinessID: p.BusinessID,
				Summary:    ledger.Summarize(entries, int64(len(r.store.redemptions[p]))),
			},
			lastSeq: entries[len(entries)-1].Seq(),
		})
	}
	r.store.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool { return rows[i].lastSeq > rows[j].lastSeq })
	result := make([]ledger.CustomerBalance, len(rows))
	for i, rw := range rows {
		result[i] = rw.balance
	}
	return result, nil
}

func (r *LedgerReadStore) CustomerActivity(_ context.Context, customerID uuid.UUID, limit int32) ([]*ledger.Entry, error) {
	r.store.mu.RLock()
	var result []*ledger.Entry
	for p, entries := range r.store.partitions {
		if p.CustomerID == customerID {
			result = append(result, entries...)
		}
	}
	r.store.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Seq() > result[j].Seq() })
	if len(result) > int(limit) {
		result = result[:limit]
	}
	return result, nil
}

// newestFirst walks an ascending slice backwards. beforeSeq of zero means no bound.
func newestFirst(entries []*ledger.Entry, beforeSeq int64, limit int32) []*ledger.Entry {
	result := make([]*ledger.Entry, 0, min(int(limit), len(entries)))
	for i := len(entries) - 1; i >= 0 && len(result) < int(limit); i-- {
		if beforeSeq > 0 && entries[i].Seq() >= beforeSeq {
			continue
		}
		result = append(result, entries[i])
	}
	return result
}

type RewardReadStore struct {
	store *Store
}

func NewRewardReadStore(store *Store) *RewardReadStore {
	return &RewardReadStore{store: store}
}

func (r *RewardReadStore) ListActive(_ context.Context, businessID uuid.UUID) ([]*queries.RewardView, error) {
	return r.list(businessID, true), nil
}

func (r *RewardReadStore) ListAll(_ context.Context, businessID uuid.UUID) ([]*queries.RewardView, error) {
	return r.list(businessID, false), nil
}

func (r *RewardReadStore) list(businessID uuid.UUID, activeOnly bool) []*queries.RewardView {
	r.store.mu.RLock()
	var rewards []*reward.Reward
	for _, rw := range r.store.rewards {
		if rw.BusinessID() != businessID || (activeOnly && !rw.IsActive()) {
			continue
		}
		rewards = append(rewards, rw)
	}
	r.store.mu.RUnlock()

	sort.Slice(rewards, func(i, j int) bool {
		a, b := rewards[i], rewards[j]
		if a.IsActive() != b.IsActive() {
			return a.IsActive()
		}
		if a.PointsCost() != b.PointsCost() {
			return a.PointsCost() < b.PointsCost()
		}
		ai, bi := a.ID(), b.ID()
		return bytes.Compare(ai[:], bi[:]) < 0
	})

	result := make([]*queries.RewardView, len(rewards))
	for i, rw := range rewards {
		result[i] = queries.NewRewardView(rw)
	}
	return result
}

type RedemptionReadStore struct {
	store *Store
}

func NewRedemptionReadStore(store *Store) *RedemptionReadStore {
	return &RedemptionReadStore{store: store}
}

func (r *RedemptionReadStore) ListForPartition(_ context.Context, p ledger.Partition, limit int32) ([]*queries.RedemptionView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rds := r.store.redemptions[p]
	result := make([]*queries.RedemptionView, 0, min(int(limit), len(rds)))
	for i := len(rds) - 1; i >= 0 && len(result) < int(limit); i-- {
		rd := rds[i]
		var name string
		if rw, ok := r.store.rewards[rd.RewardID()]; ok {
			name = rw.Name().String()
		}
		result = append(result, &queries.RedemptionView{
			ID:            rd.ID(),
			CustomerID:    rd.CustomerID(),
			BusinessID:    rd.BusinessID(),
			RewardID:      rd.RewardID(),
			RewardName:    name,
			LedgerEntryID: rd.LedgerEntryID(),
			PointsSpent:   rd.PointsSpent(),
			CreatedAt:     rd.CreatedAt(),
		})
	}
	return result, nil
}
