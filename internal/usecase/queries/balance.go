package queries

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/metrics"

	"github.com/google/uuid"
)

type BalanceQueries interface {
	Summary(ctx context.Context, customerID, businessID uuid.UUID) (*SummaryView, error)
	TopCustomers(ctx context.Context, businessID uuid.UUID, limit int) ([]*LeaderboardEntry, error)
	History(ctx context.Context, customerID, businessID uuid.UUID, cursor *Cursor, limit int) ([]*EntryView, *Cursor, error)
	BusinessStats(ctx context.Context, businessID uuid.UUID) (*BusinessStatsView, error)
	RecentCheckIns(ctx context.Context, businessID uuid.UUID, limit int) ([]*EntryView, error)
	ListRedemptions(ctx context.Context, customerID, businessID uuid.UUID, limit int) ([]*RedemptionView, error)
	Overview(ctx context.Context, customerID uuid.UUID, activityLimit int) (*CustomerOverviewView, error)
}

type balanceQueriesImpl struct {
	ledger      LedgerReader
	redemptions RedemptionReadStore
	cache       SummaryCache
	clock       clock.Clock
}

// NewBalanceQueries builds the dashboard projections. cache may be nil.
func NewBalanceQueries(ledger LedgerReader, redemptions RedemptionReadStore, cache SummaryCache, clk clock.Clock) BalanceQueries {
	return &balanceQueriesImpl{ledger: ledger, redemptions: redemptions, cache: cache, clock: clk}
}

func (q *balanceQueriesImpl) Summary(ctx context.Context, customerID, businessID uuid.UUID) (*SummaryView, error) {
	p := ledger.Partition{CustomerID: customerID, BusinessID: businessID}

	if q.cache == nil {
		s, err := q.ledger.Summary(ctx, customerID, businessID)
		if err != nil {
			return nil, err
		}
		return newSummaryView(p, s), nil
	}

	if s, ok := q.cache.Get(p); ok {
		metrics.RecordCacheLookup(true)
		return newSummaryView(p, s), nil
	}
	metrics.RecordCacheLookup(false)

	epoch := q.cache.Begin(p)
	s, err := q.ledger.Summary(ctx, customerID, businessID)
	if err != nil {
		return nil, err
	}
	q.cache.Put(p, s, epoch)
	return newSummaryView(p, s), nil
}

func (q *balanceQueriesImpl) TopCustomers(ctx context.Context, businessID uuid.UUID, limit int) ([]*LeaderboardEntry, error) {
	rows, err := q.ledger.TopCustomers(ctx, businessID, ValidateLimit(limit))
	if err != nil {
		return nil, err
	}
	result := make([]*LeaderboardEntry, len(rows))
	for i, row := range rows {
		result[i] = &LeaderboardEntry{
			Rank:        i + 1,
			CustomerID:  row.CustomerID,
			TotalEarned: row.TotalEarned,
			VisitCount:  row.VisitCount,
			LastVisit:   row.LastVisit,
		}
	}
	return result, nil
}

func (q *balanceQueriesImpl) History(ctx context.Context, customerID, businessID uuid.UUID, cursor *Cursor, limit int) ([]*EntryView, *Cursor, error) {
	entries, next, err := q.ledger.History(ctx, customerID, businessID, cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	return toEntryViews(entries), next, nil
}

// BusinessStats reports lifetime totals plus check-ins since midnight UTC.
func (q *balanceQueriesImpl) BusinessStats(ctx context.Context, businessID uuid.UUID) (*BusinessStatsView, error) {
	s, err := q.ledger.BusinessStats(ctx, businessID, startOfDay(q.clock.Now()))
	if err != nil {
		return nil, err
	}
	return &BusinessStatsView{
		BusinessID:      businessID,
		TotalCheckIns:   s.TotalCheckIns,
		ActiveCustomers: s.ActiveCustomers,
		RewardsRedeemed: s.RewardsRedeemed,
		PointsIssued:    s.PointsIssued,
		CheckInsToday:   s.CheckInsSince,
	}, nil
}

func (q *balanceQueriesImpl) RecentCheckIns(ctx context.Context, businessID uuid.UUID, limit int) ([]*EntryView, error) {
	entries, err := q.ledger.RecentCheckIns(ctx, businessID, ValidateLimit(limit))
	if err != nil {
		return nil, err
	}
	return toEntryViews(entries), nil
}

func (q *balanceQueriesImpl) ListRedemptions(ctx context.Context, customerID, businessID uuid.UUID, limit int) ([]*RedemptionView, error) {
	p := ledger.Partition{CustomerID: customerID, BusinessID: businessID}
	return q.redemptions.ListForPartition(ctx, p, int32(ValidateLimit(limit)))
}

// Overview reads balances and recent activity as two statements, so an append
// landing between them can show up in one but not the other.
func (q *balanceQueriesImpl) Overview(ctx context.Context, customerID uuid.UUID, activityLimit int) (*CustomerOverviewView, error) {
	rows, err := q.ledger.CustomerBalances(ctx, customerID)
	if err != nil {
		return nil, err
	}
	entries, err := q.ledger.CustomerActivity(ctx, customerID, activityLimit)
	if err != nil {
		return nil, err
	}

	view := &CustomerOverviewView{
		CustomerID:     customerID,
		Businesses:     make([]*BusinessBalanceView, len(rows)),
		RecentActivity: toEntryViews(entries),
	}
	for i, row := range rows {
		view.TotalPoints += row.Balance
		view.RewardsClaimed += row.RewardsRedeemed
		if row.VisitCount > 0 {
			view.BusinessesVisited++
		}
		view.Businesses[i] = &BusinessBalanceView{
			BusinessID:      row.BusinessID,
			Balance:         row.Balance,
			VisitCount:      row.VisitCount,
			LastVisit:       row.LastVisit,
			TotalEarned:     row.TotalEarned,
			TotalSpent:      row.TotalSpent,
			RewardsRedeemed: row.RewardsRedeemed,
		}
	}
	return view, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newSummaryView(p ledger.Partition, s ledger.Summary) *SummaryView {
	return &SummaryView{
		CustomerID:      p.CustomerID,
		BusinessID:      p.BusinessID,
		Balance:         s.Balance,
		VisitCount:      s.VisitCount,
		LastVisit:       s.LastVisit,
		TotalEarned:     s.TotalEarned,
		TotalSpent:      s.TotalSpent,
		RewardsRedeemed: s.RewardsRedeemed,
	}
}

func toEntryViews(entries []*ledger.Entry) []*EntryView {
	result := make([]*EntryView, len(entries))
	for i, e := range entries {
		result[i] = NewEntryView(e)
	}
	return result
}
