//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/pkg/clock"
	queriesmock "loyalty-ledger/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStoreDown = errors.New("store unavailable")

func fixedClock() clock.Clock {
	return clock.NewMockClock(time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC))
}

// =============================================================================
// Summary Tests
// =============================================================================

func TestBalanceQueries_Summary(t *testing.T) {
	ctx := context.Background()
	customerID, businessID := uuid.New(), uuid.New()
	p := ledger.Partition{CustomerID: customerID, BusinessID: businessID}
	visit := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	stored := ledger.Summary{Balance: 50, VisitCount: 3, LastVisit: &visit, TotalEarned: 150, TotalSpent: 100, RewardsRedeemed: 1}

	testCases := []struct {
		name          string
		setupMock     func(*queriesmock.MockLedgerReader, *queriesmock.MockSummaryCache)
		expectedError error
	}{
		{
			name: "cache hit skips the ledger",
			setupMock: func(l *queriesmock.MockLedgerReader, c *queriesmock.MockSummaryCache) {
				c.EXPECT().Get(p).Return(stored, true)
			},
		},
		{
			name: "cache miss reads and stores under the epoch",
			setupMock: func(l *queriesmock.MockLedgerReader, c *queriesmock.MockSummaryCache) {
				gomock.InOrder(
					c.EXPECT().Get(p).Return(ledger.Summary{}, false),
					c.EXPECT().Begin(p).Return(uint64(7)),
					l.EXPECT().Summary(ctx, customerID, businessID).Return(stored, nil),
					c.EXPECT().Put(p, stored, uint64(7)),
				)
			},
		},
		{
			name: "ledger error is not cached",
			setupMock: func(l *queriesmock.MockLedgerReader, c *queriesmock.MockSummaryCache) {
				c.EXPECT().Get(p).Return(ledger.Summary{}, false)
				c.EXPECT().Begin(p).Return(uint64(1))
				l.EXPECT().Summary(ctx, customerID, businessID).Return(ledger.Summary{}, errStoreDown)
			},
			expectedError: errStoreDown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := queriesmock.NewMockLedgerReader(ctrl)
			mockCache := queriesmock.NewMockSummaryCache(ctrl)
			tc.setupMock(mockLedger, mockCache)

			uc := queries.NewBalanceQueries(mockLedger, queriesmock.NewMockRedemptionReadStore(ctrl), mockCache, fixedClock())
			got, err := uc.Summary(ctx, customerID, businessID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			want := &queries.SummaryView{
				CustomerID: customerID, BusinessID: businessID,
				Balance: 50, VisitCount: 3, LastVisit: &visit, TotalEarned: 150, TotalSpent: 100, RewardsRedeemed: 1,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBalanceQueries_Summary_NilCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	customerID, businessID := uuid.New(), uuid.New()

	mockLedger := queriesmock.NewMockLedgerReader(ctrl)
	mockLedger.EXPECT().Summary(ctx, customerID, businessID).Return(ledger.Summary{Balance: 10}, nil).Times(2)

	uc := queries.NewBalanceQueries(mockLedger, queriesmock.NewMockRedemptionReadStore(ctrl), nil, fixedClock())
	for range 2 {
		got, err := uc.Summary(ctx, customerID, businessID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.Balance)
	}
}

// =============================================================================
// Leaderboard / Listing Tests
// =============================================================================

func TestBalanceQueries_TopCustomers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	businessID := uuid.New()
	a, b := uuid.New(), uuid.New()

	mockLedger := queriesmock.NewMockLedgerReader(ctrl)
	mockLedger.EXPECT().TopCustomers(ctx, businessID, queries.DefaultListLimit).Return([]ledger.Accrual{
		{CustomerID: a, TotalEarned: 300, VisitCount: 6},
		{CustomerID: b, TotalEarned: 100, VisitCount: 2},
	}, nil)

	uc := queries.NewBalanceQueries(mockLedger, queriesmock.NewMockRedemptionReadStore(ctrl), nil, fixedClock())
	got, err := uc.TopCustomers(ctx, businessID, 0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, a, got[0].CustomerID)
	assert.Equal(t, 2, got[1].Rank)
	assert.Equal(t, int64(100), got[1].TotalEarned)
}

func TestBalanceQueries_BusinessStats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	businessID := uuid.New()
	midnight := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mockLedger := queriesmock.NewMockLedgerReader(ctrl)
	mockLedger.EXPECT().BusinessStats(ctx, businessID, midnight).
		Return(ledger.BusinessStats{TotalCheckIns: 4, ActiveCustomers: 2, RewardsRedeemed: 1, PointsIssued: 200, CheckInsSince: 3}, nil)

	uc := queries.NewBalanceQueries(mockLedger, queriesmock.NewMockRedemptionReadStore(ctrl), nil, fixedClock())
	got, err := uc.BusinessStats(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, &queries.BusinessStatsView{
		BusinessID: businessID, TotalCheckIns: 4, ActiveCustomers: 2, RewardsRedeemed: 1, PointsIssued: 200, CheckInsToday: 3,
	}, got)
}

func TestBalanceQueries_BusinessStats_DayStartsAtUTCMidnight(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	businessID := uuid.New()
	tokyo := time.FixedZone("JST", 9*60*60)

	// 2026-03-02 08:00 JST is still 2026-03-01 in UTC.
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, tokyo))

	mockLedger := queriesmock.NewMockLedgerReader(ctrl)
	mockLedger.EXPECT().BusinessStats(ctx, businessID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)).
		Return(ledger.BusinessStats{}, nil)

	uc := queries.NewBalanceQueries(mockLedger, queriesmock.NewMockRedemptionReadStore(ctrl), nil, clk)
	_, err := uc.BusinessStats(ctx, businessID)
	require.NoError(t, err)
}

// =============================================================================
// Overview Tests
// =============================================================================

func TestBalanceQueries_Overview(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cafe, bakery := uuid.New(), uuid.New()
	visit := time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC)

	balances := []ledger.CustomerBalance{
		{BusinessID: cafe, Summary: ledger.Summary{Balance: 120, VisitCount: 4, LastVisit: &visit, TotalEarned: 220, TotalSpent: 100, RewardsRedeemed: 1}},
		{BusinessID: bakery, Summary: ledger.Summary{Balance: 15, TotalEarned: 15}},
	}

	testCases := []struct {
		name          string
		setupMock     func(m *queriesmock.MockLedgerReader)
		expected      *queries.CustomerOverviewView
		expectedError error
	}{
		{
			name: "success: totals across businesses",
			setupMock: func(m *queriesmock.MockLedgerReader) {
				m.EXPECT().CustomerBalances(ctx, customerID).Return(balances, nil)
				m.EXPECT().CustomerActivity(ctx, customerID, 5).Return(nil, nil)
			},
			expected: &queries.CustomerOverviewView{
				CustomerID:        customerID,
				TotalPoints:       135,
				BusinessesVisited: 1,
				RewardsClaimed:    1,
				Businesses: []*queries.BusinessBalanceView{
					{BusinessID: cafe, Balance: 120, VisitCount: 4, LastVisit: &visit, TotalEarned: 220, TotalSpent: 100, RewardsRedeemed: 1},
					{BusinessID: bakery, Balance: 15, TotalEarned: 15},
				},
				RecentActivity: []*queries.EntryView{},
			},
		},
		{
			name: "error: balances read fails",
			setupMock: func(m *queriesmock.MockLedgerReader) {
				m.EXPECT().CustomerBalances(ctx, customerID).Return(nil, errStoreDown)
			},
			expectedError: errStoreDown,
		},
		{
			name: "error: activity read fails",
			setupMock: func(m *queriesmock.MockLedgerReader) {
				m.EXPECT().CustomerBalances(ctx, customerID).Return(balances, nil)
				m.EXPECT().CustomerActivity(ctx, customerID, 5).Return(nil, errStoreDown)
			},
			expectedError: errStoreDown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLedger := queriesmock.NewMockLedgerReader(ctrl)
			tc.setupMock(mockLedger)

			uc := queries.NewBalanceQueries(mockLedger, queriesmock.NewMockRedemptionReadStore(ctrl), nil, fixedClock())
			got, err := uc.Overview(ctx, customerID, 5)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("overview mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBalanceQueries_ListRedemptions_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	customerID, businessID := uuid.New(), uuid.New()
	p := ledger.Partition{CustomerID: customerID, BusinessID: businessID}

	mockRedemptions := queriesmock.NewMockRedemptionReadStore(ctrl)
	mockRedemptions.EXPECT().ListForPartition(ctx, p, int32(queries.MaxListLimit)).Return(nil, nil)

	uc := queries.NewBalanceQueries(queriesmock.NewMockLedgerReader(ctrl), mockRedemptions, nil, fixedClock())
	_, err := uc.ListRedemptions(ctx, customerID, businessID, 10_000)
	assert.NoError(t, err)
}
