//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/infra/cache"
	"loyalty-ledger/internal/infra/memstore"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock

	ledger      *commands.PointsLedger
	checkIns    commands.CheckInCommands
	redemptions commands.RedemptionCommands
	rewards     commands.RewardCommands
	bonuses     commands.BonusCommands
	businesses  commands.BusinessCommands
	balances    queries.BalanceQueries

	businessID uuid.UUID
	customerID uuid.UUID
}

func (s *LedgerCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	store := memstore.New()
	uow := memstore.NewUnitOfWork(store)
	summaries, err := cache.NewSummaryCache(128)
	s.Require().NoError(err)

	s.ledger = commands.NewPointsLedger(uow, memstore.NewLedgerReadStore(store), summaries)
	s.checkIns = commands.NewCheckInUseCase(s.ledger, uow, s.clock, 50)
	s.redemptions = commands.NewRedemptionUseCase(s.ledger, uow, s.clock)
	s.rewards = commands.NewRewardUseCase(uow, s.clock)
	s.bonuses = commands.NewBonusUseCase(s.ledger, uow, s.clock)
	s.businesses = commands.NewBusinessUseCase(uow, s.clock)
	s.balances = queries.NewBalanceQueries(s.ledger, memstore.NewRedemptionReadStore(store), summaries, s.clock)

	s.businessID = uuid.New()
	s.customerID = uuid.New()
	_, err = s.businesses.ConfigureEarning(s.ctx, s.businessID, 50)
	s.Require().NoError(err)
}

func TestLedgerCommandsSuite(t *testing.T) {
	suite.Run(t, new(LedgerCommandsTestSuite))
}

func (s *LedgerCommandsTestSuite) fund(points int64) {
	_, err := s.bonuses.Grant(s.ctx, s.businessID, commands.GrantBonusRequest{
		CustomerID:     s.customerID,
		Points:         points,
		IdempotencyKey: "fund-" + uuid.NewString(),
	})
	s.Require().NoError(err)
}

func (s *LedgerCommandsTestSuite) createReward(cost int64) uuid.UUID {
	view, err := s.rewards.Upsert(s.ctx, s.businessID, commands.UpsertRewardRequest{
		Name:       fmt.Sprintf("reward %d", cost),
		PointsCost: cost,
	})
	s.Require().NoError(err)
	return view.ID
}

func (s *LedgerCommandsTestSuite) balance() int64 {
	b, err := s.ledger.Balance(s.ctx, s.customerID, s.businessID)
	s.Require().NoError(err)
	return b
}

func (s *LedgerCommandsTestSuite) entries() []*ledger.Entry {
	page, _, err := s.ledger.History(s.ctx, s.customerID, s.businessID, nil, queries.MaxListLimit)
	s.Require().NoError(err)
	return page
}

// ================================================================================
// CheckIn
// ================================================================================

func (s *LedgerCommandsTestSuite) TestCheckIn() {
	s.Run("replaying a key credits once and returns the original outcome", func() {
		req := commands.CheckInRequest{CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: "k1"}

		first, err := s.checkIns.CheckIn(s.ctx, req)
		s.Require().NoError(err)
		s.Equal(int64(50), first.PointsAwarded)
		s.Equal(int64(50), first.NewBalance)
		s.False(first.Replayed)

		for range 3 {
			again, err := s.checkIns.CheckIn(s.ctx, req)
			s.Require().NoError(err)
			s.True(again.Replayed)
			s.Equal(first.EntryID, again.EntryID)
			s.Equal(first.PointsAwarded, again.PointsAwarded)
			s.Equal(first.NewBalance, again.NewBalance)
		}

		s.Equal(int64(50), s.balance())
		s.Len(s.entries(), 1)
	})

	s.Run("business setting overrides default award", func() {
		_, err := s.businesses.ConfigureEarning(s.ctx, s.businessID, 75)
		s.Require().NoError(err)

		res, err := s.checkIns.CheckIn(s.ctx, commands.CheckInRequest{
			CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: "k-custom",
		})
		s.Require().NoError(err)
		s.Equal(int64(75), res.PointsAwarded)
	})

	testCases := []struct {
		name          string
		req           commands.CheckInRequest
		expectedError error
	}{
		{
			name:          "unknown business",
			req:           commands.CheckInRequest{CustomerID: s.customerID, BusinessID: uuid.New(), IdempotencyKey: "k"},
			expectedError: commands.ErrUnknownBusiness,
		},
		{
			name:          "blank idempotency key",
			req:           commands.CheckInRequest{CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: "  "},
			expectedError: commands.ErrIdempotencyKeyRequired,
		},
		{
			name:          "nil customer",
			req:           commands.CheckInRequest{BusinessID: s.businessID, IdempotencyKey: "k"},
			expectedError: ledger.ErrInvalidPartition,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.checkIns.CheckIn(s.ctx, tc.req)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.expectedError), "got %v", err)
		})
	}

	s.Run("key used by a bonus is not a check-in", func() {
		_, err := s.bonuses.Grant(s.ctx, s.businessID, commands.GrantBonusRequest{
			CustomerID: s.customerID, Points: 10, IdempotencyKey: "shared-key",
		})
		s.Require().NoError(err)

		_, err = s.checkIns.CheckIn(s.ctx, commands.CheckInRequest{
			CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: "shared-key",
		})
		s.True(errs.Is(err, commands.ErrDuplicateCheckIn))
	})

	s.Run("cancelled request leaves no entry", func() {
		before := len(s.entries())
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		_, err := s.checkIns.CheckIn(ctx, commands.CheckInRequest{
			CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: "cancelled",
		})
		s.ErrorIs(err, context.Canceled)
		s.Len(s.entries(), before)
	})
}

// ================================================================================
// Redeem
// ================================================================================

func (s *LedgerCommandsTestSuite) TestRedeem() {
	s.Run("balance 150, cost 100: one debit and one redemption", func() {
		s.SetupTest()
		s.fund(150)
		rewardID := s.createReward(100)

		res, err := s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID})
		s.Require().NoError(err)
		s.Equal(int64(100), res.PointsSpent)
		s.Equal(int64(50), res.NewBalance)
		s.Equal(int64(50), s.balance())

		entries := s.entries()
		s.Require().Len(entries, 2)
		debit := entries[0]
		s.Equal(res.LedgerEntryID, debit.ID())
		s.Equal(int64(-100), debit.Delta())
		s.Equal(ledger.ReasonRedemption, debit.Reason())

		list, err := s.balances.ListRedemptions(s.ctx, s.customerID, s.businessID, 10)
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal(debit.ID(), list[0].LedgerEntryID)
		s.Equal("reward 100", list[0].RewardName)
	})

	s.Run("balance 50, cost 100: insufficient and nothing written", func() {
		s.SetupTest()
		s.fund(50)
		rewardID := s.createReward(100)

		_, err := s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID})
		s.True(errs.Is(err, commands.ErrInsufficientBalance))
		s.Equal(int64(50), s.balance())
		s.Len(s.entries(), 1)

		list, err := s.balances.ListRedemptions(s.ctx, s.customerID, s.businessID, 10)
		s.Require().NoError(err)
		s.Empty(list)
	})

	s.Run("inactive reward fails regardless of balance", func() {
		s.SetupTest()
		s.fund(1000)
		rewardID := s.createReward(100)
		_, err := s.rewards.SetActive(s.ctx, s.businessID, rewardID, false)
		s.Require().NoError(err)

		_, err = s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID})
		s.True(errs.Is(err, commands.ErrRewardInactive))
		s.Equal(int64(1000), s.balance())
	})

	s.Run("unknown reward", func() {
		s.SetupTest()
		_, err := s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: uuid.New()})
		s.True(errs.Is(err, commands.ErrUnknownReward))
	})

	s.Run("retry with the same key returns the original redemption", func() {
		s.SetupTest()
		s.fund(300)
		rewardID := s.createReward(100)
		req := commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID, IdempotencyKey: "redeem-1"}

		first, err := s.redemptions.Redeem(s.ctx, req)
		s.Require().NoError(err)
		second, err := s.redemptions.Redeem(s.ctx, req)
		s.Require().NoError(err)

		s.True(second.Replayed)
		s.Equal(first.RedemptionID, second.RedemptionID)
		s.Equal(first.NewBalance, second.NewBalance)
		s.Equal(int64(200), s.balance())
	})

	s.Run("same key for a different reward is rejected", func() {
		s.SetupTest()
		s.fund(500)
		cheap := s.createReward(100)
		pricey := s.createReward(300)

		first, err := s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: cheap, IdempotencyKey: "k"})
		s.Require().NoError(err)
		s.False(first.Replayed)

		second, err := s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: pricey, IdempotencyKey: "k"})
		s.Nil(second)
		s.True(errs.Is(err, commands.ErrIdempotencyKeyMismatch), "got %v", err)
		s.Equal(int64(400), s.balance())
		s.Len(s.entries(), 2)
	})

	s.Run("redemption appends are counted in ledger metrics", func() {
		s.SetupTest()
		s.fund(100)
		rewardID := s.createReward(100)

		_, err := s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID})
		s.Require().NoError(err)

		rec := httptest.NewRecorder()
		metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		s.Contains(rec.Body.String(), `loyalty_ledger_ledger_appends_total{outcome="committed",reason="redemption"}`)
	})

	s.Run("redeem then summary shows the debit", func() {
		s.SetupTest()
		s.fund(150)
		rewardID := s.createReward(100)

		before, err := s.balances.Summary(s.ctx, s.customerID, s.businessID)
		s.Require().NoError(err)
		s.Equal(int64(150), before.Balance)

		_, err = s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID})
		s.Require().NoError(err)

		after, err := s.balances.Summary(s.ctx, s.customerID, s.businessID)
		s.Require().NoError(err)
		s.Equal(int64(50), after.Balance)
		s.Equal(int64(100), after.TotalSpent)
		s.Equal(int64(1), after.RewardsRedeemed)
	})
}

// ================================================================================
// Concurrency
// ================================================================================

func (s *LedgerCommandsTestSuite) TestConcurrentRedemptionsKeepMaximalPrefix() {
	s.fund(250)
	rewardID := s.createReward(100)

	const attempts = 8
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, commands.ErrInsufficientBalance):
				insufficient++
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}()
	}
	wg.Wait()

	s.Equal(2, succeeded)
	s.Equal(attempts-2, insufficient)
	s.Equal(int64(50), s.balance())

	// Entries are linearized: each balanceAfter follows from the previous one.
	entries := s.entries()
	var running int64
	for i := len(entries) - 1; i >= 0; i-- {
		running += entries[i].Delta()
		s.Equal(running, entries[i].BalanceAfter())
		s.GreaterOrEqual(entries[i].BalanceAfter(), int64(0))
	}
}

func (s *LedgerCommandsTestSuite) TestConcurrentCheckInReplays() {
	const attempts = 16
	results := make([]*commands.CheckInResult, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.checkIns.CheckIn(s.ctx, commands.CheckInRequest{
				CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: "same-visit",
			})
			assert.NoError(s.T(), err)
			results[i] = res
		}()
	}
	wg.Wait()

	fresh := 0
	for _, r := range results {
		s.Require().NotNil(r)
		s.Equal(results[0].EntryID, r.EntryID)
		s.Equal(int64(50), r.NewBalance)
		if !r.Replayed {
			fresh++
		}
	}
	s.Equal(1, fresh)
	s.Equal(int64(50), s.balance())
}

// ================================================================================
// Rewards, bonuses, history
// ================================================================================

func (s *LedgerCommandsTestSuite) TestRewardUpsert() {
	rewardID := s.createReward(100)

	s.Run("owner updates cost", func() {
		view, err := s.rewards.Upsert(s.ctx, s.businessID, commands.UpsertRewardRequest{
			ID: rewardID, Name: "Free coffee", PointsCost: 120,
		})
		s.Require().NoError(err)
		s.Equal(int64(120), view.PointsCost)
		s.True(view.Active)
	})

	testCases := []struct {
		name          string
		actor         uuid.UUID
		req           commands.UpsertRewardRequest
		expectedError error
	}{
		{
			name:          "other business cannot mutate",
			actor:         uuid.New(),
			req:           commands.UpsertRewardRequest{ID: rewardID, Name: "x", PointsCost: 10},
			expectedError: commands.ErrRewardNotOwned,
		},
		{
			name:          "zero cost",
			actor:         s.businessID,
			req:           commands.UpsertRewardRequest{Name: "x", PointsCost: 0},
			expectedError: commands.ErrInvalidPointsCost,
		},
		{
			name:          "unknown business on create",
			actor:         uuid.New(),
			req:           commands.UpsertRewardRequest{Name: "x", PointsCost: 10},
			expectedError: commands.ErrUnknownBusiness,
		},
		{
			name:          "unknown reward on update",
			actor:         s.businessID,
			req:           commands.UpsertRewardRequest{ID: uuid.New(), Name: "x", PointsCost: 10},
			expectedError: commands.ErrUnknownReward,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.rewards.Upsert(s.ctx, tc.actor, tc.req)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.expectedError), "got %v", err)
		})
	}
}

func (s *LedgerCommandsTestSuite) TestBonusGrant() {
	s.fund(40)

	_, err := s.bonuses.Grant(s.ctx, s.businessID, commands.GrantBonusRequest{
		CustomerID: s.customerID, Points: -50, IdempotencyKey: "claw-back",
	})
	s.True(errs.Is(err, commands.ErrInsufficientBalance))

	res, err := s.bonuses.Grant(s.ctx, s.businessID, commands.GrantBonusRequest{
		CustomerID: s.customerID, Points: -30, Note: "manual fix", IdempotencyKey: "claw-back",
	})
	s.Require().NoError(err)
	s.Equal(int64(-30), res.Delta)
	s.Equal(int64(10), res.NewBalance)
	s.Equal("manual fix", s.entries()[0].Note())

	replay, err := s.bonuses.Grant(s.ctx, s.businessID, commands.GrantBonusRequest{
		CustomerID: s.customerID, Points: -30, Note: "manual fix", IdempotencyKey: "claw-back",
	})
	s.Require().NoError(err)
	s.True(replay.Replayed)
	s.Equal(res.EntryID, replay.EntryID)

	_, err = s.bonuses.Grant(s.ctx, s.businessID, commands.GrantBonusRequest{
		CustomerID: s.customerID, Points: 30, IdempotencyKey: "claw-back",
	})
	s.True(errs.Is(err, commands.ErrIdempotencyKeyMismatch), "got %v", err)
	s.Equal(int64(10), s.balance())
}

func (s *LedgerCommandsTestSuite) TestHistoryPaging() {
	for i := range 5 {
		_, err := s.checkIns.CheckIn(s.ctx, commands.CheckInRequest{
			CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: fmt.Sprintf("visit-%d", i),
		})
		s.Require().NoError(err)
	}

	var seen []int64
	var cursor *queries.Cursor
	for {
		page, next, err := s.ledger.History(s.ctx, s.customerID, s.businessID, cursor, 2)
		s.Require().NoError(err)
		for _, e := range page {
			seen = append(seen, e.BalanceAfter())
		}
		if next == nil {
			break
		}
		cursor = next
	}
	s.Equal([]int64{250, 200, 150, 100, 50}, seen)

	_, _, err := s.ledger.History(s.ctx, s.customerID, s.businessID, &queries.Cursor{After: "not-a-cursor"}, 2)
	s.True(errs.Is(err, queries.ErrInvalidCursor))
}

// ================================================================================
// Overview and business stats
// ================================================================================

func (s *LedgerCommandsTestSuite) TestOverviewAcrossBusinesses() {
	s.clock.Set(time.Date(2026, 2, 28, 23, 30, 0, 0, time.UTC))
	_, err := s.checkIns.CheckIn(s.ctx, commands.CheckInRequest{
		CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: "late-visit",
	})
	s.Require().NoError(err)

	s.clock.Set(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	for _, key := range []string{"morning-1", "morning-2"} {
		_, err = s.checkIns.CheckIn(s.ctx, commands.CheckInRequest{
			CustomerID: s.customerID, BusinessID: s.businessID, IdempotencyKey: key,
		})
		s.Require().NoError(err)
	}
	rewardID := s.createReward(100)
	_, err = s.redemptions.Redeem(s.ctx, commands.RedeemRequest{CustomerID: s.customerID, RewardID: rewardID})
	s.Require().NoError(err)

	otherBusiness := uuid.New()
	_, err = s.businesses.ConfigureEarning(s.ctx, otherBusiness, 20)
	s.Require().NoError(err)
	_, err = s.bonuses.Grant(s.ctx, otherBusiness, commands.GrantBonusRequest{
		CustomerID: s.customerID, Points: 5, IdempotencyKey: "welcome",
	})
	s.Require().NoError(err)

	s.Run("overview groups by business, most recent first", func() {
		view, err := s.balances.Overview(s.ctx, s.customerID, 3)
		s.Require().NoError(err)

		s.Equal(s.customerID, view.CustomerID)
		s.Equal(int64(55), view.TotalPoints)
		s.Equal(int64(1), view.BusinessesVisited)
		s.Equal(int64(1), view.RewardsClaimed)

		s.Require().Len(view.Businesses, 2)
		s.Equal(otherBusiness, view.Businesses[0].BusinessID)
		s.Equal(int64(5), view.Businesses[0].Balance)
		s.Zero(view.Businesses[0].VisitCount)
		s.Nil(view.Businesses[0].LastVisit)

		home := view.Businesses[1]
		s.Equal(s.businessID, home.BusinessID)
		s.Equal(int64(50), home.Balance)
		s.Equal(int64(3), home.VisitCount)
		s.Equal(int64(150), home.TotalEarned)
		s.Equal(int64(100), home.TotalSpent)
		s.Equal(int64(1), home.RewardsRedeemed)

		s.Require().Len(view.RecentActivity, 3)
		s.Equal(ledger.ReasonBonusAdjustment.String(), view.RecentActivity[0].Reason)
		s.Equal(ledger.ReasonRedemption.String(), view.RecentActivity[1].Reason)
		s.Equal(ledger.ReasonCheckIn.String(), view.RecentActivity[2].Reason)
	})

	s.Run("customer with no entries gets an empty overview", func() {
		view, err := s.balances.Overview(s.ctx, uuid.New(), 10)
		s.Require().NoError(err)
		s.Zero(view.TotalPoints)
		s.Empty(view.Businesses)
		s.Empty(view.RecentActivity)
	})

	s.Run("business stats count only check-ins since midnight UTC", func() {
		stats, err := s.balances.BusinessStats(s.ctx, s.businessID)
		s.Require().NoError(err)
		s.Equal(int64(3), stats.TotalCheckIns)
		s.Equal(int64(2), stats.CheckInsToday)
		s.Equal(int64(1), stats.RewardsRedeemed)

		s.clock.Set(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
		stats, err = s.balances.BusinessStats(s.ctx, s.businessID)
		s.Require().NoError(err)
		s.Zero(stats.CheckInsToday)
	})
}

func TestPointsLedger_SumMatchesBalance(t *testing.T) {
	store := memstore.New()
	uow := memstore.NewUnitOfWork(store)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	l := commands.NewPointsLedger(uow, memstore.NewLedgerReadStore(store), nil)
	bizID, custID := uuid.New(), uuid.New()
	_, err := commands.NewBusinessUseCase(uow, clk).ConfigureEarning(context.Background(), bizID, 10)
	require.NoError(t, err)

	p := ledger.Partition{CustomerID: custID, BusinessID: bizID}
	deltas := []int64{30, -10, -25, 40, -35, -1, 5}
	for i, d := range deltas {
		key := ledger.IdempotencyKey(fmt.Sprintf("op-%d", i))
		e, err := ledger.NewAdjustment(p, d, key, "", clk.Now())
		require.NoError(t, err)
		_, err = l.Append(context.Background(), e)
		if err != nil {
			require.True(t, errs.Is(err, commands.ErrInsufficientBalance))
		}
	}

	entries, _, err := l.History(context.Background(), custID, bizID, nil, 100)
	require.NoError(t, err)
	balance, err := l.Balance(context.Background(), custID, bizID)
	require.NoError(t, err)

	assert.Equal(t, ledger.Sum(entries), balance)
	// -25 is rejected at balance 20; every other delta applies.
	assert.Equal(t, int64(29), balance)
	assert.Len(t, entries, len(deltas)-1)
}
