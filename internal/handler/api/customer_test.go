//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/principal"
	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/tests/common/httptest"
	queriesmock "loyalty-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBalance *queriesmock.MockBalanceQueries
	mockRewards *queriesmock.MockRewardQueries
	customer    principal.Principal
	businessID  uuid.UUID
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBalance = queriesmock.NewMockBalanceQueries(s.mockCtrl)
	s.mockRewards = queriesmock.NewMockRewardQueries(s.mockCtrl)
	s.customer = principal.Principal{ID: uuid.New(), Role: principal.RoleCustomer}
	s.businessID = uuid.New()

	h := api.NewCustomerHandler(s.mockBalance, s.mockRewards)
	auth := fakeAuth(s.customer)
	s.router.GET("/businesses/:id/summary", auth, h.Summary)
	s.router.GET("/businesses/:id/history", auth, h.History)
	s.router.GET("/businesses/:id/rewards", auth, h.ListRewards)
	s.router.GET("/businesses/:id/reward-progress", auth, h.Progress)
	s.router.GET("/businesses/:id/redemptions", auth, h.Redemptions)
	s.router.GET("/me/overview", auth, h.Overview)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) get(url string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
}

// ================================================================================
// TestSummary
// ================================================================================

func (s *CustomerHandlerTestSuite) TestSummary() {
	url := "/businesses/" + s.businessID.String() + "/summary"
	lastVisit := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	s.Run("success: returns the projection for the caller", func() {
		s.mockBalance.EXPECT().Summary(gomock.Any(), s.customer.ID, s.businessID).
			Return(&queries.SummaryView{
				CustomerID:      s.customer.ID,
				BusinessID:      s.businessID,
				Balance:         120,
				VisitCount:      4,
				LastVisit:       &lastVisit,
				TotalEarned:     220,
				TotalSpent:      100,
				RewardsRedeemed: 1,
			}, nil)

		rec := s.get(url)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(120, body["balance"])
		s.EqualValues(4, body["visit_count"])
		s.EqualValues(1, body["rewards_redeemed"])
		s.Equal("2025-03-01T09:00:00Z", body["last_visit"])
	})

	s.Run("error: 400 on malformed business id", func() {
		rec := s.get("/businesses/not-a-uuid/summary")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_path")
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *CustomerHandlerTestSuite) TestHistory() {
	base := "/businesses/" + s.businessID.String() + "/history"
	entries := []*queries.EntryView{
		{ID: uuid.New(), Seq: 5, Delta: 50, Kind: "credit", Reason: "check_in", BalanceAfter: 150},
		{ID: uuid.New(), Seq: 4, Delta: -100, Kind: "debit", Reason: "redemption", BalanceAfter: 100},
	}

	s.Run("success: first page carries next cursor", func() {
		next := &queries.Cursor{After: queries.EncodeAfterCursor(4)}
		s.mockBalance.EXPECT().History(gomock.Any(), s.customer.ID, s.businessID, (*queries.Cursor)(nil), 2).
			Return(entries, next, nil)

		rec := s.get(base + "?limit=2")

		var body struct {
			Entries []struct {
				Delta  int64  `json:"delta"`
				Reason string `json:"reason"`
			} `json:"entries"`
			NextCursor string `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Entries, 2)
		s.Equal(int64(50), body.Entries[0].Delta)
		s.Equal("redemption", body.Entries[1].Reason)
		s.Equal(next.After, body.NextCursor)
	})

	s.Run("success: cursor is forwarded and last page omits next", func() {
		token := queries.EncodeAfterCursor(4)
		s.mockBalance.EXPECT().History(gomock.Any(), s.customer.ID, s.businessID, &queries.Cursor{After: token}, 0).
			Return(entries[:0], nil, nil)

		rec := s.get(base + "?cursor=" + token)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: 400 on out of range limit", func() {
		rec := s.get(base + "?limit=500")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockBalance.EXPECT().History(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := s.get(base + "?cursor=garbage")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_cursor")
	})
}

// ================================================================================
// TestRewards
// ================================================================================

func (s *CustomerHandlerTestSuite) TestRewards() {
	reward := queries.RewardView{ID: uuid.New(), BusinessID: s.businessID, Name: "Free coffee", PointsCost: 100, Active: true}

	s.Run("success: lists active rewards", func() {
		s.mockRewards.EXPECT().ListActive(gomock.Any(), s.businessID).Return([]*queries.RewardView{&reward}, nil)

		rec := s.get("/businesses/" + s.businessID.String() + "/rewards")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Free coffee", body[0]["name"])
		s.EqualValues(100, body[0]["points_cost"])
	})

	s.Run("success: progress flattens the reward", func() {
		s.mockRewards.EXPECT().Progress(gomock.Any(), s.customer.ID, s.businessID).
			Return([]*queries.RewardProgressView{
				{RewardView: reward, Balance: 60, PointsNeeded: 40, Percent: 60},
			}, nil)

		rec := s.get("/businesses/" + s.businessID.String() + "/reward-progress")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(reward.ID.String(), body[0]["id"])
		s.EqualValues(40, body[0]["points_needed"])
		s.EqualValues(60, body[0]["percent"])
		s.Equal(false, body[0]["redeemable"])
	})
}

// ================================================================================
// TestRedemptions
// ================================================================================

func (s *CustomerHandlerTestSuite) TestRedemptions() {
	s.Run("success: lists redemptions with limit", func() {
		s.mockBalance.EXPECT().ListRedemptions(gomock.Any(), s.customer.ID, s.businessID, 5).
			Return([]*queries.RedemptionView{{ID: uuid.New(), RewardName: "Free coffee", PointsSpent: 100}}, nil)

		rec := s.get("/businesses/" + s.businessID.String() + "/redemptions?limit=5")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Free coffee", body[0]["reward_name"])
	})
}

// ================================================================================
// TestOverview
// ================================================================================

func (s *CustomerHandlerTestSuite) TestOverview() {
	otherBusiness := uuid.New()

	s.Run("success: balances and activity across businesses", func() {
		s.mockBalance.EXPECT().Overview(gomock.Any(), s.customer.ID, 0).
			Return(&queries.CustomerOverviewView{
				CustomerID:        s.customer.ID,
				TotalPoints:       135,
				BusinessesVisited: 2,
				RewardsClaimed:    1,
				Businesses: []*queries.BusinessBalanceView{
					{BusinessID: s.businessID, Balance: 120, VisitCount: 4},
					{BusinessID: otherBusiness, Balance: 15, VisitCount: 1},
				},
				RecentActivity: []*queries.EntryView{
					{ID: uuid.New(), BusinessID: otherBusiness, Delta: 15, Kind: "credit", Reason: "check_in", BalanceAfter: 15},
				},
			}, nil)

		rec := s.get("/me/overview")

		var body struct {
			TotalPoints    int64            `json:"total_points"`
			RewardsClaimed int64            `json:"rewards_claimed"`
			Businesses     []map[string]any `json:"businesses"`
			RecentActivity []map[string]any `json:"recent_activity"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(135), body.TotalPoints)
		s.Equal(int64(1), body.RewardsClaimed)
		s.Require().Len(body.Businesses, 2)
		s.Equal(s.businessID.String(), body.Businesses[0]["business_id"])
		s.EqualValues(120, body.Businesses[0]["balance"])
		s.Require().Len(body.RecentActivity, 1)
		s.Equal(otherBusiness.String(), body.RecentActivity[0]["business_id"])
	})

	s.Run("success: activity limit is forwarded", func() {
		s.mockBalance.EXPECT().Overview(gomock.Any(), s.customer.ID, 5).
			Return(&queries.CustomerOverviewView{CustomerID: s.customer.ID}, nil)

		rec := s.get("/me/overview?limit=5")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(0, body["total_points"])
	})

	s.Run("error: 400 on out of range limit", func() {
		rec := s.get("/me/overview?limit=500")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 503 when storage is down", func() {
		s.mockBalance.EXPECT().Overview(gomock.Any(), s.customer.ID, 0).Return(nil, commands.ErrStorageUnavailable)

		rec := s.get("/me/overview")

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}
