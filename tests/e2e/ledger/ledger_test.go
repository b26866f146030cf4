//go:build e2e

package ledger_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"loyalty-ledger/internal/domain/principal"
	"loyalty-ledger/tests/common/authtest"
	"loyalty-ledger/tests/common/dbtest"
	"loyalty-ledger/tests/common/httptest"
	"loyalty-ledger/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	checkInURL    = "/api/check-ins"
	redemptionURL = "/api/redemptions"
)

type ledgerSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ledgerSuite) newRequest(method, url string, body any, token, key string) *http.Request {
	return httptest.NewRequest(s.T(), method, url, body, token, httptest.WithIdempotencyKey(key))
}

func (s *ledgerSuite) serve(req *http.Request) *nethttptest.ResponseRecorder {
	return httptest.Serve(s.Router, req)
}

func (s *ledgerSuite) checkIn(token string, businessID uuid.UUID, key string) *nethttptest.ResponseRecorder {
	return s.serve(s.newRequest(http.MethodPost, checkInURL, map[string]any{"business_id": businessID}, token, key))
}

func (s *ledgerSuite) customer() (uuid.UUID, string) {
	id := uuid.New()
	return id, s.jwt.GenerateToken(s.T(), id, principal.RoleCustomer)
}

func (s *ledgerSuite) TestCheckIn() {
	s.Run("awards configured points once per key", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 50)
		customerID, token := s.customer()

		rec := s.checkIn(token, businessID, "visit-1")
		var first map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &first)
		s.EqualValues(50, first["points_awarded"])
		s.EqualValues(50, first["new_balance"])

		rec = s.checkIn(token, businessID, "visit-1")
		var replay map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &replay)
		httptest.AssertReplayed(s.T(), rec, true)
		s.Equal(first["entry_id"], replay["entry_id"])

		s.Equal(int64(50), dbtest.PartitionBalance(s.T(), s.DB, customerID, businessID))
	})

	s.Run("unknown business is 404", func() {
		_, token := s.customer()

		rec := s.checkIn(token, uuid.New(), "visit-1")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("missing key is 400", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 50)
		_, token := s.customer()

		rec := s.checkIn(token, businessID, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("business token is forbidden and no token is unauthorized", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 50)
		bizToken := s.jwt.GenerateToken(s.T(), businessID, principal.RoleBusiness)

		httptest.AssertErrorResponse(s.T(), s.checkIn(bizToken, businessID, "k"), http.StatusForbidden, "")
		httptest.AssertErrorResponse(s.T(), s.checkIn("", businessID, "k"), http.StatusUnauthorized, "")

		expired := s.jwt.CreateExpiredToken(s.T(), uuid.New(), principal.RoleCustomer)
		httptest.AssertErrorResponse(s.T(), s.checkIn(expired, businessID, "k"), http.StatusUnauthorized, "")
	})
}

func (s *ledgerSuite) TestRedeem() {
	s.Run("rejects overdraft then debits exact cost", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 50)
		rewardID := dbtest.CreateTestReward(s.T(), s.DB, businessID, "Free coffee", 100, true)
		customerID, token := s.customer()

		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, "v1"), http.StatusCreated, nil)

		rec := s.serve(s.newRequest(http.MethodPost, redemptionURL, map[string]any{"reward_id": rewardID}, token, ""))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")

		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, "v2"), http.StatusCreated, nil)
		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, "v3"), http.StatusCreated, nil)

		rec = s.serve(s.newRequest(http.MethodPost, redemptionURL, map[string]any{"reward_id": rewardID}, token, ""))
		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.EqualValues(100, body["points_spent"])
		s.EqualValues(50, body["new_balance"])

		s.Equal(int64(50), dbtest.PartitionBalance(s.T(), s.DB, customerID, businessID))
		s.Equal(1, dbtest.CountRedemptions(s.T(), s.DB, customerID, businessID))
	})

	s.Run("inactive reward is 409", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 500)
		rewardID := dbtest.CreateTestReward(s.T(), s.DB, businessID, "Retired", 100, false)
		_, token := s.customer()
		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, "v1"), http.StatusCreated, nil)

		rec := s.serve(s.newRequest(http.MethodPost, redemptionURL, map[string]any{"reward_id": rewardID}, token, ""))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "inactive")
	})

	s.Run("concurrent redemptions never overdraw", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 50)
		rewardID := dbtest.CreateTestReward(s.T(), s.DB, businessID, "Free coffee", 100, true)
		customerID, token := s.customer()
		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, "v1"), http.StatusCreated, nil)
		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, "v2"), http.StatusCreated, nil)

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			req := s.newRequest(http.MethodPost, redemptionURL, map[string]any{"reward_id": rewardID}, token, fmt.Sprintf("r-%d", i))
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = s.serve(req).Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusUnprocessableEntity:
			default:
				s.Failf("unexpected status", "got %d", code)
			}
		}
		s.Equal(1, created)
		s.Equal(int64(0), dbtest.PartitionBalance(s.T(), s.DB, customerID, businessID))
		s.Equal(1, dbtest.CountRedemptions(s.T(), s.DB, customerID, businessID))
	})
}

func (s *ledgerSuite) TestDashboard() {
	s.Run("summary reflects entries and redemptions", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 60)
		rewardID := dbtest.CreateTestReward(s.T(), s.DB, businessID, "Pastry", 100, true)
		_, token := s.customer()
		for i := range 3 {
			httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, fmt.Sprintf("v%d", i)), http.StatusCreated, nil)
		}
		httptest.AssertSuccessResponse(s.T(),
			s.serve(s.newRequest(http.MethodPost, redemptionURL, map[string]any{"reward_id": rewardID}, token, "")),
			http.StatusCreated, nil)

		rec := s.serve(s.newRequest(http.MethodGet, "/api/businesses/"+businessID.String()+"/summary", nil, token, ""))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(80, body["balance"])
		s.EqualValues(3, body["visit_count"])
		s.EqualValues(180, body["total_earned"])
		s.EqualValues(100, body["total_spent"])
		s.EqualValues(1, body["rewards_redeemed"])
		s.NotNil(body["last_visit"])
	})

	s.Run("history pages newest first without gaps", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 10)
		_, token := s.customer()
		for i := range 5 {
			httptest.AssertSuccessResponse(s.T(), s.checkIn(token, businessID, fmt.Sprintf("v%d", i)), http.StatusCreated, nil)
		}

		type page struct {
			Entries []struct {
				ID           string `json:"id"`
				BalanceAfter int64  `json:"balance_after"`
			} `json:"entries"`
			NextCursor string `json:"next_cursor"`
		}

		var balances []int64
		seen := map[string]bool{}
		url := "/api/businesses/" + businessID.String() + "/history?limit=2"
		for range 5 {
			rec := s.serve(s.newRequest(http.MethodGet, url, nil, token, ""))
			var p page
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &p)
			for _, e := range p.Entries {
				s.False(seen[e.ID], "entry repeated across pages")
				seen[e.ID] = true
				balances = append(balances, e.BalanceAfter)
			}
			if p.NextCursor == "" {
				break
			}
			url = "/api/businesses/" + businessID.String() + "/history?limit=2&cursor=" + p.NextCursor
		}

		s.Equal([]int64{50, 40, 30, 20, 10}, balances)
	})

	s.Run("business manages rewards and grants bonuses", func() {
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, 50)
		bizToken := s.jwt.GenerateToken(s.T(), businessID, principal.RoleBusiness)
		customerID, token := s.customer()

		rec := s.serve(s.newRequest(http.MethodPut, "/api/business/earning-policy", map[string]any{"points_per_check_in": 25}, bizToken, ""))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = s.serve(s.newRequest(http.MethodPost, "/api/business/rewards", map[string]any{"name": "Tea", "points_cost": 40}, bizToken, ""))
		var reward map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &reward)

		rec = s.checkIn(token, businessID, "v1")
		var checkIn map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &checkIn)
		s.EqualValues(25, checkIn["points_awarded"])

		rec = s.serve(s.newRequest(http.MethodPost, "/api/business/bonuses", map[string]any{"customer_id": customerID, "points": 15, "note": "birthday"}, bizToken, "bonus-1"))
		var bonus map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &bonus)
		s.EqualValues(40, bonus["new_balance"])

		rec = s.serve(s.newRequest(http.MethodGet, "/api/businesses/"+businessID.String()+"/reward-progress", nil, token, ""))
		var progress []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &progress)
		s.Require().Len(progress, 1)
		s.Equal(reward["id"], progress[0]["id"])
		s.Equal(true, progress[0]["redeemable"])

		rec = s.serve(s.newRequest(http.MethodGet, "/api/business/stats", nil, bizToken, ""))
		var stats map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &stats)
		s.EqualValues(1, stats["total_check_ins"])
		s.EqualValues(1, stats["active_customers"])
		s.EqualValues(1, stats["check_ins_today"])
	})

	s.Run("overview spans every business the customer visited", func() {
		cafe := dbtest.CreateTestBusiness(s.T(), s.DB, 30)
		bakery := dbtest.CreateTestBusiness(s.T(), s.DB, 20)
		customerID, token := s.customer()
		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, cafe, "c1"), http.StatusCreated, nil)
		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, cafe, "c2"), http.StatusCreated, nil)
		httptest.AssertSuccessResponse(s.T(), s.checkIn(token, bakery, "b1"), http.StatusCreated, nil)

		rec := s.serve(s.newRequest(http.MethodGet, "/api/me/overview?limit=2", nil, token, ""))

		var body struct {
			CustomerID        string `json:"customer_id"`
			TotalPoints       int64  `json:"total_points"`
			BusinessesVisited int64  `json:"businesses_visited"`
			Businesses        []struct {
				BusinessID string `json:"business_id"`
				Balance    int64  `json:"balance"`
			} `json:"businesses"`
			RecentActivity []map[string]any `json:"recent_activity"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(customerID.String(), body.CustomerID)
		s.Equal(int64(80), body.TotalPoints)
		s.Equal(int64(2), body.BusinessesVisited)
		s.Require().Len(body.Businesses, 2)
		s.Equal(bakery.String(), body.Businesses[0].BusinessID)
		s.Equal(int64(20), body.Businesses[0].Balance)
		s.Equal(cafe.String(), body.Businesses[1].BusinessID)
		s.Equal(int64(60), body.Businesses[1].Balance)
		s.Len(body.RecentActivity, 2)
	})
}
