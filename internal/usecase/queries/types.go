package queries

import (
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
)

// EntryView is one ledger entry as shown in history lists
type EntryView struct {
	ID           uuid.UUID `json:"id"`
	Seq          int64     `json:"seq"`
	CustomerID   uuid.UUID `json:"customer_id"`
	BusinessID   uuid.UUID `json:"business_id"`
	Delta        int64     `json:"delta"`
	Kind         string    `json:"kind"`
	Reason       string    `json:"reason"`
	BalanceAfter int64     `json:"balance_after"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SummaryView is the customer dashboard projection for one business
type SummaryView struct {
	CustomerID      uuid.UUID  `json:"customer_id"`
	BusinessID      uuid.UUID  `json:"business_id"`
	Balance         int64      `json:"balance"`
	VisitCount      int64      `json:"visit_count"`
	LastVisit       *time.Time `json:"last_visit,omitempty"`
	TotalEarned     int64      `json:"total_earned"`
	TotalSpent      int64      `json:"total_spent"`
	RewardsRedeemed int64      `json:"rewards_redeemed"`
}

type LeaderboardEntry struct {
	Rank        int        `json:"rank"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	TotalEarned int64      `json:"total_earned"`
	VisitCount  int64      `json:"visit_count"`
	LastVisit   *time.Time `json:"last_visit,omitempty"`
}

type BusinessStatsView struct {
	BusinessID      uuid.UUID `json:"business_id"`
	TotalCheckIns   int64     `json:"total_check_ins"`
	ActiveCustomers int64     `json:"active_customers"`
	RewardsRedeemed int64     `json:"rewards_redeemed"`
	PointsIssued    int64     `json:"points_issued"`
	CheckInsToday   int64     `json:"check_ins_today"`
}

// BusinessBalanceView is one business in a customer's overview
type BusinessBalanceView struct {
	BusinessID      uuid.UUID  `json:"business_id"`
	Balance         int64      `json:"balance"`
	VisitCount      int64      `json:"visit_count"`
	LastVisit       *time.Time `json:"last_visit,omitempty"`
	TotalEarned     int64      `json:"total_earned"`
	TotalSpent      int64      `json:"total_spent"`
	RewardsRedeemed int64      `json:"rewards_redeemed"`
}

// CustomerOverviewView aggregates a customer's standing across every business
type CustomerOverviewView struct {
	CustomerID        uuid.UUID              `json:"customer_id"`
	TotalPoints       int64                  `json:"total_points"`
	BusinessesVisited int64                  `json:"businesses_visited"`
	RewardsClaimed    int64                  `json:"rewards_claimed"`
	Businesses        []*BusinessBalanceView `json:"businesses"`
	RecentActivity    []*EntryView           `json:"recent_activity"`
}

type RewardView struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PointsCost  int64     `json:"points_cost"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RewardProgressView struct {
	RewardView
	Balance      int64 `json:"balance"`
	PointsNeeded int64 `json:"points_needed"`
	Percent      int   `json:"percent"`
	Redeemable   bool  `json:"redeemable"`
}

type RedemptionView struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	BusinessID    uuid.UUID `json:"business_id"`
	RewardID      uuid.UUID `json:"reward_id"`
	RewardName    string    `json:"reward_name"`
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	PointsSpent   int64     `json:"points_spent"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewEntryView(e *ledger.Entry) *EntryView {
	return &EntryView{
		ID:           e.ID(),
		Seq:          e.Seq(),
		CustomerID:   e.CustomerID(),
		BusinessID:   e.BusinessID(),
		Delta:        e.Delta(),
		Kind:         e.Kind().String(),
		Reason:       e.Reason().String(),
		BalanceAfter: e.BalanceAfter(),
		Note:         e.Note(),
		CreatedAt:    e.CreatedAt(),
	}
}

func NewRewardView(r *reward.Reward) *RewardView {
	return &RewardView{
		ID:          r.ID(),
		BusinessID:  r.BusinessID(),
		Name:        r.Name().String(),
		Description: r.Description(),
		PointsCost:  r.PointsCost(),
		Active:      r.IsActive(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}
