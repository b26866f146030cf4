package response

import (
	"time"

	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckInResponse struct {
	EntryID       uuid.UUID `json:"entry_id"`
	PointsAwarded int64     `json:"points_awarded"`
	NewBalance    int64     `json:"new_balance"`
	Replayed      bool      `json:"replayed"`
}

func FromCheckInResult(r *commands.CheckInResult) (*CheckInResponse, error) {
	return mapOne[CheckInResponse](r)
}

type RedemptionResponse struct {
	RedemptionID  uuid.UUID `json:"redemption_id"`
	RewardID      uuid.UUID `json:"reward_id"`
	BusinessID    uuid.UUID `json:"business_id"`
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	PointsSpent   int64     `json:"points_spent"`
	NewBalance    int64     `json:"new_balance"`
	CreatedAt     time.Time `json:"created_at"`
	Replayed      bool      `json:"replayed"`
}

func FromRedeemResult(r *commands.RedeemResult) (*RedemptionResponse, error) {
	return mapOne[RedemptionResponse](r)
}

type BonusResponse struct {
	EntryID    uuid.UUID `json:"entry_id"`
	Delta      int64     `json:"delta"`
	NewBalance int64     `json:"new_balance"`
	Replayed   bool      `json:"replayed"`
}

func FromGrantBonusResult(r *commands.GrantBonusResult) (*BonusResponse, error) {
	return mapOne[BonusResponse](r)
}

type EarningPolicyResponse struct {
	BusinessID       uuid.UUID `json:"business_id"`
	PointsPerCheckIn int64     `json:"points_per_check_in"`
}

func FromEarningPolicyResult(r *commands.EarningPolicyResult) (*EarningPolicyResponse, error) {
	return mapOne[EarningPolicyResponse](r)
}

type SummaryResponse struct {
	CustomerID      uuid.UUID  `json:"customer_id"`
	BusinessID      uuid.UUID  `json:"business_id"`
	Balance         int64      `json:"balance"`
	VisitCount      int64      `json:"visit_count"`
	LastVisit       *time.Time `json:"last_visit,omitempty"`
	TotalEarned     int64      `json:"total_earned"`
	TotalSpent      int64      `json:"total_spent"`
	RewardsRedeemed int64      `json:"rewards_redeemed"`
}

func FromSummaryView(v *queries.SummaryView) (*SummaryResponse, error) {
	return mapOne[SummaryResponse](v)
}

type EntryResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	BusinessID   uuid.UUID `json:"business_id"`
	Delta        int64     `json:"delta"`
	Kind         string    `json:"kind"`
	Reason       string    `json:"reason"`
	BalanceAfter int64     `json:"balance_after"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromEntryViews(vs []*queries.EntryView) ([]*EntryResponse, error) {
	return mapMany[EntryResponse](vs)
}

type HistoryResponse struct {
	Entries    []*EntryResponse `json:"entries"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func FromHistory(vs []*queries.EntryView, next *queries.Cursor) (*HistoryResponse, error) {
	entries, err := FromEntryViews(vs)
	if err != nil {
		return nil, err
	}
	resp := &HistoryResponse{Entries: entries}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}

type BusinessBalanceResponse struct {
	BusinessID      uuid.UUID  `json:"business_id"`
	Balance         int64      `json:"balance"`
	VisitCount      int64      `json:"visit_count"`
	LastVisit       *time.Time `json:"last_visit,omitempty"`
	TotalEarned     int64      `json:"total_earned"`
	TotalSpent      int64      `json:"total_spent"`
	RewardsRedeemed int64      `json:"rewards_redeemed"`
}

type OverviewResponse struct {
	CustomerID        uuid.UUID                  `json:"customer_id"`
	TotalPoints       int64                      `json:"total_points"`
	BusinessesVisited int64                      `json:"businesses_visited"`
	RewardsClaimed    int64                      `json:"rewards_claimed"`
	Businesses        []*BusinessBalanceResponse `json:"businesses"`
	RecentActivity    []*EntryResponse           `json:"recent_activity"`
}

func FromOverviewView(v *queries.CustomerOverviewView) (*OverviewResponse, error) {
	businesses, err := mapMany[BusinessBalanceResponse](v.Businesses)
	if err != nil {
		return nil, err
	}
	activity, err := FromEntryViews(v.RecentActivity)
	if err != nil {
		return nil, err
	}
	return &OverviewResponse{
		CustomerID:        v.CustomerID,
		TotalPoints:       v.TotalPoints,
		BusinessesVisited: v.BusinessesVisited,
		RewardsClaimed:    v.RewardsClaimed,
		Businesses:        businesses,
		RecentActivity:    activity,
	}, nil
}

type LeaderboardEntryResponse struct {
	Rank        int        `json:"rank"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	TotalEarned int64      `json:"total_earned"`
	VisitCount  int64      `json:"visit_count"`
	LastVisit   *time.Time `json:"last_visit,omitempty"`
}

func FromLeaderboard(vs []*queries.LeaderboardEntry) ([]*LeaderboardEntryResponse, error) {
	return mapMany[LeaderboardEntryResponse](vs)
}

type BusinessStatsResponse struct {
	BusinessID      uuid.UUID `json:"business_id"`
	TotalCheckIns   int64     `json:"total_check_ins"`
	ActiveCustomers int64     `json:"active_customers"`
	RewardsRedeemed int64     `json:"rewards_redeemed"`
	PointsIssued    int64     `json:"points_issued"`
	CheckInsToday   int64     `json:"check_ins_today"`
}

func FromBusinessStatsView(v *queries.BusinessStatsView) (*BusinessStatsResponse, error) {
	return mapOne[BusinessStatsResponse](v)
}

type RedemptionListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	RewardID      uuid.UUID `json:"reward_id"`
	RewardName    string    `json:"reward_name"`
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	PointsSpent   int64     `json:"points_spent"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromRedemptionViews(vs []*queries.RedemptionView) ([]*RedemptionListItemResponse, error) {
	return mapMany[RedemptionListItemResponse](vs)
}
