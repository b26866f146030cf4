package response

import (
	"time"

	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardResponse struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PointsCost  int64     `json:"points_cost"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRewardView(v *queries.RewardView) (*RewardResponse, error) {
	return mapOne[RewardResponse](v)
}

func FromRewardViews(vs []*queries.RewardView) ([]*RewardResponse, error) {
	return mapMany[RewardResponse](vs)
}

// RewardProgressResponse is flat; copier lifts the fields of the embedded
// RewardView.
type RewardProgressResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PointsCost   int64     `json:"points_cost"`
	Balance      int64     `json:"balance"`
	PointsNeeded int64     `json:"points_needed"`
	Percent      int       `json:"percent"`
	Redeemable   bool      `json:"redeemable"`
}

func FromRewardProgress(vs []*queries.RewardProgressView) ([]*RewardProgressResponse, error) {
	return mapMany[RewardProgressResponse](vs)
}
