package request

import (
	"time"

	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	BusinessID      uuid.UUID  `json:"business_id" binding:"required"`
	ClientTimestamp *time.Time `json:"client_timestamp,omitempty"`
}

func (r CheckInRequest) ToCommand(customerID uuid.UUID, idempotencyKey string) commands.CheckInRequest {
	return commands.CheckInRequest{
		CustomerID:      customerID,
		BusinessID:      r.BusinessID,
		IdempotencyKey:  idempotencyKey,
		ClientTimestamp: r.ClientTimestamp,
	}
}

type RedeemRequest struct {
	RewardID uuid.UUID `json:"reward_id" binding:"required"`
}

func (r RedeemRequest) ToCommand(customerID uuid.UUID, idempotencyKey string) commands.RedeemRequest {
	return commands.RedeemRequest{
		CustomerID:     customerID,
		RewardID:       r.RewardID,
		IdempotencyKey: idempotencyKey,
	}
}

// GrantBonusRequest adjusts a customer's balance at the calling business.
// Negative points claw back.
type GrantBonusRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Points     int64     `json:"points" binding:"required"`
	Note       string    `json:"note" binding:"max=500"`
}

func (r GrantBonusRequest) ToCommand(idempotencyKey string) commands.GrantBonusRequest {
	return commands.GrantBonusRequest{
		CustomerID:     r.CustomerID,
		Points:         r.Points,
		Note:           r.Note,
		IdempotencyKey: idempotencyKey,
	}
}

type EarningPolicyRequest struct {
	PointsPerCheckIn int64 `json:"points_per_check_in" binding:"required"`
}

type HistoryQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
