package request

import (
	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

// UpsertRewardRequest leaves points_cost unchecked so the domain rule
// reports invalid costs with its own error code.
type UpsertRewardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PointsCost  int64  `json:"points_cost"`
	Active      *bool  `json:"active,omitempty"`
}

func (r UpsertRewardRequest) ToCommand(id uuid.UUID) commands.UpsertRewardRequest {
	return commands.UpsertRewardRequest{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		PointsCost:  r.PointsCost,
		Active:      r.Active,
	}
}

type SetRewardActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
