package api

import (
	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
}

func NewRedemptionHandler(cmds commands.RedemptionCommands) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds}
}

// @Summary Redeem reward
// @Description Spend points on a reward. Without an Idempotency-Key every call is a new attempt.
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Optional key making retries safe"
// @Param request body reqdto.RedeemRequest true "Redemption request"
// @Success 201 {object} resdto.RedemptionResponse
// @Success 200 {object} resdto.RedemptionResponse "replayed"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/redemptions [post]
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), req.ToCommand(p.ID, idempotencyKey(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromRedeemResult(result)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	writeCommandResult(c, result.Replayed, resp)
}
