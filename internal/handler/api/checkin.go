package api

import (
	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	cmds commands.CheckInCommands
}

func NewCheckInHandler(cmds commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{cmds: cmds}
}

// @Summary Check in
// @Description Record a visit and award points. Retrying with the same Idempotency-Key returns the original result.
// @Tags check-ins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client generated key, unique per customer and business"
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 201 {object} resdto.CheckInResponse
// @Success 200 {object} resdto.CheckInResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/check-ins [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.CheckIn(c.Request.Context(), req.ToCommand(p.ID, idempotencyKey(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromCheckInResult(result)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	writeCommandResult(c, result.Replayed, resp)
}
