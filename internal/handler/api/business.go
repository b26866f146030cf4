package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BusinessHandler serves the business dashboard. The calling principal is
// the business.
type BusinessHandler struct {
	earning commands.BusinessCommands
	rewards commands.RewardCommands
	bonuses commands.BonusCommands
	rewardQ queries.RewardQueries
	balance queries.BalanceQueries
}

func NewBusinessHandler(
	earning commands.BusinessCommands,
	rewards commands.RewardCommands,
	bonuses commands.BonusCommands,
	rewardQ queries.RewardQueries,
	balance queries.BalanceQueries,
) *BusinessHandler {
	return &BusinessHandler{
		earning: earning,
		rewards: rewards,
		bonuses: bonuses,
		rewardQ: rewardQ,
		balance: balance,
	}
}

// @Summary Configure earning
// @Description Set points per check-in. The first call registers the business with the ledger.
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EarningPolicyRequest true "Earning policy"
// @Success 200 {object} resdto.EarningPolicyResponse
// @Failure 400 {object} httperr.Response
// @Router /api/business/earning-policy [put]
func (h *BusinessHandler) ConfigureEarning(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var req reqdto.EarningPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.earning.ConfigureEarning(c.Request.Context(), p.ID, req.PointsPerCheckIn)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromEarningPolicyResult(result)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create reward
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertRewardRequest true "Reward"
// @Success 201 {object} resdto.RewardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/business/rewards [post]
func (h *BusinessHandler) CreateReward(c *gin.Context) {
	h.upsertReward(c, uuid.Nil, http.StatusCreated)
}

// @Summary Update reward
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Param request body reqdto.UpsertRewardRequest true "Reward"
// @Success 200 {object} resdto.RewardResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/business/rewards/{id} [put]
func (h *BusinessHandler) UpdateReward(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.upsertReward(c, id, http.StatusOK)
}

func (h *BusinessHandler) upsertReward(c *gin.Context, id uuid.UUID, status int) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var req reqdto.UpsertRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.rewards.Upsert(c.Request.Context(), p.ID, req.ToCommand(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromRewardView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/api/business/rewards/"+view.ID.String())
	}
	c.JSON(status, resp)
}

// @Summary Activate or deactivate reward
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Param request body reqdto.SetRewardActiveRequest true "Active flag"
// @Success 200 {object} resdto.RewardResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/business/rewards/{id}/active [patch]
func (h *BusinessHandler) SetRewardActive(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetRewardActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.rewards.SetActive(c.Request.Context(), p.ID, id, *req.Active)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromRewardView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary All rewards
// @Description Active and inactive rewards of the calling business
// @Tags business
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RewardResponse
// @Router /api/business/rewards [get]
func (h *BusinessHandler) ListRewards(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}

	views, err := h.rewardQ.ListAll(c.Request.Context(), p.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromRewardViews(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Grant bonus
// @Description Credit or claw back points for a customer
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client generated key"
// @Param request body reqdto.GrantBonusRequest true "Bonus"
// @Success 201 {object} resdto.BonusResponse
// @Success 200 {object} resdto.BonusResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/business/bonuses [post]
func (h *BusinessHandler) GrantBonus(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var req reqdto.GrantBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.bonuses.Grant(c.Request.Context(), p.ID, req.ToCommand(idempotencyKey(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromGrantBonusResult(result)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	writeCommandResult(c, result.Replayed, resp)
}

// @Summary Top customers
// @Tags business
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.LeaderboardEntryResponse
// @Router /api/business/top-customers [get]
func (h *BusinessHandler) TopCustomers(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}

	rows, err := h.balance.TopCustomers(c.Request.Context(), p.ID, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLeaderboard(rows)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Business stats
// @Description Lifetime totals plus check-ins since midnight UTC
// @Tags business
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BusinessStatsResponse
// @Router /api/business/stats [get]
func (h *BusinessHandler) Stats(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}

	view, err := h.balance.BusinessStats(c.Request.Context(), p.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromBusinessStatsView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Recent check-ins
// @Tags business
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.EntryResponse
// @Router /api/business/check-ins [get]
func (h *BusinessHandler) RecentCheckIns(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}

	entries, err := h.balance.RecentCheckIns(c.Request.Context(), p.ID, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromEntryViews(entries)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
