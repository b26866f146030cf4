package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer dashboard. The customer is always the
// caller.
type CustomerHandler struct {
	balance queries.BalanceQueries
	rewards queries.RewardQueries
}

func NewCustomerHandler(balance queries.BalanceQueries, rewards queries.RewardQueries) *CustomerHandler {
	return &CustomerHandler{balance: balance, rewards: rewards}
}

// @Summary Balance summary
// @Description Balance, visits and lifetime totals of the caller at a business
// @Tags customer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/businesses/{id}/summary [get]
func (h *CustomerHandler) Summary(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.balance.Summary(c.Request.Context(), p.ID, businessID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromSummaryView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Points history
// @Description Ledger entries newest first, paged by an opaque cursor
// @Tags customer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/businesses/{id}/history [get]
func (h *CustomerHandler) History(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}

	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}

	entries, next, err := h.balance.History(c.Request.Context(), p.ID, businessID, cursor, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHistory(entries, next)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Active rewards
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.RewardResponse
// @Router /api/businesses/{id}/rewards [get]
func (h *CustomerHandler) ListRewards(c *gin.Context) {
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	views, err := h.rewards.ListActive(c.Request.Context(), businessID)
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

// @Summary Reward progress
// @Description Active rewards with the points the caller still needs
// @Tags customer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {array} resdto.RewardProgressResponse
// @Router /api/businesses/{id}/reward-progress [get]
func (h *CustomerHandler) Progress(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	views, err := h.rewards.Progress(c.Request.Context(), p.ID, businessID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromRewardProgress(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Redemption history
// @Tags customer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.RedemptionListItemResponse
// @Router /api/businesses/{id}/redemptions [get]
func (h *CustomerHandler) Redemptions(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}

	views, err := h.balance.ListRedemptions(c.Request.Context(), p.ID, businessID, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromRedemptionViews(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cross-business overview
// @Description Balances at every business the caller has points with, plus recent activity
// @Tags customer
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Recent activity items (1-200)"
// @Success 200 {object} resdto.OverviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/me/overview [get]
func (h *CustomerHandler) Overview(c *gin.Context) {
	p, ok := principalOf(c)
	if !ok {
		return
	}
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.balance.Overview(c.Request.Context(), p.ID, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromOverviewView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
