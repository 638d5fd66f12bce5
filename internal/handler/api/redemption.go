package api

import (
	"errors"
	"net/http"

	reqdto "punchcard/internal/handler/dto/request"
	resdto "punchcard/internal/handler/dto/response"
	"punchcard/internal/handler/httperr"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/infra/metrics"
	"punchcard/internal/usecase"
	"punchcard/internal/usecase/commands"
	"punchcard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	redemptionCommands commands.RedemptionCommands
	redemptionQueries  queries.RedemptionQueries
	metrics            *metrics.Metrics
}

func NewRedemptionHandler(
	redemptionCommands commands.RedemptionCommands,
	redemptionQueries queries.RedemptionQueries,
	m *metrics.Metrics,
) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionCommands: redemptionCommands,
		redemptionQueries:  redemptionQueries,
		metrics:            m,
	}
}

// @Summary Redeem a coupon
// @Description Exchange accumulated balance for a coupon claim. The balance decrement and the claim commit atomically.
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCouponRequest true "Coupon to redeem"
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/redeem [post]
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	var req reqdto.RedeemCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			bindErr, "Invalid request format")
		return
	}

	view, err := h.redemptionCommands.Redeem(c.Request.Context(), actor.UserID(), req.CouponID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound,
				err, "Coupon not found")
		case errors.Is(err, commands.ErrCouponInactive):
			httperr.AbortWithError(c, http.StatusBadRequest,
				err, "Coupon is no longer active")
		case errors.Is(err, commands.ErrInsufficientBalance):
			httperr.AbortWithError(c, http.StatusBadRequest,
				err, "Insufficient balance for this coupon")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError,
				err, "Internal server error")
		}
		return
	}

	h.metrics.Redemptions.Inc()
	c.JSON(http.StatusCreated, resdto.FromRedemptionView(view))
}

// @Summary Get my redemption
// @Description Return one of the caller's redemptions, typically to render the coupon QR code.
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /redemptions/{id} [get]
func (h *RedemptionHandler) GetOwn(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	redemptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Invalid redemption id")
		return
	}

	view, err := h.redemptionQueries.GetOwn(c.Request.Context(), actor.UserID(), redemptionID)
	if err != nil {
		// Someone else's redemption is indistinguishable from a missing one.
		if errors.Is(err, queries.ErrRedemptionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound,
				err, "Redemption not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError,
			err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedemptionView(view))
}
