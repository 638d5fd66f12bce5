package api

import (
	"errors"
	"net/http"

	resdto "punchcard/internal/handler/dto/response"
	"punchcard/internal/handler/httperr"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/usecase"
	"punchcard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BalanceHandler struct {
	balanceQueries queries.BalanceQueries
}

func NewBalanceHandler(balanceQueries queries.BalanceQueries) *BalanceHandler {
	return &BalanceHandler{
		balanceQueries: balanceQueries,
	}
}

// @Summary Get my balance
// @Description Return the caller's balance at one business: a running total for points businesses, per-coupon progress for stamps businesses.
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param business_id query string true "Business ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /points [get]
func (h *BalanceHandler) GetMyBalance(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	businessID, err := uuid.Parse(c.Query("business_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Invalid business id")
		return
	}

	view, err := h.balanceQueries.Get(c.Request.Context(), actor.UserID(), businessID)
	if err != nil {
		if errors.Is(err, queries.ErrBusinessNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound,
				err, "Business not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError,
			err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
