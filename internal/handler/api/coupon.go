package api

import (
	"errors"
	"net/http"

	reqdto "punchcard/internal/handler/dto/request"
	resdto "punchcard/internal/handler/dto/response"
	"punchcard/internal/handler/httperr"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/usecase"
	"punchcard/internal/usecase/commands"
	"punchcard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary List business coupons
// @Description List the coupons a business offers. Inactive coupons are hidden unless include_inactive is set.
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param include_inactive query bool false "Include deactivated coupons"
// @Success 200 {array} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /businesses/{id}/coupons [get]
func (h *CouponHandler) ListByBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Invalid business id")
		return
	}

	includeInactive := c.Query("include_inactive") == "true"

	views, err := h.couponQueries.ListByBusiness(c.Request.Context(), businessID, includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}

// @Summary Get coupon
// @Description Fetch a single coupon by id.
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) GetByID(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Invalid coupon id")
		return
	}

	view, err := h.couponQueries.GetByID(c.Request.Context(), couponID)
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound,
				err, "Coupon not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError,
			err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Create coupon
// @Description Create a coupon for the caller's business.
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon definition"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	var req reqdto.CreateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			bindErr, "Invalid request format")
		return
	}

	view, err := h.couponCommands.Create(c.Request.Context(), actor, commands.CreateCouponInput{
		Name:           req.GetName(),
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		ImageURL:       req.GetImageURL(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponForbidden):
			httperr.AbortWithError(c, http.StatusForbidden,
				err, "Not authorized to manage coupons for this business")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest,
				err, "Invalid coupon definition")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError,
				err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Deactivate coupon
// @Description Soft-delete a coupon of the caller's business. Existing redemptions are unaffected.
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Invalid coupon id")
		return
	}

	if err := h.couponCommands.Deactivate(c.Request.Context(), actor, couponID); err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponForbidden):
			httperr.AbortWithError(c, http.StatusForbidden,
				err, "Not authorized to manage coupons for this business")
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound,
				err, "Coupon not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError,
				err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
