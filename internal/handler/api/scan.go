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

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	scanCommands commands.ScanCommands
	metrics      *metrics.Metrics
}

func NewScanHandler(scanCommands commands.ScanCommands, m *metrics.Metrics) *ScanHandler {
	return &ScanHandler{
		scanCommands: scanCommands,
		metrics:      m,
	}
}

// @Summary Scan a code
// @Description Resolve a scanned payload and dispatch: profile code plus amount awards points/stamps, redemption code verifies a coupon.
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Scanned payload and intent"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	var req reqdto.ScanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			bindErr, "Invalid request format")
		return
	}

	couponID, err := req.GetCouponID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Invalid coupon id")
		return
	}

	result, err := h.scanCommands.Scan(c.Request.Context(), actor, commands.ScanInput{
		Payload:  req.GetData(),
		Amount:   req.Amount,
		CouponID: couponID,
	})
	if err != nil {
		h.rejectScan(c, err)
		return
	}

	if result.Award != nil {
		h.metrics.Awards.Inc()
	} else {
		h.metrics.Verifications.Inc()
	}
	c.JSON(http.StatusOK, resdto.FromScanResult(result))
}

// rejectScan maps scan outcomes onto the error envelope. Conflicts are
// expected business outcomes and stay 400 with distinguishing text so
// the counter UI can explain what happened.
func (h *ScanHandler) rejectScan(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrScanForbidden):
		httperr.AbortWithError(c, http.StatusForbidden,
			err, "Not authorized to scan for this business")
	case errors.Is(err, commands.ErrCodeAlreadyUsed):
		h.metrics.ScanRejects.WithLabelValues(metrics.RejectReasonUsedCode).Inc()
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Invalid or already used code")
	case errors.Is(err, commands.ErrUnrecognizedCode):
		h.metrics.ScanRejects.WithLabelValues(metrics.RejectReasonUnrecognized).Inc()
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Unrecognized code")
	case errors.Is(err, commands.ErrAmountRequired):
		h.metrics.ScanRejects.WithLabelValues(metrics.RejectReasonMismatch).Inc()
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "This is a customer profile code; an award amount is required")
	case errors.Is(err, commands.ErrExpectedProfileCode):
		h.metrics.ScanRejects.WithLabelValues(metrics.RejectReasonMismatch).Inc()
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "This is a coupon verification code, not a customer profile code")
	case errors.Is(err, commands.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Award amount must be a positive integer")
	case errors.Is(err, commands.ErrCouponTargetRequired):
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "This business stamps per coupon; a coupon id is required")
	case errors.Is(err, commands.ErrCouponTargetInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Coupon does not belong to this business or is inactive")
	case errors.Is(err, commands.ErrAlreadyVerified):
		h.metrics.ScanRejects.WithLabelValues(metrics.RejectReasonVerified).Inc()
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Coupon already verified")
	case errors.Is(err, commands.ErrVerifyWindowElapsed):
		h.metrics.ScanRejects.WithLabelValues(metrics.RejectReasonWindow).Inc()
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Verification window elapsed")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError,
			err, "Internal server error")
	}
}
