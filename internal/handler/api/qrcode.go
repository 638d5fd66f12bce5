package api

import (
	"net/http"

	resdto "punchcard/internal/handler/dto/response"
	"punchcard/internal/handler/httperr"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/usecase"
	"punchcard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type QRCodeHandler struct {
	qrCommands commands.QRCodeCommands
}

func NewQRCodeHandler(qrCommands commands.QRCodeCommands) *QRCodeHandler {
	return &QRCodeHandler{
		qrCommands: qrCommands,
	}
}

// @Summary Get my QR code
// @Description Return the caller's active code, minting one if none exists. Idempotent until the code is consumed.
// @Tags qr-code
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QRCodeResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /qr-code [get]
func (h *QRCodeHandler) GetMyCode(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	view, err := h.qrCommands.IssueOrFetch(c.Request.Context(), actor.UserID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			err, "Failed to issue code")
		return
	}

	c.JSON(http.StatusOK, resdto.FromQRCodeView(view))
}
