package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "punchcard/internal/handler/dto/response"
	"punchcard/internal/handler/httperr"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/usecase"
	"punchcard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActionHandler struct {
	actionQueries queries.ActionQueries
}

func NewActionHandler(actionQueries queries.ActionQueries) *ActionHandler {
	return &ActionHandler{
		actionQueries: actionQueries,
	}
}

// @Summary List staff actions
// @Description List the audit log newest first. Owners see every action of their business, staff only their own.
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows (default 50, cap 200)"
// @Success 200 {array} resdto.ActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /actions [get]
func (h *ActionHandler) List(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			usecase.ErrTokenMissing, "Internal server error")
		return
	}

	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err == nil && parsed < 0 {
			err = errors.New("limit must be non-negative")
		}
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit")
			return
		}
		limit = int32(parsed)
	}

	views, err := h.actionQueries.List(c.Request.Context(), actor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrActionLogForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden,
				err, "Action log access forbidden")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError,
			err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromActionViews(views))
}
