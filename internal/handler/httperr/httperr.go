package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the single error envelope every endpoint returns.
type Response struct {
	HTTPStatus int    `json:"-"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		HTTPStatus: status,
		Status:     "error",
		Message:    msg,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
