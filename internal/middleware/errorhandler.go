package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avnergomes/comexstat-parana/internal/domain/dto"
	"github.com/avnergomes/comexstat-parana/internal/logger"
)

// ErrorHandler turns errors attached to the Gin context into the standard
// error envelope, for handlers that report via c.Error instead of writing
// a response themselves.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
}

// AbortWithError writes the standard error envelope with the given status
// and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
