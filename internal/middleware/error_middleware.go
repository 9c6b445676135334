package middleware

import (
	"fmt"
	"net/http"

	"carhub/internal/transport/httpdto"
	"carhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into the generic 500 envelope. The raw error
// message is exposed in the response, matching the rest of the API's
// diagnostic style.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if l != nil {
			l.Errorf("panic recovered: %v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.ErrorResponse{
			Success: false,
			Message: "Something went wrong!",
			Error:   fmt.Sprintf("%v", recovered),
		})
	})
}
