package middleware

import (
	"context"
	"net/http"
	"strings"

	"carhub/internal/services"
	"carhub/internal/transport/httpdto"
	"carhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware resolves the bearer token to a live account and attaches it
// to the request context. It is the only authorization mechanism there is:
// no roles, no permissions, just "who owns the row".
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "No token, authorization denied"})
			c.Abort()
			return
		}

		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "Token is not valid"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "Token is not valid"})
			c.Abort()
			return
		}

		u, err := service.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusNotFound, httpdto.MessageResponse{Message: "User not found"})
			c.Abort()
			return
		}

		ctx := services.WithUser(c.Request.Context(), u)
		ctx = context.WithValue(ctx, logger.UserIdKey, u.ID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
