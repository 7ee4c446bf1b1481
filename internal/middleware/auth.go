package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sunileswar-collab/BusinessCheck/internal/auth"
	"github.com/sunileswar-collab/BusinessCheck/internal/logger"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

// UserIDKey is the gin context key the auth middleware stores the
// authenticated user id under.
const UserIDKey = "userID"

// AuthMiddleware guards a route group with bearer-token authentication.
// A missing header is 401; a present but invalid token is 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.ErrAccessTokenMissing)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header || tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
