package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/logger"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/pkg/apperrors"
)

const memberKey = "member"

// AuthMiddleware authenticates each request exactly once: it parses the
// bearer token, resolves the member fresh from the store and attaches the
// principal to the request context. Everything downstream takes the caller's
// identity from here as an explicit argument, never from the token payload.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		member, err := authService.ResolvePrincipal(c.Request.Context(), tokenStr)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		ctx := logger.WithMemberID(c.Request.Context(), member.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(memberKey, member)
		c.Next()
	}
}

// GetMember extracts the authenticated principal from the gin context. It
// only returns nil on routes that skipped AuthMiddleware.
func GetMember(c *gin.Context) *models.Member {
	val, exists := c.Get(memberKey)
	if !exists {
		return nil
	}

	member, ok := val.(*models.Member)
	if !ok {
		return nil
	}
	return member
}
