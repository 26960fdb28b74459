package routes

import (
	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/handlers"
	"dogwalking_backend/internal/middleware"
	"dogwalking_backend/internal/services"
)

// RegisterRoutes wires all HTTP routes. The public group is the configured
// allow-list (member self-service, home, init); everything else sits behind
// the auth middleware. Resource-level ownership is not decided here - the
// services check it against the resolved principal.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, authService *services.AuthService) {
	public := router.Group("/api")
	authed := router.Group("/api", middleware.AuthMiddleware(authService))

	h.MemberHandler.RegisterRoutes(public, authed)
	h.DogHandler.RegisterRoutes(public, authed)
	h.NotificationHandler.RegisterRoutes(public, authed)
	h.ApplicationHandler.RegisterRoutes(public, authed)
	h.MatchHandler.RegisterRoutes(public, authed)
	h.HomeHandler.RegisterRoutes(public, authed)
	h.HomeHandler.RegisterInit(router)
}
