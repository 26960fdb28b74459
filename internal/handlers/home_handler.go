package handlers

import (
	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/services"
	"dogwalking_backend/pkg/apperrors"
)

// HomeHandler serves the public landing payload and the demo-data init
// endpoint; both live on the unauthenticated allow-list.
type HomeHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
	seedService         *services.SeedService
}

func NewHomeHandler(base *BaseHandler, notificationService *services.NotificationService, seedService *services.SeedService) *HomeHandler {
	return &HomeHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		seedService:         seedService,
	}
}

func (h *HomeHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/home", h.Home)
}

// RegisterInit hangs /init off the engine root; it predates the /api prefix.
func (h *HomeHandler) RegisterInit(router *gin.Engine) {
	router.GET("/init", h.Init)
}

func (h *HomeHandler) Home(c *gin.Context) {
	notifications, err := h.notificationService.ListOpenSummaries(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, notifications)
}

func (h *HomeHandler) Init(c *gin.Context) {
	if err := h.seedService.SeedDemoData(c.Request.Context()); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, gin.H{"initialized": true})
}
