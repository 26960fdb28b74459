package handlers

import (
	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/middleware"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/pkg/apperrors"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
	applicationService  *services.ApplicationService
}

func NewNotificationHandler(
	base *BaseHandler,
	notificationService *services.NotificationService,
	applicationService *services.ApplicationService,
) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		applicationService:  applicationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	authed.GET("/notification", h.List)
	authed.POST("/notification", h.Write)
	authed.GET("/notification/:id", h.View)
	authed.GET("/notification/:id/application", h.ListApplicants)
}

func (h *NotificationHandler) List(c *gin.Context) {
	member := middleware.GetMember(c)

	page, err := h.notificationService.ListOpenNotifications(c.Request.Context(), member.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, page)
}

func (h *NotificationHandler) Write(c *gin.Context) {
	member := middleware.GetMember(c)

	var req dto.WriteNotificationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	n, err := h.notificationService.CreateNotification(c.Request.Context(), member.ID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, n)
}

func (h *NotificationHandler) View(c *gin.Context) {
	member := middleware.GetMember(c)

	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	detail, err := h.notificationService.ViewNotification(c.Request.Context(), member.ID, id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, detail)
}

// ListApplicants is the poster-only view of who applied.
func (h *NotificationHandler) ListApplicants(c *gin.Context) {
	member := middleware.GetMember(c)

	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	applicants, err := h.applicationService.ListApplicants(c.Request.Context(), member.ID, id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, applicants)
}
