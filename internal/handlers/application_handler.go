package handlers

import (
	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/middleware"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	authed.POST("/application", h.Apply)
	authed.GET("/application", h.ListMine)
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	member := middleware.GetMember(c)

	var req dto.ApplyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), member.ID, req.NotificationID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	member := middleware.GetMember(c)

	applications, err := h.applicationService.ListMyApplications(c.Request.Context(), member.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, applications)
}
