package handlers

import (
	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/middleware"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/pkg/apperrors"
)

type MatchHandler struct {
	*BaseHandler
	matchService *services.MatchService
}

func NewMatchHandler(base *BaseHandler, matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		BaseHandler:  base,
		matchService: matchService,
	}
}

func (h *MatchHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	authed.POST("/match", h.Select)
	authed.GET("/match/:matchId", h.Get)
}

// Select closes the notification and creates the match for the chosen
// application.
func (h *MatchHandler) Select(c *gin.Context) {
	member := middleware.GetMember(c)

	var req dto.SelectMatchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	match, err := h.matchService.SelectMatch(c.Request.Context(), member.ID, req.ApplicationID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, match)
}

func (h *MatchHandler) Get(c *gin.Context) {
	member := middleware.GetMember(c)

	matchID, ok := h.ParamID(c, "matchId")
	if !ok {
		return
	}

	match, err := h.matchService.GetMatch(c.Request.Context(), member.ID, matchID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, match)
}
