package handlers

import (
	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/middleware"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/pkg/apperrors"
)

type MemberHandler struct {
	*BaseHandler
	authService   *services.AuthService
	memberService *services.MemberService
}

func NewMemberHandler(base *BaseHandler, authService *services.AuthService, memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   base,
		authService:   authService,
		memberService: memberService,
	}
}

func (h *MemberHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	member := public.Group("/member")
	{
		member.POST("/signup", h.Signup)
		member.POST("/login", h.Login)
	}

	authed.GET("/profile", h.GetProfile)
	authed.POST("/profile/update", h.UpdateProfile)
}

func (h *MemberHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindJSON(c, &req) {
		return
	}

	member, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, dto.ToMemberSummary(member))
}

// Login answers with the token both in the body and the Authorization
// header; the header is what the SPA client reads.
func (h *MemberHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+resp.AccessToken)
	apperrors.OK(c, resp)
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	member := middleware.GetMember(c)

	profile, err := h.memberService.GetProfile(c.Request.Context(), member.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, profile)
}

func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	member := middleware.GetMember(c)

	var req dto.UpdateProfileRequest
	if !h.BindForm(c, &req) {
		return
	}

	image, closeImage, err := h.FormImage(c, "image")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if closeImage != nil {
		defer closeImage()
	}

	profile, err := h.memberService.UpdateProfile(c.Request.Context(), member.ID, &req, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, profile)
}
