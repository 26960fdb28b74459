package handlers

import (
	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/middleware"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/pkg/apperrors"
)

type DogHandler struct {
	*BaseHandler
	dogService *services.DogService
}

func NewDogHandler(base *BaseHandler, dogService *services.DogService) *DogHandler {
	return &DogHandler{
		BaseHandler: base,
		dogService:  dogService,
	}
}

func (h *DogHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	authed.POST("/profile/dog", h.SaveDog)
	authed.POST("/profile/update/dog/:dogId", h.UpdateDog)
	authed.GET("/profile/dog/:dogId", h.GetDog)
	authed.GET("/profile/dogs", h.ListMyDogs)
}

// SaveDog creates a dog profile from a multipart form; the image part is
// required.
func (h *DogHandler) SaveDog(c *gin.Context) {
	member := middleware.GetMember(c)

	var form dto.DogForm
	if !h.BindForm(c, &form) {
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

	dog, err := h.dogService.RegisterDog(c.Request.Context(), member.ID, &form, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, dog)
}

func (h *DogHandler) UpdateDog(c *gin.Context) {
	member := middleware.GetMember(c)

	dogID, ok := h.ParamID(c, "dogId")
	if !ok {
		return
	}

	var form dto.DogForm
	if !h.BindForm(c, &form) {
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

	dog, err := h.dogService.UpdateDog(c.Request.Context(), member.ID, dogID, &form, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, dog)
}

func (h *DogHandler) GetDog(c *gin.Context) {
	dogID, ok := h.ParamID(c, "dogId")
	if !ok {
		return
	}

	dog, err := h.dogService.GetDog(c.Request.Context(), dogID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, dog)
}

func (h *DogHandler) ListMyDogs(c *gin.Context) {
	member := middleware.GetMember(c)

	dogs, err := h.dogService.ListMyDogs(c.Request.Context(), member.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	apperrors.OK(c, dogs)
}
