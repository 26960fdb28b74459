package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dogwalking_backend/internal/logger"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/internal/validator"
	"dogwalking_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindJSON binds the JSON body into obj and validates it; on failure it
// writes the error envelope and returns false.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.FromContext(c.Request.Context()).Warn("failed to bind JSON body", "error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError("요청 본문이 올바르지 않습니다."))
		return false
	}
	return h.validate(c, obj)
}

// BindForm binds multipart/urlencoded form fields into obj and validates it.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		logger.FromContext(c.Request.Context()).Warn("failed to bind form body", "error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError("요청 본문이 올바르지 않습니다."))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		logger.FromContext(c.Request.Context()).Warn("validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Error()))
	} else {
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

// ParamID parses a numeric path parameter; on failure it writes a 400
// envelope and returns false.
func (h *BaseHandler) ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		apperrors.HandleError(c, apperrors.ValidationError("경로 파라미터가 올바르지 않습니다."))
		return 0, false
	}
	return id, true
}

// FormImage extracts the named multipart image part. Returns (nil, nil) when
// the part is simply absent; callers decide whether that is an error.
// The caller must invoke the returned closer when the upload is non-nil.
func (h *BaseHandler) FormImage(c *gin.Context, field string) (*services.ImageUpload, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, apperrors.ValidationError("요청 본문이 올바르지 않습니다.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	upload := &services.ImageUpload{
		Reader:      file,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}
	return upload, func() { file.Close() }, nil
}
