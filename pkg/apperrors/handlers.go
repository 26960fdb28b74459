package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform API response body. Every endpoint, success or
// failure, answers with this shape.
type Envelope struct {
	Success  bool        `json:"success"`
	Response interface{} `json:"response"`
	Error    *ErrorBody  `json:"error"`
}

// ErrorBody is the error half of the envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// OK writes a success envelope with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(200, Envelope{Success: true, Response: payload})
}

// HandleError maps err onto the error envelope. Non-AppError values are
// treated as internal errors and their details are never leaked to the
// client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "domain", appErr.Domain, "code", appErr.Code, "error", appErr.Unwrap())
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, Envelope{
		Success: false,
		Error: &ErrorBody{
			Message: appErr.Message,
			Status:  appErr.HTTPCode,
		},
	})
}
