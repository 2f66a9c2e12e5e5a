package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes AppErrors as JSON responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error", "error", err.Error())
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleError sends err through a default GinErrorHandler.
func HandleError(c *gin.Context, err *AppError) {
	handler := &GinErrorHandler{}
	handler.HandleGinError(c, err)
}
