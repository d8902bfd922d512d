// Package api_router provides the HTTP API route handlers.
package api_router

import (
	"errors"

	"github.com/notevault/note-storage-service/internal/app"
	"github.com/notevault/note-storage-service/internal/middleware"
	pkgapp "github.com/notevault/note-storage-service/pkg/app"
	"github.com/notevault/note-storage-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is the base handler embedding the App container. Every API
// handler embeds it to get its dependencies injected.
type Handler struct {
	App *app.App
}

func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError logs a handler level failure with the request trace id.
func (h *Handler) logError(c *gin.Context, where string, err error) {
	h.App.Logger().Error(where,
		zap.String("traceId", middleware.GetTraceIDFromGin(c)),
		zap.Error(err))
}

// errorResponse writes err to the wire. Registered codes pass through with
// their own status and message; anything unexpected is logged and answered
// with fallback.
func (h *Handler) errorResponse(c *gin.Context, where string, err error, fallback *code.Code) {
	var codeErr *code.Code
	if !errors.As(err, &codeErr) {
		h.logError(c, where, err)
	}
	pkgapp.ErrorResponse(c, err, fallback)
}
