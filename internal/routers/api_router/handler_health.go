package api_router

import (
	"time"

	"github.com/notevault/note-storage-service/internal/app"
	pkgapp "github.com/notevault/note-storage-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	*Handler
}

func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse reports service and database state.
type HealthResponse struct {
	Status   string  `json:"status"`   // "healthy" or "unhealthy"
	Version  string  `json:"version"`  // service version
	Uptime   float64 `json:"uptime"`   // seconds since start
	Database string  `json:"database"` // "connected" or "error"
}

// Check pings the database and reports overall health.
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  app.Version,
		Uptime:   time.Since(h.App.StartTime).Seconds(),
		Database: "connected",
	}

	if err := h.App.DB.WithContext(c.Request.Context()).Raw("SELECT 1").Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
	}

	pkgapp.NewResponse(c).ToResponse(response)
}
