package api_router

import (
	"github.com/notevault/note-storage-service/internal/app"
	pkgapp "github.com/notevault/note-storage-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// VersionHandler serves the build version endpoint.
type VersionHandler struct{}

func NewVersionHandler() *VersionHandler {
	return &VersionHandler{}
}

// ServerVersion returns the running build's version info.
func (v *VersionHandler) ServerVersion(c *gin.Context) {
	pkgapp.NewResponse(c).ToResponse(map[string]string{
		"version":   app.Version,
		"gitTag":    app.GitTag,
		"buildTime": app.BuildTime,
	})
}
