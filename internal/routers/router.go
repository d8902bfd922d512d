// Package routers assembles the gin engine.
package routers

import (
	"time"

	"github.com/notevault/note-storage-service/internal/app"
	"github.com/notevault/note-storage-service/internal/middleware"
	"github.com/notevault/note-storage-service/internal/routers/api_router"
	"github.com/notevault/note-storage-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/upload",
		FillInterval: time.Second,
		Capacity:     20,
		Quantum:      20,
	},
)

// NewRouter builds the HTTP API. Route shapes and response bodies are the
// service contract; the middleware chain carries logging, tracing, CORS,
// rate limiting and the request timeout.
func NewRouter(appContainer *app.App) *gin.Engine {
	cfg := appContainer.Config()

	r := gin.New()

	r.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
	r.Use(middleware.Cors())
	r.Use(middleware.RateLimiter(methodLimiters))
	r.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
	r.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

	noteHandler := api_router.NewNoteHandler(appContainer)
	fileHandler := api_router.NewFileHandler(appContainer)
	healthHandler := api_router.NewHealthHandler(appContainer)
	versionHandler := api_router.NewVersionHandler()

	r.GET("/note/:id", noteHandler.Get)
	r.POST("/note/:id", noteHandler.Set)

	// The body cap rejects oversized uploads before the multipart form is
	// parsed.
	r.POST("/upload", middleware.BodySizeLimit(cfg.UploadMaxBytes()), fileHandler.Upload)

	r.GET("/files/:noteId", fileHandler.List)
	r.GET("/file/:fileId", fileHandler.Download)
	r.DELETE("/file/:fileId", fileHandler.Delete)

	r.GET("/health", healthHandler.Check)
	r.GET("/version", versionHandler.ServerVersion)
	r.GET("/debug/vars", api_router.Expvar)

	r.NoRoute(middleware.NoFound())

	return r
}
