package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/notevault/note-storage-service/pkg/app"
	"github.com/notevault/note-storage-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger recovers from handler panics, logs the stack and
// answers with the generic internal error body.
func RecoveryWithLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		defer func() {
			if err := recover(); err != nil {
				lg.Error("recovered from panic",
					zap.String("router", path),
					zap.String("method", c.Request.Method),
					zap.String("ip", c.ClientIP()),
					zap.String("panic", fmt.Sprintf("%v", err)),
					zap.String("stack", string(debug.Stack())),
				)
				app.NewResponse(c).ToErrorResponse(code.ErrorServerInternal)
				c.Abort()
			}
		}()

		c.Next()
	}
}
