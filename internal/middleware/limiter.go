package middleware

import (
	"github.com/notevault/note-storage-service/pkg/app"
	"github.com/notevault/note-storage-service/pkg/code"
	"github.com/notevault/note-storage-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter rejects requests once the route's token bucket is drained.
// Routes without a bucket pass through untouched.
func RateLimiter(l limiter.Face) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				app.NewResponse(c).ToErrorResponse(code.ErrorTooManyRequests)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
