package limiter

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodLimiterKeysByPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewMethodLimiter()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/upload?x=1", nil)

	assert.Equal(t, "/upload", l.Key(c))
}

func TestBucketExhaustion(t *testing.T) {
	l := NewMethodLimiter().AddBuckets(BucketRule{
		Key:          "/upload",
		FillInterval: time.Hour,
		Capacity:     2,
		Quantum:      2,
	})

	bucket, ok := l.GetBucket("/upload")
	require.True(t, ok)

	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(0), bucket.TakeAvailable(1))

	_, unknown := l.GetBucket("/other")
	assert.False(t, unknown)
}
