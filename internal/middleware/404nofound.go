package middleware

import (
	"github.com/notevault/note-storage-service/pkg/app"
	"github.com/notevault/note-storage-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound answers unknown routes with the JSON error contract.
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.NewResponse(c).ToErrorResponse(code.ErrorNotFoundAPI)
		c.Abort()
	}
}
