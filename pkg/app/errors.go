package app

import (
	"errors"

	"github.com/notevault/note-storage-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// ErrorResponse converts a service error to the wire contract. Errors
// raised as registered codes keep their status and message; anything else
// answers with fallback, the cause stays server-side.
func ErrorResponse(c *gin.Context, err error, fallback *code.Code) {
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		NewResponse(c).ToErrorResponse(codeErr)
		return
	}
	NewResponse(c).ToErrorResponse(fallback)
}
