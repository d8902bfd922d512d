// Package app provides gin response helpers shared by all handlers.
package app

import (
	"net/http"

	"github.com/notevault/note-storage-service/pkg/code"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Ctx *gin.Context
}

// ErrRes is the error body contract: every failure answers {"error": message}.
type ErrRes struct {
	Error string `json:"error"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{Ctx: ctx}
}

// ToResponse writes a success payload as-is with HTTP 200.
func (r *Response) ToResponse(data interface{}) {
	r.Ctx.JSON(http.StatusOK, data)
}

// ToErrorResponse maps a registered error code onto the wire: its HTTP
// status plus the {"error": message} body.
func (r *Response) ToErrorResponse(codeObj *code.Code) {
	r.Ctx.JSON(codeObj.StatusCode(), ErrRes{Error: codeObj.Msg()})
}
