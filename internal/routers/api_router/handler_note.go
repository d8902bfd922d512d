package api_router

import (
	"github.com/notevault/note-storage-service/internal/app"
	"github.com/notevault/note-storage-service/internal/dto"
	pkgapp "github.com/notevault/note-storage-service/pkg/app"
	"github.com/notevault/note-storage-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoteHandler serves the note read/write endpoints.
type NoteHandler struct {
	*Handler
}

func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// Get returns the note content for the path id. A note that was never
// written answers {"content": ""} — absence is not an error here, unlike on
// the file endpoints.
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := c.Param("id")

	note, err := h.App.NoteService.Get(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, "NoteHandler.Get", err, code.ErrorServerInternal)
		return
	}

	response.ToResponse(note)
}

// Set upserts the note content for the path id. A missing or empty body is
// treated as empty content; content itself is accepted without validation.
func (h *NoteHandler) Set(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := c.Param("id")

	params := &dto.NoteSetRequest{}
	_ = c.ShouldBindJSON(params)

	if err := h.App.NoteService.Set(c.Request.Context(), id, params.Content); err != nil {
		h.errorResponse(c, "NoteHandler.Set", err, code.ErrorNoteSaveFailed)
		return
	}

	response.ToResponse(dto.NoteSetResponse{Status: "ok"})
}
