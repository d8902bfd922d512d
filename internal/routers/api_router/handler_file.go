package api_router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/notevault/note-storage-service/internal/app"
	"github.com/notevault/note-storage-service/internal/dto"
	"github.com/notevault/note-storage-service/internal/service"
	pkgapp "github.com/notevault/note-storage-service/pkg/app"
	"github.com/notevault/note-storage-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// FileHandler serves the attachment endpoints.
type FileHandler struct {
	*Handler
}

func NewFileHandler(a *app.App) *FileHandler {
	return &FileHandler{Handler: NewHandler(a)}
}

// Upload accepts one multipart file part plus a noteName field. The file
// part is checked before the note name; neither failure leaves a note or a
// record behind.
func (h *FileHandler) Upload(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.ToErrorResponse(code.ErrorRequestEntityTooLarge)
			return
		}
		response.ToErrorResponse(code.ErrorUploadFileMissing)
		return
	}

	noteName := c.PostForm("noteName")
	if noteName == "" {
		response.ToErrorResponse(code.ErrorNoteNameMissing)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logError(c, "FileHandler.Upload.Open", err)
		response.ToErrorResponse(code.ErrorUploadFailed)
		return
	}
	defer file.Close()

	params := &service.FileUploadParams{
		NoteID:       noteName,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
	}

	result, err := h.App.FileService.Upload(c.Request.Context(), params, file)
	if err != nil {
		h.errorResponse(c, "FileHandler.Upload", err, code.ErrorUploadFailed)
		return
	}

	response.ToResponse(result)
}

// List returns every attachment of a note, newest first. An unknown note
// answers an empty list.
func (h *FileHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	noteID := c.Param("noteId")

	files, err := h.App.FileService.List(c.Request.Context(), noteID)
	if err != nil {
		h.errorResponse(c, "FileHandler.List", err, code.ErrorFileListFailed)
		return
	}

	response.ToResponse(dto.FileListResponse{Files: files})
}

// Download streams the blob with the original filename and the stored mime
// type. Record absent and blob absent both answer 404.
func (h *FileHandler) Download(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	fileID, err := strconv.ParseInt(c.Param("fileId"), 10, 64)
	if err != nil {
		response.ToErrorResponse(code.ErrorFileNotFound)
		return
	}

	record, err := h.App.FileService.GetDownload(c.Request.Context(), fileID)
	if err != nil {
		h.errorResponse(c, "FileHandler.Download", err, code.ErrorDownloadFailed)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.OriginalName))
	c.Header("Content-Type", record.MimeType)
	c.File(record.FilePath)
}

// Delete removes the blob (tolerating one already gone) and then the
// record row.
func (h *FileHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	fileID, err := strconv.ParseInt(c.Param("fileId"), 10, 64)
	if err != nil {
		response.ToErrorResponse(code.ErrorFileNotFound)
		return
	}

	if err := h.App.FileService.Delete(c.Request.Context(), fileID); err != nil {
		h.errorResponse(c, "FileHandler.Delete", err, code.ErrorDeleteFailed)
		return
	}

	response.ToResponse(dto.FileDeleteResponse{Success: true})
}
