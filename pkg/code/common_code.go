package code

import "net/http"

var (
	Success = NewSuss(0, "ok")

	// Client input errors
	ErrorInvalidParams     = NewError(10001, http.StatusBadRequest, "Invalid request parameters")
	ErrorUploadFileMissing = NewError(10002, http.StatusBadRequest, "No file uploaded")
	ErrorNoteNameMissing   = NewError(10003, http.StatusBadRequest, "Note name is required")

	// Not-found errors
	ErrorNotFoundAPI        = NewError(10100, http.StatusNotFound, "API not found")
	ErrorFileNotFound       = NewError(10101, http.StatusNotFound, "File not found")
	ErrorFileNotFoundOnDisk = NewError(10102, http.StatusNotFound, "File not found on disk")

	// Server errors
	ErrorServerInternal  = NewError(10200, http.StatusInternalServerError, "Internal server error")
	ErrorUploadFailed    = NewError(10201, http.StatusInternalServerError, "Upload failed")
	ErrorFileListFailed  = NewError(10202, http.StatusInternalServerError, "Failed to fetch files")
	ErrorDownloadFailed  = NewError(10203, http.StatusInternalServerError, "Download failed")
	ErrorDeleteFailed    = NewError(10204, http.StatusInternalServerError, "Delete failed")
	ErrorNoteSaveFailed  = NewError(10205, http.StatusInternalServerError, "Failed to save note")
	ErrorTooManyRequests = NewError(10206, http.StatusTooManyRequests, "Too many requests")

	// Transport-level rejection for oversized upload bodies
	ErrorRequestEntityTooLarge = NewError(10207, http.StatusRequestEntityTooLarge, "Request entity too large")
)
