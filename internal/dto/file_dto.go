package dto

import "time"

// FileDTO is one entry of a file listing: the metadata projection exposed
// to clients, without the storage name or the on-disk path.
type FileDTO struct {
	ID           int64     `json:"id"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	UploadDate   time.Time `json:"upload_date"`
}

// FileListResponse is the body of GET /files/:noteId.
type FileListResponse struct {
	Files []*FileDTO `json:"files"`
}

// UploadResponse is the body of a successful POST /upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	FileID   int64  `json:"fileId"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// FileDeleteResponse is the body of a successful DELETE /file/:fileId.
type FileDeleteResponse struct {
	Success bool `json:"success"`
}
