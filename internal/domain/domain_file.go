package domain

import "time"

// File describes one uploaded attachment: its identity, display name, size,
// declared mime type and where the blob lives on disk.
type File struct {
	ID           int64
	NoteID       string
	Filename     string
	OriginalName string
	FilePath     string
	FileSize     int64
	MimeType     string
	UploadDate   time.Time
}
