package model

import "time"

// File is the metadata row for one uploaded blob. The blob bytes live in
// the uploads directory under Filename; FilePath is the resolved on-disk
// location. The row is the only link between note and blob.
type File struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NoteID       string    `gorm:"column:note_id;index" json:"note_id"`
	Filename     string    `gorm:"column:filename" json:"filename"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	FilePath     string    `gorm:"column:file_path" json:"file_path"`
	FileSize     int64     `gorm:"column:file_size" json:"file_size"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	UploadDate   time.Time `gorm:"column:upload_date;autoCreateTime" json:"upload_date"`
}

func (File) TableName() string {
	return "files"
}
