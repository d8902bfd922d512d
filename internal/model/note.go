package model

// Note is one named text document. The id is client-chosen; a note is
// created implicitly on first write or first attachment upload and is never
// deleted through the API.
type Note struct {
	ID      string `gorm:"column:id;primaryKey" json:"id"`
	Content string `gorm:"column:content" json:"content"`
}

func (Note) TableName() string {
	return "notes"
}
