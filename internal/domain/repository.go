package domain

import "context"

// NoteRepository is the persistence contract for notes.
type NoteRepository interface {
	// Get returns the note for id, or nil when no such note exists.
	Get(ctx context.Context, id string) (*Note, error)
	// Upsert inserts the note or replaces its content in one statement.
	Upsert(ctx context.Context, note *Note) error
	// GetOrCreate returns the note for id, creating it with empty content
	// when absent.
	GetOrCreate(ctx context.Context, id string) (*Note, error)
}

// FileRepository is the persistence contract for file metadata rows.
type FileRepository interface {
	// Create inserts the record and fills in the assigned id.
	Create(ctx context.Context, file *File) (*File, error)
	// GetByID returns the record for id, or nil when absent.
	GetByID(ctx context.Context, id int64) (*File, error)
	// ListByNoteID returns every record for the note, newest upload first.
	ListByNoteID(ctx context.Context, noteID string) ([]*File, error)
	// Delete removes the record row.
	Delete(ctx context.Context, id int64) error
}
