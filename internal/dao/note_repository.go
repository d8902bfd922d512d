package dao

import (
	"context"
	"errors"

	"github.com/notevault/note-storage-service/internal/domain"
	"github.com/notevault/note-storage-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// noteRepository implements domain.NoteRepository.
type noteRepository struct {
	dao *Dao
}

func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:      m.ID,
		Content: m.Content,
	}
}

// Get returns nil without error when the note does not exist. Absence is a
// normal state for notes, unlike for file records.
func (r *noteRepository) Get(ctx context.Context, id string) (*domain.Note, error) {
	var m model.Note
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Upsert is a single replace-or-insert statement keyed on the note id, not
// a check-then-write sequence.
func (r *noteRepository) Upsert(ctx context.Context, note *domain.Note) error {
	m := &model.Note{ID: note.ID, Content: note.Content}
	return r.dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content"}),
	}).Create(m).Error
}

// GetOrCreate creates the note with empty content when it is absent.
func (r *noteRepository) GetOrCreate(ctx context.Context, id string) (*domain.Note, error) {
	m := model.Note{ID: id}
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}
