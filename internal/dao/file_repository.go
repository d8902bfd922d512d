package dao

import (
	"context"
	"errors"

	"github.com/notevault/note-storage-service/internal/domain"
	"github.com/notevault/note-storage-service/internal/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// fileRepository implements domain.FileRepository.
type fileRepository struct {
	dao *Dao
}

func NewFileRepository(dao *Dao) domain.FileRepository {
	return &fileRepository{dao: dao}
}

func (r *fileRepository) toDomain(m *model.File) *domain.File {
	if m == nil {
		return nil
	}
	file := &domain.File{}
	_ = copier.Copy(file, m)
	return file
}

func (r *fileRepository) toModel(file *domain.File) *model.File {
	if file == nil {
		return nil
	}
	m := &model.File{}
	_ = copier.Copy(m, file)
	return m
}

func (r *fileRepository) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	m := r.toModel(file)
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID returns nil without error when the record is absent; the service
// layer decides whether that is a not-found condition.
func (r *fileRepository) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	var m model.File
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *fileRepository) ListByNoteID(ctx context.Context, noteID string) ([]*domain.File, error) {
	var ms []*model.File
	err := r.dao.db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("upload_date DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	files := make([]*domain.File, 0, len(ms))
	for _, m := range ms {
		files = append(files, r.toDomain(m))
	}
	return files, nil
}

func (r *fileRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.File{}).Error
}
