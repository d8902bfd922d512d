package service

import (
	"context"
	"expvar"
	"io"

	"github.com/notevault/note-storage-service/internal/domain"
	"github.com/notevault/note-storage-service/internal/dto"
	"github.com/notevault/note-storage-service/pkg/code"
	"github.com/notevault/note-storage-service/pkg/fileurl"
	"github.com/notevault/note-storage-service/pkg/logger"
	"github.com/notevault/note-storage-service/pkg/storage/local_fs"
	"github.com/notevault/note-storage-service/pkg/util"

	"go.uber.org/zap"
)

var (
	uploadCount   = expvar.NewInt("files.uploaded")
	downloadCount = expvar.NewInt("files.downloaded")
	deleteCount   = expvar.NewInt("files.deleted")
)

// FileUploadParams carries the client-declared attachment metadata.
type FileUploadParams struct {
	NoteID       string
	OriginalName string
	MimeType     string
}

// FileService defines the attachment business operations.
type FileService interface {
	// Upload stores the blob, get-or-creates the target note, and inserts
	// the metadata row.
	Upload(ctx context.Context, params *FileUploadParams, file io.Reader) (*dto.UploadResponse, error)

	// List returns the note's attachments, newest upload first.
	List(ctx context.Context, noteID string) ([]*dto.FileDTO, error)

	// GetDownload resolves the record for a download and verifies the blob
	// still exists on disk.
	GetDownload(ctx context.Context, fileID int64) (*domain.File, error)

	// Delete removes the blob (if present) and then the record.
	Delete(ctx context.Context, fileID int64) error
}

type fileService struct {
	fileRepo domain.FileRepository
	noteRepo domain.NoteRepository
	store    *local_fs.LocalFS
	logger   *zap.Logger
}

func NewFileService(fileRepo domain.FileRepository, noteRepo domain.NoteRepository, store *local_fs.LocalFS, lg *zap.Logger) FileService {
	return &fileService{
		fileRepo: fileRepo,
		noteRepo: noteRepo,
		store:    store,
		logger:   lg,
	}
}

func (s *fileService) domainToDTO(file *domain.File) *dto.FileDTO {
	if file == nil {
		return nil
	}
	return &dto.FileDTO{
		ID:           file.ID,
		OriginalName: file.OriginalName,
		FileSize:     file.FileSize,
		MimeType:     file.MimeType,
		UploadDate:   file.UploadDate,
	}
}

func (s *fileService) Upload(ctx context.Context, params *FileUploadParams, file io.Reader) (*dto.UploadResponse, error) {
	// Get-or-create up front: an upload must not fail merely because the
	// note does not pre-exist.
	if _, err := s.noteRepo.GetOrCreate(ctx, params.NoteID); err != nil {
		return nil, err
	}

	storageName := util.GenerateStorageName(fileurl.GetFileExt(params.OriginalName))
	savePath, written, err := s.store.SendFile(storageName, file)
	if err != nil {
		return nil, err
	}

	record := &domain.File{
		NoteID:       params.NoteID,
		Filename:     storageName,
		OriginalName: params.OriginalName,
		FilePath:     savePath,
		FileSize:     written,
		MimeType:     params.MimeType,
	}

	record, err = s.fileRepo.Create(ctx, record)
	if err != nil {
		// The blob was written before the row; remove it so the failed
		// upload leaves nothing observable behind.
		if delErr := s.store.Delete(storageName); delErr != nil {
			s.logger.Warn("orphan blob cleanup failed",
				zap.String(logger.FieldPath, savePath), zap.Error(delErr))
		}
		return nil, err
	}

	uploadCount.Add(1)
	s.logger.Info("file uploaded",
		zap.Int64(logger.FieldFileID, record.ID),
		zap.String(logger.FieldNoteID, record.NoteID),
		zap.Int64(logger.FieldSize, record.FileSize))

	return &dto.UploadResponse{
		Success:  true,
		FileID:   record.ID,
		Filename: record.OriginalName,
		Size:     record.FileSize,
	}, nil
}

func (s *fileService) List(ctx context.Context, noteID string) ([]*dto.FileDTO, error) {
	files, err := s.fileRepo.ListByNoteID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.FileDTO, 0, len(files))
	for _, f := range files {
		list = append(list, s.domainToDTO(f))
	}
	return list, nil
}

func (s *fileService) GetDownload(ctx context.Context, fileID int64) (*domain.File, error) {
	record, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, code.ErrorFileNotFound
	}
	// A dangling record (blob gone) is tolerated state, surfaced to the
	// client as the same not-found status.
	if !s.store.IsExist(record.Filename) {
		return nil, code.ErrorFileNotFoundOnDisk
	}
	downloadCount.Add(1)
	return record, nil
}

func (s *fileService) Delete(ctx context.Context, fileID int64) error {
	record, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if record == nil {
		return code.ErrorFileNotFound
	}

	// Blob first, row second; an already-missing blob is fine. The two
	// steps are deliberately not transactional.
	if err := s.store.Delete(record.Filename); err != nil {
		return err
	}
	if err := s.fileRepo.Delete(ctx, record.ID); err != nil {
		return err
	}

	deleteCount.Add(1)
	s.logger.Info("file deleted",
		zap.Int64(logger.FieldFileID, record.ID),
		zap.String(logger.FieldNoteID, record.NoteID))
	return nil
}
