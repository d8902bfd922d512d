package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/notevault/note-storage-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	db, err := NewDBEngine(DatabaseConfig{
		Type:            "sqlite",
		Path:            filepath.Join(t.TempDir(), "test.db"),
		AutoMigrate:     true,
		MaxIdleConns:    2,
		MaxOpenConns:    2,
		ConnMaxLifetime: "30m",
		ConnMaxIdleTime: "10m",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return New(db, zap.NewNop())
}

func TestNewDBEngineRejectsUnknownType(t *testing.T) {
	_, err := NewDBEngine(DatabaseConfig{Type: "postgres"}, zap.NewNop())
	assert.Error(t, err)
}

func TestNoteRepositoryGetAbsent(t *testing.T) {
	repo := NewNoteRepository(newTestDao(t))

	note, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestNoteRepositoryUpsert(t *testing.T) {
	repo := NewNoteRepository(newTestDao(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Note{ID: "abc", Content: "v1"}))
	require.NoError(t, repo.Upsert(ctx, &domain.Note{ID: "abc", Content: "v2"}))

	note, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "v2", note.Content)
}

func TestNoteRepositoryGetOrCreate(t *testing.T) {
	repo := NewNoteRepository(newTestDao(t))
	ctx := context.Background()

	created, err := repo.GetOrCreate(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "", created.Content)

	// An existing note keeps its content untouched.
	require.NoError(t, repo.Upsert(ctx, &domain.Note{ID: "fresh", Content: "kept"}))
	got, err := repo.GetOrCreate(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "kept", got.Content)
}

func TestFileRepositoryCreateAssignsID(t *testing.T) {
	d := newTestDao(t)
	files := NewFileRepository(d)
	ctx := context.Background()

	created, err := files.Create(ctx, &domain.File{
		NoteID:       "abc",
		Filename:     "123_uuid.txt",
		OriginalName: "notes.txt",
		FilePath:     "/tmp/123_uuid.txt",
		FileSize:     42,
		MimeType:     "text/plain",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := files.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "notes.txt", got.OriginalName)
	assert.Equal(t, int64(42), got.FileSize)
}

func TestFileRepositoryGetByIDAbsent(t *testing.T) {
	files := NewFileRepository(newTestDao(t))

	got, err := files.GetByID(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileRepositoryListOrdering(t *testing.T) {
	files := NewFileRepository(newTestDao(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"oldest.txt", "middle.txt", "newest.txt"} {
		_, err := files.Create(ctx, &domain.File{
			NoteID:       "abc",
			Filename:     name,
			OriginalName: name,
			FilePath:     "/tmp/" + name,
			UploadDate:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	// Files of other notes never leak into the listing.
	_, err := files.Create(ctx, &domain.File{NoteID: "other", Filename: "x", OriginalName: "x", FilePath: "/tmp/x"})
	require.NoError(t, err)

	list, err := files.ListByNoteID(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest.txt", list[0].OriginalName)
	assert.Equal(t, "middle.txt", list[1].OriginalName)
	assert.Equal(t, "oldest.txt", list[2].OriginalName)
}

func TestFileRepositoryListEmpty(t *testing.T) {
	files := NewFileRepository(newTestDao(t))

	list, err := files.ListByNoteID(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestFileRepositoryDelete(t *testing.T) {
	files := NewFileRepository(newTestDao(t))
	ctx := context.Background()

	created, err := files.Create(ctx, &domain.File{NoteID: "abc", Filename: "f", OriginalName: "f", FilePath: "/tmp/f"})
	require.NoError(t, err)

	require.NoError(t, files.Delete(ctx, created.ID))

	got, err := files.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
