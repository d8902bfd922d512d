package app

import (
	"time"

	"github.com/notevault/note-storage-service/internal/dao"
	"github.com/notevault/note-storage-service/internal/domain"
	"github.com/notevault/note-storage-service/internal/service"
	"github.com/notevault/note-storage-service/pkg/storage/local_fs"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the application container. All dependencies are constructed once
// at startup and injected; nothing in the service reaches for hidden
// package state.
type App struct {
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao
	Store  *local_fs.LocalFS

	// Repository layer
	NoteRepo domain.NoteRepository
	FileRepo domain.FileRepository

	// Service layer
	NoteService service.NoteService
	FileService service.FileService

	StartTime time.Time
}

// NewApp wires the container. cfg, logger and db are required.
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if db == nil {
		return nil, errors.New("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: time.Now(),
	}

	store, err := local_fs.NewClient(&cfg.LocalFS)
	if err != nil {
		return nil, errors.Wrap(err, "init blob storage failed")
	}
	a.Store = store

	a.Dao = dao.New(db, logger)

	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.FileRepo = dao.NewFileRepository(a.Dao)

	a.NoteService = service.NewNoteService(a.NoteRepo)
	a.FileService = service.NewFileService(a.FileRepo, a.NoteRepo, a.Store, logger)

	logger.Info("app container initialized",
		zap.String("uploads", cfg.LocalFS.SavePath),
		zap.String("database", cfg.Database.Path))

	return a, nil
}

// Close releases the resources the container holds.
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return errors.Wrap(err, "get sql.DB failed")
		}
		if err := sqlDB.Close(); err != nil {
			return errors.Wrap(err, "close database failed")
		}
		a.logger.Info("database connection closed")
	}
	return nil
}

// Config returns the application configuration.
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger returns the service logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}
