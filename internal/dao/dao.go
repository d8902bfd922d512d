// Package dao implements the data access layer on top of gorm.
package dao

import (
	"os"
	"time"

	"github.com/notevault/note-storage-service/internal/model"
	"github.com/notevault/note-storage-service/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig carries the settings NewDBEngine needs. It mirrors the
// database section of the app configuration so the dao layer never imports
// internal/app.
type DatabaseConfig struct {
	Type            string
	Path            string
	TablePrefix     string
	AutoMigrate     bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
	RunMode         string
}

// Dao bundles the database handle for the repository implementations. It is
// constructed once at startup and injected; there is no package-level state.
type Dao struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, lg *zap.Logger) *Dao {
	return &Dao{db: db, logger: lg}
}

func (d *Dao) DB() *gorm.DB {
	return d.db
}

// NewDBEngine opens the sqlite database and applies pool settings and
// migrations.
func NewDBEngine(c DatabaseConfig, lg *zap.Logger) (*gorm.DB, error) {
	dialector := sqliteDialector(c)
	if dialector == nil {
		return nil, errors.Errorf("unsupported database type %q", c.Type)
	}

	gormLogLevel := logger.Silent
	if c.RunMode == "debug" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database failed")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	if lifetime, err := time.ParseDuration(c.ConnMaxLifetime); err == nil {
		sqlDB.SetConnMaxLifetime(lifetime)
	}
	if idleTime, err := time.ParseDuration(c.ConnMaxIdleTime); err == nil {
		sqlDB.SetConnMaxIdleTime(idleTime)
	}

	if c.AutoMigrate {
		if err := model.AutoMigrateAll(db); err != nil {
			return nil, errors.Wrap(err, "auto migrate failed")
		}
	}

	if lg != nil {
		lg.Info("database engine initialized", zap.String("type", c.Type), zap.String("path", c.Path))
	}

	return db, nil
}

func sqliteDialector(c DatabaseConfig) gorm.Dialector {
	if c.Type != "sqlite" {
		return nil
	}
	if !fileurl.IsExist(c.Path) {
		_ = fileurl.CreatePath(c.Path, os.ModePerm)
	}
	return sqlite.Open(c.Path)
}
