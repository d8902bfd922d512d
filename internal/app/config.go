package app

import (
	"os"
	"path/filepath"

	"github.com/notevault/note-storage-service/pkg/storage/local_fs"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	File     string          `yaml:"-"` // config file path, not serialized
	Server   ServerConfig    `yaml:"server"`
	Log      LogConfig       `yaml:"log"`
	Database DatabaseConfig  `yaml:"database"`
	App      AppSettings     `yaml:"app"`
	LocalFS  local_fs.Config `yaml:"local-fs"`
	Tracer   TracerConfig    `yaml:"tracer"`
}

// ServerConfig server settings
type ServerConfig struct {
	// RunMode gin run mode
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP listen address
	HttpPort string `yaml:"http-port" default:":42060"`
	// ReadTimeout read timeout in seconds
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout write timeout in seconds
	WriteTimeout int `yaml:"write-timeout" default:"60"`
}

// LogConfig log settings
type LogConfig struct {
	// Level log level, see zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File log file path, empty for stderr only
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production enables JSON output on the file sink
	Production bool `yaml:"production" default:"true"`
}

// DatabaseConfig database settings
type DatabaseConfig struct {
	// Type database type, sqlite only
	Type string `yaml:"type" default:"sqlite"`
	// Path sqlite database file path
	Path string `yaml:"path" default:"storage/database/notes.db"`
	// TablePrefix table name prefix
	TablePrefix string `yaml:"table-prefix"`
	// AutoMigrate run schema migration at startup
	AutoMigrate bool `yaml:"auto-migrate" default:"true"`
	// MaxIdleConns max idle connections
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns max open connections
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
	// ConnMaxLifetime max connection lifetime, e.g. 30m or 1h
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
	// ConnMaxIdleTime max idle connection lifetime
	ConnMaxIdleTime string `yaml:"conn-max-idle-time" default:"10m"`
}

// AppSettings application settings
type AppSettings struct {
	// DefaultContextTimeout request context timeout in seconds
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// UploadMaxSizeMB upload payload ceiling in MiB
	UploadMaxSizeMB int64 `yaml:"upload-max-size-mb" default:"100"`
}

// TracerConfig request trace settings
type TracerConfig struct {
	// Enabled toggles trace id propagation
	Enabled bool `yaml:"enabled" default:"true"`
	// Header trace id header name
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// UploadMaxBytes returns the upload ceiling in bytes.
func (c *AppConfig) UploadMaxBytes() int64 {
	return c.App.UploadMaxSizeMB * 1024 * 1024
}

// LoadConfig loads the configuration file, applying struct defaults before
// and after parsing so partially filled files still get complete values.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// defaults.Set only fills zero values, so a second pass completes any
	// field the YAML left empty.
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}
