// Package local_fs stores uploaded blobs in a directory on the local
// filesystem. Metadata lives in the database; this package only ever sees
// raw bytes keyed by a generated storage name.
package local_fs

import (
	"os"

	"github.com/pkg/errors"
)

type Config struct {
	// SavePath is the blob directory root.
	SavePath string `yaml:"save-path" default:"storage/uploads"`
}

type LocalFS struct {
	Config *Config
}

func NewClient(cfg *Config) (*LocalFS, error) {
	if cfg == nil || cfg.SavePath == "" {
		return nil, errors.New("local_fs: save path is required")
	}
	if err := os.MkdirAll(cfg.SavePath, 0754); err != nil {
		return nil, errors.Wrap(err, "local_fs: create save path failed")
	}
	return &LocalFS{Config: cfg}, nil
}
