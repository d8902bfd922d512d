// Package fileurl provides small path and file helpers.
package fileurl

import (
	"os"
	"path"
	"path/filepath"
)

// IsExist reports whether the given path exists.
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// GetFileExt returns the file extension including the leading dot.
func GetFileExt(name string) string {
	return path.Ext(name)
}

// CreatePath creates the parent directory of dst.
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}
