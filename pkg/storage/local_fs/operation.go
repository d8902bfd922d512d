package local_fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/notevault/note-storage-service/pkg/fileurl"
)

// GetSavePath returns the on-disk path for a blob key.
func (p *LocalFS) GetSavePath(fileKey string) string {
	return filepath.Join(p.Config.SavePath, fileKey)
}

// SendFile writes the blob bytes under fileKey and returns the stored path
// and the number of bytes written.
func (p *LocalFS) SendFile(fileKey string, file io.Reader) (string, int64, error) {
	dst := p.GetSavePath(fileKey)

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", 0, err
	}
	defer out.Close()

	written, err := io.Copy(out, file)
	if err != nil {
		// Half-written blobs must not linger as success.
		_ = os.Remove(dst)
		return "", 0, err
	}
	return dst, written, nil
}

// IsExist reports whether the blob for fileKey is present on disk.
func (p *LocalFS) IsExist(fileKey string) bool {
	return fileurl.IsExist(p.GetSavePath(fileKey))
}
