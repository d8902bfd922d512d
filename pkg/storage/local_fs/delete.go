package local_fs

import (
	"os"

	"github.com/notevault/note-storage-service/pkg/fileurl"
)

// Delete removes the blob for fileKey. A blob that is already gone is not
// an error.
func (p *LocalFS) Delete(fileKey string) error {
	dst := p.GetSavePath(fileKey)
	if fileurl.IsExist(dst) {
		return os.Remove(dst)
	}
	return nil
}
