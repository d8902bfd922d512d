package util

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateStorageName builds a unique blob storage name for an uploaded
// file: a millisecond timestamp plus a UUID, preserving the original
// extension so content type can still be inferred from the name.
func GenerateStorageName(ext string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}
