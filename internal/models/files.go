package models

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxFileBytes is the per-file size cap for uploads.
const MaxFileBytes = 10 * 1024 * 1024

// FileHandle is the metadata of one candidate upload plus an opener for its
// payload. The payload is immutable once selected; it is only read while the
// submission body is written.
type FileHandle struct {
	Name      string
	SizeBytes int64
	Open      func() (io.ReadCloser, error)
}

// NewFileHandle builds a handle for a file on disk.
func NewFileHandle(path string) (FileHandle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileHandle{}, err
	}
	if info.IsDir() {
		return FileHandle{}, fmt.Errorf("%s is a directory", path)
	}
	return FileHandle{
		Name:      info.Name(),
		SizeBytes: info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// ValidateFileBatch applies the per-file cap to a candidate batch. Validation
// is all-or-nothing: one oversized file rejects the whole batch, and the
// error names every oversized file so they can all be fixed in one pass.
func ValidateFileBatch(batch []FileHandle) error {
	var oversized []string
	for _, file := range batch {
		if file.SizeBytes > MaxFileBytes {
			oversized = append(oversized, file.Name)
		}
	}
	if len(oversized) == 0 {
		return nil
	}
	return &ValidationError{
		Message:        fmt.Sprintf("the following files exceed the 10MB limit: %s", strings.Join(oversized, ", ")),
		OversizedNames: oversized,
	}
}
