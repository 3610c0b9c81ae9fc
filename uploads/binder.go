package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// PathPrefix is the reference-path prefix stored on registration records.
const PathPrefix = "/uploads/"

// ErrNotFound is returned by Open when no object exists for the name.
var ErrNotFound = errors.New("upload not found")

// Binder stores incoming file payloads under collision-resistant names and
// resolves the stable reference paths kept on registration records.
type Binder interface {
	// Bind stores the payload and returns its reference path ("/uploads/<name>").
	Bind(fieldName string, file *multipart.FileHeader) (string, error)
	// Open returns the stored bytes for a basename; ErrNotFound if absent.
	Open(filename string) (io.ReadCloser, error)
	// Remove deletes the object behind a reference path. Absence is not an error.
	Remove(storedPath string) error
}

// storedName derives a filesystem-safe object name: the sanitized field
// name, a millisecond timestamp plus a random fragment (so concurrent
// uploads in the same millisecond cannot collide), and the original
// extension.
func storedName(fieldName, originalFilename string) string {
	safe := slug.Make(fieldName)
	if safe == "" {
		safe = "file"
	}
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("%s-%d-%s%s", safe, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// baseName reduces a stored reference path to its basename, so path
// traversal sequences held in stored data are never honored.
func baseName(storedPath string) string {
	return path.Base(filepath.ToSlash(storedPath))
}
