package uploads

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// DiskBinder stores uploads as files under a single directory.
type DiskBinder struct {
	Dir string
}

func NewDiskBinder(dir string) (*DiskBinder, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &DiskBinder{Dir: dir}, nil
}

func (b *DiskBinder) Bind(fieldName string, file *multipart.FileHeader) (string, error) {
	name := storedName(fieldName, file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(b.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return PathPrefix + name, nil
}

func (b *DiskBinder) Open(filename string) (io.ReadCloser, error) {
	name := baseName(filename)
	if name == "." || name == ".." || name == "/" {
		return nil, ErrNotFound
	}
	f, err := os.Open(filepath.Join(b.Dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (b *DiskBinder) Remove(storedPath string) error {
	name := baseName(storedPath)
	if name == "." || name == ".." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(b.Dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
