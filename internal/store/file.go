package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/faizmokh/makan/internal/files"
)

// File keeps the blob in a JSON file inside the data directory.
type File struct {
	path string
}

// NewFile returns a file store rooted at the manager's data directory.
func NewFile(manager *files.Manager) *File {
	return &File{path: manager.StatePath(Key)}
}

// Path is the file the blob is written to.
func (f *File) Path() string {
	return f.path
}

func (f *File) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

func (f *File) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := files.WriteFileAtomic(f.path, data); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func (f *File) Close() error {
	return nil
}
