package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o600
)

// Manager centralizes where makan keeps files on disk and how they are named.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.makan (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the data directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// StatePath is the JSON file holding the blob stored under key.
func (m *Manager) StatePath(key string) string {
	return filepath.Join(m.basePath, key+".json")
}

// DatabasePath is the SQLite database file inside the data directory.
func (m *Manager) DatabasePath() string {
	return filepath.Join(m.basePath, "makan.db")
}

// JournalPath resolves the Markdown journal for the month containing t.
// The file may not exist yet.
func (m *Manager) JournalPath(t time.Time) string {
	yearDir := filepath.Join(m.basePath, "journal", fmt.Sprintf("%04d", t.Year()))
	return filepath.Join(yearDir, fmt.Sprintf("%04d-%02d.md", t.Year(), t.Month()))
}

// EnvPath is the optional dotenv file inside the data directory.
func (m *Manager) EnvPath() string {
	return filepath.Join(m.basePath, ".env")
}

// EnsureDir creates the data directory if needed.
func (m *Manager) EnsureDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// WriteFileAtomic replaces path with data via a synced temp file and rename,
// so readers never observe a partial write. An existing file keeps its mode.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	temp, err := os.CreateTemp(dir, "makan-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
