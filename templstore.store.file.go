package templstore

import (
	"os"
	"time"
)

// FileStore reads a TemplateMap from a single file, detecting change by
// polling the file's modification time. Stat failures during the poll are
// treated as "unchanged" so a transient filesystem hiccup never crashes the
// polling path - the next successful refresh picks the content up.
type FileStore struct {
	path string
	last time.Time // zero = never fetched
	load LoadFunc
}

// FileStoreDriver is the driver for creating FileStore instances.
type FileStoreDriver struct{}

func init() {
	RegisterStoreDriver(StoreDriverNameFile, &FileStoreDriver{})
}

// Open creates a new FileStore. The source string is the file path.
func (d *FileStoreDriver) Open(source string, load LoadFunc) (TemplateStore, error) {
	return NewFileStore(source, load), nil
}

// NewFileStore creates a store backed by the file at path. The file is not
// touched until the first refresh, so a missing file surfaces as an I/O
// error from ParseMap, not from construction.
func NewFileStore(path string, load LoadFunc) *FileStore {
	return &FileStore{
		path: path,
		load: load,
	}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Changed reports whether the backing file has a strictly newer modification
// time than the last one seen. The first call records the current time and
// returns true, forcing the initial load.
func (s *FileStore) Changed() bool {
	if s.last.IsZero() {
		s.last = time.Now()
		return true
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return false
	}
	if mod := info.ModTime(); mod.After(s.last) {
		s.last = mod
		return true
	}
	return false
}

// ParseMap reads the whole file and deserializes it with the load function.
func (s *FileStore) ParseMap() (TemplateMap, error) {
	text, err := os.ReadFile(s.path)
	if err != nil {
		return nil, NewFileIoError(s.path, err)
	}
	return s.load(string(text))
}
