package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dukaforge/cartbox/pkg/types"
)

// FileStore persists each session key as one JSON file under a data
// directory, so a CLI cart survives between process invocations. Writes
// go through a temp file and rename for atomicity.
//
// The SessionStore contract has no error returns; FileStore records the
// first I/O failure instead, and Err surfaces it to callers that care
// (the CLI checks it after every command).
type FileStore struct {
	dir string
	err error
}

var _ types.SessionStore = (*FileStore)(nil)

// NewFileStore creates the data directory when missing and returns a
// store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Err returns the first I/O error encountered since the last call, and
// clears it.
func (f *FileStore) Err() error {
	err := f.err
	f.err = nil
	return err
}

// Get reads the content stored under key.
func (f *FileStore) Get(key string) (*types.Content, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			f.setErr(fmt.Errorf("reading session %s: %w", key, err))
		}
		return nil, false
	}
	var content types.Content
	if err := json.Unmarshal(data, &content); err != nil {
		f.setErr(fmt.Errorf("decoding session %s: %w", key, err))
		return nil, false
	}
	content.Init()
	return &content, true
}

// Put writes content under key atomically.
func (f *FileStore) Put(key string, content *types.Content) {
	data, err := json.Marshal(content)
	if err != nil {
		f.setErr(fmt.Errorf("encoding session %s: %w", key, err))
		return
	}

	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		f.setErr(fmt.Errorf("writing session %s: %w", key, err))
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		f.setErr(fmt.Errorf("committing session %s: %w", key, err))
	}
}

// Has reports whether key is present.
func (f *FileStore) Has(key string) bool {
	_, err := os.Stat(f.path(key))
	return err == nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (f *FileStore) Remove(key string) {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		f.setErr(fmt.Errorf("removing session %s: %w", key, err))
	}
}

func (f *FileStore) setErr(err error) {
	if f.err == nil {
		f.err = err
	}
}

// path maps a session key to its file, keeping only filename-safe runes.
func (f *FileStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(f.dir, safe+".json")
}
