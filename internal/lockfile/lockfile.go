// Package lockfile tracks conversion state so unchanged source files can
// be skipped on subsequent runs.
package lockfile

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"
)

const (
	fileName       = ".transpiler.lock"
	currentVersion = 1
)

type LockFile struct {
	Version int               `json:"version"`
	Files   map[string]*Entry `json:"files"`
}

// Entry records one converted file: the hash of the source content at
// conversion time and where the output went.
type Entry struct {
	SourceHash  string    `json:"source_hash"`
	Output      string    `json:"output"`
	ConvertedAt time.Time `json:"converted_at"`
}

func New() *LockFile {
	return &LockFile{
		Version: currentVersion,
		Files:   map[string]*Entry{},
	}
}

// Load reads the lock file from dir. A missing file yields a fresh lock.
func Load(dir string) (*LockFile, error) {
	lockPath := filepath.Join(dir, fileName)
	data, err := os.ReadFile(lockPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}

		return nil, oops.
			Code("LOCK_ERROR").
			With("path", lockPath).
			Wrapf(err, "reading lock file")
	}

	lock := &LockFile{}
	if unmarshalErr := json.Unmarshal(data, lock); unmarshalErr != nil {
		return nil, oops.
			Code("LOCK_ERROR").
			With("path", lockPath).
			Hint("Delete the lock file and re-run to regenerate it").
			Wrapf(unmarshalErr, "parsing lock file")
	}

	if lock.Version == 0 {
		lock.Version = currentVersion
	}

	if lock.Files == nil {
		lock.Files = map[string]*Entry{}
	}

	return lock, nil
}

func (l *LockFile) Save(dir string) error {
	if l == nil {
		return oops.
			Code("LOCK_ERROR").
			Errorf("cannot save nil lock file")
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return oops.
			Code("LOCK_ERROR").
			Wrapf(err, "encoding lock file")
	}

	lockPath := filepath.Join(dir, fileName)
	if writeErr := os.WriteFile(lockPath, append(data, '\n'), 0o644); writeErr != nil {
		return oops.
			Code("LOCK_ERROR").
			With("path", lockPath).
			Wrapf(writeErr, "writing lock file")
	}

	return nil
}

func (l *LockFile) GetEntry(path string) *Entry {
	if l == nil || l.Files == nil {
		return nil
	}
	return l.Files[path]
}

func (l *LockFile) SetEntry(path string, entry *Entry) {
	if l.Files == nil {
		l.Files = map[string]*Entry{}
	}
	l.Files[path] = entry
}

// HashContent returns the hex-encoded SHA-256 of content.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
