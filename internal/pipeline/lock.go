package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another srtgap process holds a file.
var ErrLocked = errors.New("file is locked by another process")

// fileLock serializes rewrites of one subtitle file across processes. The
// lock file lives in the temp directory, keyed by the absolute path.
type fileLock struct {
	lock *flock.Flock
}

// LockPath returns the lock file guarding rewrites of path.
func LockPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(
		os.TempDir(),
		"srtgap-"+hex.EncodeToString(sum[:8])+".lock",
	), nil
}

func lockFile(path string) (*fileLock, error) {
	lockPath, err := LockPath(path)
	if err != nil {
		return nil, err
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &fileLock{lock: lock}, nil
}

// release unlocks and leaves the lock file in place. Unlinking it would let
// two processes hold locks on different inodes for the same path.
func (l *fileLock) release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
