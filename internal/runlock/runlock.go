// Package runlock keeps two jellyname processes from renaming the same
// directory tree at the same time.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"jellyname/internal/textutil"
)

// ErrLocked is returned when another process holds the lock for a root.
var ErrLocked = errors.New("another jellyname run is already processing this directory")

// Lock is an advisory file lock scoped to one root directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for root under stateDir.
func PathFor(stateDir, root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}
	sum := sha256.Sum256([]byte(abs))
	name := textutil.SanitizeToken(filepath.Base(abs)) + "-" + hex.EncodeToString(sum[:6]) + ".lock"
	return filepath.Join(stateDir, "locks", name), nil
}

// Acquire takes the lock for root without blocking.
func Acquire(stateDir, root string) (*Lock, error) {
	path, err := PathFor(stateDir, root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks the file. The file itself is left in place; removing it
// would let a waiting process lock an unlinked inode.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
