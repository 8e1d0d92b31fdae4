// Package runlock guards an output directory against concurrent batch runs.
// Two processes interleaving writes to the same variant files would corrupt
// the freshness bookkeeping, so each run holds a flock on a lock file inside
// the output directory for its whole duration.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created inside the output directory.
const LockFileName = ".srcsetgen.lock"

// Lock is a held output-directory lock.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes a non-blocking exclusive lock for outputDir. It fails
// immediately when another run already holds it.
func Acquire(outputDir string) (*Lock, error) {
	fl := flock.New(filepath.Join(outputDir, LockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("another run is already writing to %s", outputDir)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. The lock file itself is left behind; only the
// flock matters.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
