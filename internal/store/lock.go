//go:build !windows

package store

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// lockExclusive takes a blocking exclusive advisory lock on f. Updates
// serialize behind it; searches never lock, so a reader can observe a
// slightly stale table but a writer can never race another writer.
func lockExclusive(f *os.File) error {
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("locking %s: %w", f.Name(), err)
	}
	return nil
}

func unlock(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

// preserveOwner copies uid/gid from the store being replaced onto its
// replacement. Best effort: ownership is cosmetic, mode comes from the
// umask, and a failure here must not fail the commit.
func preserveOwner(from, to string) {
	var st unix.Stat_t
	if err := unix.Stat(from, &st); err != nil {
		return
	}
	_ = unix.Chown(to, int(st.Uid), int(st.Gid))
}
