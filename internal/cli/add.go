package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/lazypower/hop/internal/config"
)

// addDetached re-execs this binary to run the store update in a child the
// shell never waits on. The prompt hook fires on every cd, so it must
// return before the store lock is even considered.
func addDetached(path string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating own binary: %w", err)
	}

	child := exec.Command(exe, "--add-blocking", path)
	child.Dir = "/"
	if err := child.Start(); err != nil {
		return fmt.Errorf("spawning add worker: %w", err)
	}
	// not waited on; the child outlives us
	if err := child.Process.Release(); err != nil {
		return fmt.Errorf("detaching add worker: %w", err)
	}
	return nil
}

func addBlocking(cfg config.Config, path string) error {
	if err := cfg.OpenStore().AddVisit(path, unixTime()); err != nil {
		return fmt.Errorf("adding to store: %w", err)
	}
	return nil
}
