package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Update reloads the table under an exclusive lock, applies a mutation,
// and commits the result atomically. The table is parsed from the locked
// handle rather than any earlier snapshot, since another updater may have
// committed between this process starting and the lock being granted.
// On any failure the original store file is left untouched.
func (s *Store) Update(apply func(table []Row) ([]Row, error)) error {
	f, err := openStore(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return err
	}
	// The lock outlives the rename: no other writer can interleave
	// between this load and the commit.
	defer unlock(f)

	table, err := Parse(f)
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	table, err = apply(table)
	if err != nil {
		return fmt.Errorf("processing: %w", err)
	}

	return s.commit(table)
}

// commit writes the table to a temporary file in the store's own
// directory and renames it over the store. Same-directory placement keeps
// the rename on one filesystem, so replacement is atomic and a crash at
// any point leaves the previous store intact. Rows below the retention
// floor, and rows whose path cannot survive the line format, are dropped
// rather than written.
func (s *Store) commit(table []Row) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".hop-")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, row := range table {
		if row.Rank < s.RetentionFloor {
			continue
		}
		if !Encodable(row.Path) {
			continue
		}
		if _, err := fmt.Fprintln(w, EncodeRow(row)); err != nil {
			return fmt.Errorf("writing temporary file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	preserveOwner(s.Path, tmp.Name())

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.Path, err)
	}
	committed = true
	return nil
}
