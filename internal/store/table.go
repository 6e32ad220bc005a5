package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Parse reads a store stream line by line, decoding each row. Lines that
// fail to decode are reported on stderr and skipped: the store is
// user-editable and can be truncated by a crash, so one bad line must
// never poison the rest of the table.
func Parse(r io.Reader) ([]Row, error) {
	rows := make([]Row, 0, 500)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row, err := ParseRow(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "couldn't parse %q: %v\n", scanner.Text(), err)
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}
	return rows, nil
}

// Load opens the store, creating an empty one if absent so a first run is
// not an error, and parses the whole table. Directory existence is not
// checked here; stale entries are the cleaner's business.
func (s *Store) Load() ([]Row, error) {
	f, err := openStore(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func openStore(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", path, err)
	}
	return f, nil
}
