package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data"))
}

func seed(t *testing.T, s *Store, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.Path, []byte(content), 0o644); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
}

func TestUpdateNoop(t *testing.T) {
	s := testStore(t)
	seed(t, s, "/home/faux|2|100", "/home/john|3|200")

	err := s.Update(func(table []Row) ([]Row, error) {
		return table, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
}

func TestUpdateDropsBelowRetentionFloor(t *testing.T) {
	s := testStore(t)
	seed(t, s, "/fading|0.5|100", "/exactly|0.98|200", "/healthy|5|300")

	err := s.Update(func(table []Row) ([]Row, error) {
		return table, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	paths := make(map[string]bool)
	for _, row := range rows {
		paths[row.Path] = true
	}
	if paths["/fading"] {
		t.Error("/fading should have been dropped below the floor")
	}
	if !paths["/exactly"] {
		t.Error("/exactly sits on the floor and should survive")
	}
	if !paths["/healthy"] {
		t.Error("/healthy should survive")
	}
}

func TestUpdateDropsUnencodablePaths(t *testing.T) {
	s := testStore(t)

	err := s.Update(func(table []Row) ([]Row, error) {
		return append(table,
			Row{Path: "/fine", Rank: 1, Time: 1},
			Row{Path: "/bad|pipe", Rank: 1, Time: 1},
			Row{Path: "/bad\nline", Rank: 1, Time: 1},
		), nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 || rows[0].Path != "/fine" {
		t.Errorf("rows = %+v, want only /fine", rows)
	}
}

func TestFailedMutationLeavesStoreUntouched(t *testing.T) {
	s := testStore(t)
	seed(t, s, "/home/faux|2|100")
	before, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("reading store: %v", err)
	}

	boom := errors.New("boom")
	err = s.Update(func(table []Row) ([]Row, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want wrapped boom", err)
	}

	after, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("reading store: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("store changed despite failed mutation:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestUpdateLeavesNoTempFiles(t *testing.T) {
	s := testStore(t)

	if err := s.AddVisit("/a", 100); err != nil {
		t.Fatalf("AddVisit: %v", err)
	}
	err := s.Update(func(table []Row) ([]Row, error) {
		return nil, errors.New("boom")
	})
	if err == nil {
		t.Fatal("Update should have failed")
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != filepath.Base(s.Path) {
			t.Errorf("leftover file in store dir: %s", e.Name())
		}
	}
}

func TestAbandonedTempFileIgnored(t *testing.T) {
	// a process killed between temp-file write and rename just leaves
	// the temp file behind; the store itself must be unaffected
	s := testStore(t)
	seed(t, s, "/home/faux|2|100")
	stray := filepath.Join(filepath.Dir(s.Path), ".hop-stray")
	if err := os.WriteFile(stray, []byte("/partial|1"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := s.AddVisit("/home/faux", 200); err != nil {
		t.Fatalf("AddVisit: %v", err)
	}

	rows, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 || rows[0].Rank != 3 {
		t.Errorf("rows = %+v, want /home/faux at rank 3", rows)
	}
}

func TestConcurrentAddsSerialize(t *testing.T) {
	s := testStore(t)

	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// each writer opens and locks its own handle, as separate
			// process invocations would
			errs <- New(s.Path).AddVisit("/a", 100)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("AddVisit: %v", err)
		}
	}

	rows, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want exactly one entry for /a", len(rows))
	}
	if rows[0].Rank != writers {
		t.Errorf("Rank = %v, want %d", rows[0].Rank, writers)
	}
}
