package store

import "os"

// AddVisit records a visit: an existing row for path gains a point of
// rank and a fresh timestamp, an unknown path is appended at rank 1.
// When the table's total rank mass crosses the decay threshold, every
// rank is scaled by the aging factor exactly once, so heavy hitters age
// relative to new arrivals instead of accumulating forever.
func (s *Store) AddVisit(path string, now uint64) error {
	return s.Update(func(table []Row) ([]Row, error) {
		return addVisit(table, path, now, s.DecayThreshold), nil
	})
}

func addVisit(table []Row, path string, now uint64, ceiling float32) []Row {
	found := false
	for i := range table {
		if table[i].Path == path {
			table[i].Rank++
			table[i].Time = now
			found = true
			break
		}
	}
	if !found {
		table = append(table, Row{Path: path, Rank: 1, Time: now})
	}

	if totalRank(table) > ceiling {
		for i := range table {
			table[i].Rank *= agingFactor
		}
	}
	return table
}

func totalRank(table []Row) float32 {
	var sum float32
	for _, row := range table {
		sum += row.Rank
	}
	return sum
}

// Clean drops every row whose path no longer resolves to a directory and
// reports how many were removed. Running it again without filesystem
// changes removes nothing.
func (s *Store) Clean() (int, error) {
	removed := 0
	err := s.Update(func(table []Row) ([]Row, error) {
		kept := table[:0]
		for _, row := range table {
			if IsDir(row.Path) {
				kept = append(kept, row)
			} else {
				removed++
			}
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// IsDir reports whether path currently resolves to a directory.
func IsDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
