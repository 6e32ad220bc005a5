// Package scoring ranks stored rows against a search expression.
//
// Three scorers are available: pure rank, pure recency, and the default
// "frecent" hybrid that steps the rank up or down by the age of the last
// visit. Scores are plain comparable floats; anything non-finite reaching
// the sort would make the ordering undefined, so it aborts the operation
// instead.
package scoring

import (
	"fmt"
	"math"

	"github.com/lazypower/hop/internal/store"
)

// ScoredRow pairs a matched path with its score. Never persisted.
type ScoredRow struct {
	Path  string
	Score float64
}

// Mode selects how a row is scored.
type Mode int

const (
	// Frecent blends rank and age through a step function; the default.
	Frecent Mode = iota
	// Rank scores by accumulated rank alone, ignoring time.
	Rank
	// Recent scores by age alone; fresher is larger (less negative).
	Recent
)

// Scorer ranks rows against a fixed "now", captured once per search so
// relative ordering between rows is stable within one call.
type Scorer struct {
	Mode Mode
	Now  uint64
}

// Score computes the row's score under the scorer's mode. A non-finite
// result means the table is corrupt; it is returned as an error, never
// coerced.
func (s Scorer) Score(row store.Row) (ScoredRow, error) {
	var score float64
	switch s.Mode {
	case Rank:
		score = float64(row.Rank)
	case Recent:
		score = -float64(age(s.Now, row.Time))
	default:
		score = frecent(float64(row.Rank), age(s.Now, row.Time))
	}

	if math.IsInf(score, 0) || math.IsNaN(score) {
		return ScoredRow{}, fmt.Errorf("computed non-finite score for %s (rank %v, time %d)",
			row.Path, row.Rank, row.Time)
	}
	return ScoredRow{Path: row.Path, Score: score}, nil
}

const (
	hour = 3600
	day  = 24 * hour
	week = 7 * day
)

// frecent relates rank and age: visits within the hour quadruple the
// rank, within the day double it, within the week halve it, older ones
// quarter it. A step function, trading smoothness for predictability.
func frecent(rank float64, dx uint64) float64 {
	switch {
	case dx < hour:
		return rank * 4
	case dx < day:
		return rank * 2
	case dx < week:
		return rank / 2
	default:
		return rank / 4
	}
}

// age floors at zero so a timestamp from the future never yields a
// negative age.
func age(now, then uint64) uint64 {
	if then > now {
		return 0
	}
	return now - then
}
