// Package store persists the visited-directory table as a pipe-delimited
// text file, one `path|rank|time` row per line.
//
// The file is the only shared mutable resource in the system; concurrent
// invocations coordinate through an exclusive advisory lock on it, and
// every rewrite goes through a temp-file-and-rename so readers never see
// a half-written table.
package store

const (
	// DefaultDecayThreshold is the total rank mass above which an update
	// scales every rank by the aging factor, keeping the table bounded so
	// old paths fade relative to new ones.
	DefaultDecayThreshold = 9000

	// DefaultRetentionFloor is the rank below which a row is dropped on
	// write-back. Fires on every rewrite, continuously collecting entries
	// that have decayed to irrelevance.
	DefaultRetentionFloor = 0.98

	agingFactor = 0.99
)

// Store is a handle to one on-disk table. It holds no file open between
// operations; each load or update opens, optionally locks, and closes
// within its own call.
type Store struct {
	Path           string
	DecayThreshold float32
	RetentionFloor float32
}

// New returns a handle on the table at path with the stock thresholds.
func New(path string) *Store {
	return &Store{
		Path:           path,
		DecayThreshold: DefaultDecayThreshold,
		RetentionFloor: DefaultRetentionFloor,
	}
}
