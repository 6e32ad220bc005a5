package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Delimiter separates the three fields of a stored line.
const Delimiter = "|"

// Row is one persisted entry: a visited path, its accumulated rank, and
// the unix time the path was last visited.
type Row struct {
	Path string
	Rank float32
	Time uint64
}

// ParseRow decodes a single `path|rank|time` line. Extra trailing fields
// are ignored. A non-finite rank is an explicit failure, never clamped.
func ParseRow(line string) (Row, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 3 {
		return Row{}, fmt.Errorf("row needs a path, a rank and a time: %q", line)
	}

	rank, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		return Row{}, fmt.Errorf("parsing rank %q: %w", parts[1], err)
	}
	if math.IsInf(rank, 0) || math.IsNaN(rank) {
		return Row{}, fmt.Errorf("row contained non-finite rank: %v", rank)
	}

	when, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("parsing time %q: %w", parts[2], err)
	}

	return Row{Path: parts[0], Rank: float32(rank), Time: when}, nil
}

// EncodeRow renders a row as a store line. Callers must refuse paths for
// which Encodable is false; encoding them would corrupt the file.
func EncodeRow(r Row) string {
	return r.Path + Delimiter +
		strconv.FormatFloat(float64(r.Rank), 'f', -1, 32) + Delimiter +
		strconv.FormatUint(r.Time, 10)
}

// Encodable reports whether a path can round-trip through the line format.
func Encodable(path string) bool {
	return !strings.ContainsAny(path, Delimiter+"\n")
}
