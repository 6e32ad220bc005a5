package scoring

import (
	"path/filepath"
	"strings"
)

// boostCommonPrefix multiplies the score of the row that is the shared
// ancestor directory of every match. If everything the user could have
// meant lives under one directory, and that directory is itself a match,
// it is almost certainly the one they want. The boost only lands on an
// existing match; it never fabricates a result.
func boostCommonPrefix(rows []ScoredRow) {
	prefix := commonPrefix(rows)
	if prefix == "" {
		return
	}
	for i := range rows {
		if rows[i].Path == prefix {
			rows[i].Score *= 100
			return
		}
	}
}

// commonPrefix walks the shortest candidate up its ancestry until it
// prefixes every match. Returns "" when there are fewer than two matches
// or the only shared ancestor is the filesystem root.
func commonPrefix(rows []ScoredRow) string {
	if len(rows) <= 1 {
		return ""
	}

	shortest := rows[0].Path
	for _, row := range rows[1:] {
		for !hasPathPrefix(row.Path, shortest) {
			shortest = filepath.Dir(shortest)
			if shortest == "/" || shortest == "." {
				return ""
			}
		}
	}
	return shortest
}

// hasPathPrefix reports whether path equals prefix or is a descendant of
// it, on whole components: /home/al does not prefix /home/alex.
func hasPathPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}
