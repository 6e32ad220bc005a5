package scoring

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/lazypower/hop/internal/store"
)

// Search loads the store and returns every row whose path matches expr,
// scored and sorted ascending, best match last. Matching is
// case-sensitive first; if nothing matches, the same expression is
// retried case-insensitively, since directory names keep their natural
// case but queries are usually typed lazily in lowercase.
//
// Search never mutates the store and takes no lock; it may observe the
// table from just before or just after a concurrent update, but never a
// torn one.
func Search(st *store.Store, expr string, scorer Scorer) ([]ScoredRow, error) {
	table, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("loading: %w", err)
	}

	sensitive, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing regex %q: %w", expr, err)
	}

	matches := filter(table, sensitive)
	if len(matches) == 0 {
		insensitive, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("parsing regex %q: %w", expr, err)
		}
		matches = filter(table, insensitive)
	}

	scored := make([]ScoredRow, 0, len(matches))
	for _, row := range matches {
		sr, err := scorer.Score(row)
		if err != nil {
			return nil, err
		}
		scored = append(scored, sr)
	}

	boostCommonPrefix(scored)

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})

	return scored, nil
}

func filter(table []store.Row, re *regexp.Regexp) []store.Row {
	var matches []store.Row
	for _, row := range table {
		if re.MatchString(row.Path) {
			matches = append(matches, row)
		}
	}
	return matches
}
