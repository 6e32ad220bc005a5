package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lazypower/hop/internal/config"
	"github.com/lazypower/hop/internal/scoring"
)

// complete prints frecent matches for a partially typed command line,
// best first, for the shell's tab completion. The configured command name
// is stripped from the front of the line before matching.
func complete(cfg config.Config, line string) error {
	if strings.HasPrefix(line, cfg.Shell.Command) {
		line = strings.TrimLeft(line[len(cfg.Shell.Command):], " \t")
	}

	scorer := scoring.Scorer{Mode: scoring.Frecent, Now: unixTime()}
	matches, err := scoring.Search(cfg.OpenStore(), regexp.QuoteMeta(line), scorer)
	if err != nil {
		return fmt.Errorf("searching for completions: %w", err)
	}

	for i := len(matches) - 1; i >= 0; i-- {
		fmt.Println(matches[i].Path)
	}
	return nil
}
