package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/lazypower/hop/internal/config"
	"github.com/lazypower/hop/internal/scoring"
	"github.com/lazypower/hop/internal/store"
)

func searchAndPrint(cfg config.Config, args []string) error {
	list := flagList
	if len(args) == 0 {
		// no expression means nothing to disambiguate; show the table
		list = true
	}

	currentDir := ""
	if flagCurrentDir {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("finding current dir: %w", err)
		}
		currentDir = wd
	}

	matches, err := scoring.Search(cfg.OpenStore(), buildExpr(args, currentDir), scorerFromFlags())
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	if len(matches) == 0 {
		exitStatus = statusNoOutput
		return nil
	}

	if list {
		for _, m := range matches {
			fmt.Printf("%10.3f %s\n", m.Score, m.Path)
		}
		return nil
	}

	for i := len(matches) - 1; i >= 0; i-- {
		if !store.IsDir(matches[i].Path) {
			fmt.Fprintf(os.Stderr, "not a dir (run --clean to expunge): %s\n", matches[i].Path)
			continue
		}
		fmt.Println(matches[i].Path)
		exitStatus = statusDoCd
		return nil
	}

	exitStatus = statusNoOutput
	return nil
}

// buildExpr joins the expression terms with `.*` into one regex,
// optionally anchored under the (escaped) current directory.
func buildExpr(args []string, currentDir string) string {
	var expr strings.Builder
	if currentDir != "" {
		expr.WriteString(regexp.QuoteMeta(currentDir))
		expr.WriteByte('/')
	}
	for _, arg := range args {
		if expr.Len() > 0 {
			expr.WriteString(".*")
		}
		expr.WriteString(arg)
	}
	return expr.String()
}

func scorerFromFlags() scoring.Scorer {
	switch {
	case flagRank:
		return scoring.Scorer{Mode: scoring.Rank}
	case flagRecent:
		return scoring.Scorer{Mode: scoring.Recent, Now: unixTime()}
	default:
		return scoring.Scorer{Mode: scoring.Frecent, Now: unixTime()}
	}
}

func unixTime() uint64 {
	return uint64(time.Now().Unix())
}
