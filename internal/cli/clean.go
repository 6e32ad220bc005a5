package cli

import (
	"fmt"

	"github.com/lazypower/hop/internal/config"
)

func clean(cfg config.Config) error {
	removed, err := cfg.OpenStore().Clean()
	if err != nil {
		return fmt.Errorf("cleaning store: %w", err)
	}

	noun := "entries"
	if removed == 1 {
		noun = "entry"
	}
	fmt.Printf("Cleaned %d %s.\n", removed, noun)
	return nil
}
