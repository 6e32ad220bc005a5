package main

import (
	_ "embed"

	"github.com/lazypower/hop/internal/cli"
)

//go:embed hop.sh
var helperScript []byte

func init() {
	cli.SetScript(helperScript)
}
