package main

import (
	"fmt"
	"os"

	"github.com/lazypower/hop/internal/cli"
)

func main() {
	code, err := cli.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hop: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}
