package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var helperScript []byte

// SetScript installs the embedded shell integration script. Called from
// package main, which owns the go:embed.
func SetScript(data []byte) {
	helperScript = data
}

// addToProfile writes the helper script to ~/.local/share/hop and appends
// a source line to the usual shell rc files. A rc file that can't be
// appended to is a warning, not a failure.
func addToProfile() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}

	dir := filepath.Join(home, ".local", "share", "hop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	script := filepath.Join(dir, "hop.sh")
	if err := os.WriteFile(script, helperScript, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", script, err)
	}
	fmt.Printf("written helper script to %s\n", script)

	if strings.ContainsRune(script, '\'') {
		return fmt.Errorf("cowardly refusing to source a path containing single quotes: %s", script)
	}
	source := fmt.Sprintf("\n\n. '%s'\n", script)

	for _, rc := range []string{".zshrc", ".bashrc"} {
		rcPath := filepath.Join(home, rc)
		f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "couldn't append to %s: %v\n", rcPath, err)
			continue
		}
		_, werr := f.WriteString(source)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			fmt.Fprintf(os.Stderr, "couldn't append to %s: %v\n", rcPath, werr)
			continue
		}
		fmt.Printf("appended '. .../hop.sh' to %s\n", rcPath)
	}

	return nil
}
