package cli

import (
	"github.com/spf13/cobra"

	"github.com/lazypower/hop/internal/config"
)

// Exit statuses the shell wrapper keys off.
const (
	statusSuccess = 0
	// statusDoCd: a single path was printed; the wrapper should cd to it.
	statusDoCd = 69
	// statusNoOutput: nothing matched, nothing printed.
	statusNoOutput = 70
)

var (
	flagRank       bool
	flagRecent     bool
	flagFrecent    bool
	flagList       bool
	flagCurrentDir bool
	flagClean      bool
	flagProfile    bool
	flagAdd        string
	flagAddBlock   string
	flagComplete   string
)

var exitStatus = statusSuccess

var rootCmd = &cobra.Command{
	Use:   "hop [flags] [EXPRESSION...]",
	Short: "Jump to a frecently used directory",
	Long: "Hop keeps a ranked, time-decayed history of the directories you visit\n" +
		"and finds the one that best matches a fragment of a path. Pair it with\n" +
		"the shell integration (--add-to-profile) to make the match an actual cd.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the CLI and returns the process exit status.
func Execute() (int, error) {
	if err := rootCmd.Execute(); err != nil {
		return 1, err
	}
	return exitStatus, nil
}

func init() {
	rootCmd.Flags().BoolVarP(&flagFrecent, "frecent", "f", false, "sort by a hybrid of rank and age (default)")
	rootCmd.Flags().BoolVarP(&flagRank, "rank", "r", false, "sort by rank alone, ignoring age")
	rootCmd.Flags().BoolVarP(&flagRecent, "recent", "t", false, "sort by age alone, ignoring rank")
	rootCmd.MarkFlagsMutuallyExclusive("frecent", "rank", "recent")

	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "show every matching entry")
	rootCmd.Flags().BoolVarP(&flagCurrentDir, "current-dir", "c", false, "only match under the current directory")
	rootCmd.Flags().BoolVar(&flagClean, "clean", false, "drop entries which are no longer directories")

	// Plumbing for the shell wrapper; hidden from --help.
	rootCmd.Flags().StringVar(&flagAdd, "add", "", "record a visit to `PATH` without blocking")
	rootCmd.Flags().StringVar(&flagAddBlock, "add-blocking", "", "record a visit to `PATH` in-process")
	rootCmd.Flags().StringVar(&flagComplete, "complete", "", "print completions for a partial command `LINE`")
	rootCmd.Flags().BoolVar(&flagProfile, "add-to-profile", false, "install the shell integration script")
	for _, name := range []string{"add", "add-blocking", "complete", "add-to-profile"} {
		_ = rootCmd.Flags().MarkHidden(name)
	}

	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch {
	case flagAdd != "":
		return addDetached(flagAdd)
	case flagAddBlock != "":
		return addBlocking(cfg, flagAddBlock)
	case flagComplete != "":
		return complete(cfg, flagComplete)
	case flagClean:
		return clean(cfg)
	case flagProfile:
		return addToProfile()
	}

	return searchAndPrint(cfg, args)
}
