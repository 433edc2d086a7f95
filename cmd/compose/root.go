package compose

import (
	"fmt"
	"os"

	"github.com/skeletool/compose/internal/engine"
	"github.com/skeletool/compose/internal/report"
	"github.com/skeletool/compose/internal/update"
	"github.com/spf13/cobra"
)

var (
	flagInPath        string
	flagOutPath       string
	flagNoProcess     bool
	flagSpare         []string
	flagAddTools      []string
	flagVerbose       bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the compose CLI. The tool is a
// single-purpose composer, so the root command does the work itself.
var rootCmd = &cobra.Command{
	Use:           "compose",
	Short:         "Compose a public skeleton from a private source tree",
	Long:          "Compose mirrors the entries declared in .compose.yml into the output tree, hides or replaces regions marked private, prunes stale output entries and writes the workspace manifest.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompose,
}

// Execute runs the compose CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagInPath, "in-path", "i", "", "path to the private repo")
	rootCmd.Flags().StringVarP(&flagOutPath, "out-path", "o", "", "path to the public repo")
	rootCmd.Flags().BoolVar(&flagNoProcess, "no-process", false, "disable file processing")
	rootCmd.Flags().StringArrayVarP(&flagSpare, "spare", "s", nil, "spare given directories from pruning")
	rootCmd.Flags().StringArrayVarP(&flagAddTools, "add-tool", "t", nil, "add given tools to Cargo.toml")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print a run summary to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	_ = rootCmd.MarkFlagRequired("in-path")
	_ = rootCmd.MarkFlagRequired("out-path")
}

func runCompose(_ *cobra.Command, _ []string) error {
	if !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'compose update' to upgrade\n", latest)
		}
	}

	stats, err := engine.Run(engine.Config{
		InPath:    flagInPath,
		OutPath:   flagOutPath,
		NoProcess: flagNoProcess,
		Spare:     flagSpare,
		AddTools:  flagAddTools,
	})
	if err != nil {
		return err
	}

	if flagVerbose {
		report.Print(os.Stderr, report.Options{
			FilesRedacted: stats.FilesRedacted,
			FilesCopied:   stats.FilesCopied,
			EntriesPruned: stats.EntriesPruned,
			Duration:      stats.Duration,
		})
	}
	return nil
}
