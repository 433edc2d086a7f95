package compose

import (
	"fmt"
	"os"
	"runtime/debug"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/skeletool/compose/internal/update"
	"github.com/spf13/cobra"
)

func init() {
	var checkOnly bool
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update compose to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			if checkOnly {
				latest, newer, err := update.Check(version, false)
				if err != nil {
					return err
				}
				if newer && latest != "" {
					fmt.Fprintf(os.Stderr, "new version available: v%s\n", latest)
				} else {
					fmt.Fprintln(os.Stderr, "compose is up to date")
				}
				return nil
			}
			return selfUpdate()
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
	rootCmd.AddCommand(cmd)
}

func selfUpdate() error {
	v := version
	// Use build info if the tag was overridden at build time.
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "skeletool/compose")
	if err != nil {
		return fmt.Errorf("failed to self-update: %w", err)
	}
	fmt.Fprintf(os.Stderr, "updated to v%s\n", latest.Version)
	return nil
}
