package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/ui"
	"github.com/cameronsjo/stevedore/internal/update"
)

var updateCheckOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update stevedore to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if updateCheckOnly {
			release, found, err := update.CheckForUpdate(ctx, version)
			if err != nil {
				return err
			}
			if !found {
				ui.Success("stevedore %s is up to date (%s)", version, update.PlatformInfo())
				return nil
			}
			ui.Info("new version available: %s (released %s)", release.Version, release.PublishedAt)
			ui.Info("%s", release.ReleaseURL)
			return nil
		}

		release, err := update.Apply(ctx, version)
		if err != nil {
			return err
		}
		if release == nil {
			ui.Success("stevedore %s is up to date (%s)", version, update.PlatformInfo())
			return nil
		}

		ui.Success("updated to %s", release.Version)
		ui.Info("%s", release.ReleaseURL)
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Only check for a newer release")
	rootCmd.AddCommand(updateCmd)
}
