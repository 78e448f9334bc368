package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/repo"
	"github.com/cameronsjo/stevedore/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fast-forward template checkouts",
	Long: `Pulls the latest templates for every --template-root that is a git
checkout. Roots that are plain directories are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, root := range templateRoots {
			status, err := repo.Sync(cmd.Context(), root)
			if err != nil {
				return err
			}

			switch status {
			case repo.StatusNotRepo:
				ui.Info("%s: not a git checkout, skipped", root)
			case repo.StatusUpToDate:
				ui.Info("%s: already up to date", root)
			case repo.StatusUpdated:
				ui.Success("%s: updated", root)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
