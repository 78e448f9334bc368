package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/preflight"
	"github.com/cameronsjo/stevedore/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required binaries are available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		warnings, errors := preflight.CheckAll()

		for _, w := range warnings {
			ui.Warning("%s", w)
		}
		for _, e := range errors {
			ui.Error("%s", e)
		}

		if len(errors) > 0 {
			return fmt.Errorf("missing required binaries")
		}

		ui.Success("all required binaries available")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
