package cmd

import (
	"github.com/spf13/cobra"
)

var enterCmd = &cobra.Command{
	Use:   "enter <config>",
	Short: "Enter a running container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEngine(); err != nil {
			return err
		}

		dep := newDeployment(args[0])
		if _, err := loadDocuments(dep); err != nil {
			return err
		}

		return newEngine().Enter(cmd.Context(), dep.Name)
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs <config>",
	Short: "Show logs for a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEngine(); err != nil {
			return err
		}

		dep := newDeployment(args[0])
		if _, err := loadDocuments(dep); err != nil {
			return err
		}

		return newEngine().Logs(cmd.Context(), dep.Name)
	},
}

func init() {
	rootCmd.AddCommand(enterCmd)
	rootCmd.AddCommand(logsCmd)
}
