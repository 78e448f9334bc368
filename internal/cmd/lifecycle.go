package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/engine"
	"github.com/cameronsjo/stevedore/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build <config>",
	Short: "Build an image for a config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEngine(); err != nil {
			return err
		}

		dep := newDeployment(args[0])
		res, err := composeAndWrite(dep)
		if err != nil {
			return err
		}

		if err := newEngine().Build(cmd.Context(), dep.Name, res.BaseImage, dep.ArtifactDir); err != nil {
			return err
		}

		ui.Success("built %s", engine.ImageTag(dep.Name))
		return nil
	},
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild <config>",
	Short: "Rebuild an image for a potentially running config",
	Long: `Rebuilds the image for a config. A running container is stopped
before the build and started again afterwards; a container that was
not running stays down.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEngine(); err != nil {
			return err
		}

		dep := newDeployment(args[0])
		res, err := composeAndWrite(dep)
		if err != nil {
			return err
		}

		eng := newEngine()
		ctx := cmd.Context()

		cid, err := eng.RunningContainer(ctx, dep.Name)
		if err != nil {
			return err
		}
		wasRunning := cid != ""

		if wasRunning {
			if err := eng.Stop(ctx, cid); err != nil {
				return err
			}
		}

		if err := eng.Build(ctx, dep.Name, res.BaseImage, dep.ArtifactDir); err != nil {
			return err
		}
		ui.Success("built %s", engine.ImageTag(dep.Name))

		// Only start again if the container was running before.
		if wasRunning {
			if err := eng.Start(ctx, dep.Name, res.RunArgs); err != nil {
				return err
			}
			ui.Success("restarted %s", dep.Name)
		}

		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start <config>",
	Short: "Start a container for an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEngine(); err != nil {
			return err
		}

		dep := newDeployment(args[0])
		res, err := composeAndWrite(dep)
		if err != nil {
			return err
		}

		if err := newEngine().Start(cmd.Context(), dep.Name, res.RunArgs); err != nil {
			return err
		}

		ui.Success("started %s", dep.Name)
		return nil
	},
}

var startCmdCmd = &cobra.Command{
	Use:   "start-cmd <config>",
	Short: "Print the start command for a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dep := newDeployment(args[0])
		res, err := composeAndWrite(dep)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), newEngine().StartCommand(dep.Name, res.RunArgs))
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop <config>",
	Short: "Stop a running container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEngine(); err != nil {
			return err
		}

		dep := newDeployment(args[0])
		if _, err := loadDocuments(dep); err != nil {
			return err
		}

		eng := newEngine()
		ctx := cmd.Context()

		cid, err := eng.RunningContainer(ctx, dep.Name)
		if err != nil {
			return err
		}
		if cid == "" {
			ui.Info("no running container named %s", dep.Name)
			return nil
		}

		if err := eng.Stop(ctx, cid); err != nil {
			return err
		}

		ui.Success("stopped %s", dep.Name)
		return nil
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart <config>",
	Short: "Restart a running container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEngine(); err != nil {
			return err
		}

		dep := newDeployment(args[0])
		if _, err := loadDocuments(dep); err != nil {
			return err
		}

		eng := newEngine()
		ctx := cmd.Context()

		cid, err := eng.RunningContainer(ctx, dep.Name)
		if err != nil {
			return err
		}
		if cid == "" {
			ui.Info("no running container named %s", dep.Name)
			return nil
		}

		if err := eng.Restart(ctx, cid); err != nil {
			return err
		}

		ui.Success("restarted %s", dep.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(startCmdCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(restartCmd)
}
