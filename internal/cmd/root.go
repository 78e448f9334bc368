// Package cmd provides the CLI commands for stevedore.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/config"
)

const version = "0.1.0"

// templateRoots is the ordered template search path, set by the
// persistent --template-root flag.
var templateRoots []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stevedore",
	Short: "Compose and run layered Discourse containers",
	Long: `stevedore - layered container composition

Assembles a container image and run configuration from an ordered set
of YAML templates plus a per-deployment config file, then drives the
docker CLI to build and manage the resulting container.

LIFECYCLE
  build <config>        Build an image for a config
  rebuild <config>      Rebuild, restarting the container if it was running
  start <config>        Start a container for an image
  stop <config>         Stop a running container
  restart <config>      Restart a running container
  start-cmd <config>    Print the docker run invocation without executing it

CONTAINER
  enter <config>        Open a login shell inside the running container
  logs <config>         Show container logs

MAINTENANCE
  sync                  Fast-forward template checkouts (git pull)
  doctor                Check that required binaries are available
  update                Update stevedore to the latest release

Templates are resolved against each --template-root in order; the
config file itself always merges last with the highest precedence.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&templateRoots, "template-root", config.DefaultTemplateRoots,
		"Root directories for templates (can be given multiple times)")

	rootCmd.SetVersionTemplate("stevedore version {{.Version}}\n")
}
