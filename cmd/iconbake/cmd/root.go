// Package cmd implements the iconbake command line.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "iconbake",
		Short: "Render icon sets for the meshes of a scene",
		Long: `iconbake normalizes every mesh in a scene's "Target" collection, builds a
camera and 3-point lighting rig in a "Setup" collection and renders each
mesh into Icons/<name>/<resolution>.png beside the scene file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cmd)
		},
	}
	root.PersistentFlags().String("config", "", "config file (default ./iconbake.toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	root.PersistentFlags().String("log-format", "text", "log format: text or json")

	root.AddCommand(newRenderCmd(v), newWatchCmd(v), newInitCmd(v))
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
