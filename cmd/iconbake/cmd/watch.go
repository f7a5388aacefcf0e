package cmd

import (
	"context"

	"github.com/netisu/iconbake"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newWatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <scene>",
		Short: "Render icons and render again whenever the scene or its meshes change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(v)
			return iconbake.Watch(cmd.Context(), args[0], logger, func(ctx context.Context) error {
				report, err := runScene(ctx, v, args[0], logger)
				if err != nil {
					return err
				}
				printReport(cmd.OutOrStdout(), report)
				return nil
			})
		},
	}
	addRenderFlags(cmd.Flags())
	return cmd
}
