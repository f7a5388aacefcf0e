package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/netisu/iconbake"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render icons for every mesh in the Target collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runScene(cmd.Context(), v, args[0], newLogger(v))
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	addRenderFlags(cmd.Flags())
	return cmd
}

func runScene(ctx context.Context, v *viper.Viper, path string, logger *slog.Logger) (*iconbake.Report, error) {
	scene, err := loadScene(v, path)
	if err != nil {
		return nil, err
	}
	return iconbake.NewGenerator(scene, logger).Run(ctx)
}

func printReport(w io.Writer, r *iconbake.Report) {
	out := termenv.NewOutput(w)
	if !r.TargetFound {
		fmt.Fprintln(w, out.String(fmt.Sprintf("collection %q does not exist, nothing rendered", iconbake.TargetCollection)).
			Foreground(out.Color("3")))
		return
	}
	check := out.String("✓").Foreground(out.Color("2")).Bold()
	for _, name := range r.Objects {
		fmt.Fprintf(w, "%s %s\n", check, name)
	}
	if len(r.LightsCreated) == 0 {
		fmt.Fprintln(w, out.String("existing lights kept").Faint())
	}
	fmt.Fprintf(w, "%d icons written to %s\n", len(r.Files), r.IconsDir)
}
