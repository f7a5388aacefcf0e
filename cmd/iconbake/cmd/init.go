package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/netisu/iconbake"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Write a scene file that targets every mesh file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			path := filepath.Join(dir, v.GetString("output"))
			if _, err := os.Stat(path); err == nil && !v.GetBool("force") {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			}
			sf, err := iconbake.ScanMeshes(dir)
			if err != nil {
				return err
			}
			if len(sf.Objects) == 0 {
				return fmt.Errorf("no mesh files (%v) in %s", iconbake.MeshExtensions, dir)
			}
			if err := iconbake.WriteSceneFile(path, sf); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s with %d objects\n", path, len(sf.Objects))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "scene.toml", "scene file name, .toml or .yaml")
	cmd.Flags().Bool("force", false, "overwrite an existing scene file")
	return cmd
}
