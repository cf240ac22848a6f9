package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/imgbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an image from a base image, a source directory and packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			source, _ := cmd.Flags().GetString("source")
			image, _ := cmd.Flags().GetString("image")
			packages, _ := cmd.Flags().GetString("packages")
			verbose, _ := cmd.Flags().GetBool("verbose")
			jsonOut, _ := cmd.Flags().GetBool("json")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				ManifestPath: manifest,
				SourceDir:    source,
				ImageID:      image,
				Packages:     packages,
				Verbose:      verbose,
				JSON:         jsonOut,
			})
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Image manifest (JSON)")
	cmd.Flags().StringP("source", "s", "", "Directory copied into the image root")
	cmd.Flags().StringP("image", "i", "", "UUID of the base image")
	cmd.Flags().StringP("packages", "p", "", "Comma separated packages to install")
	cmd.Flags().BoolP("verbose", "v", false, "Log every step and installed package")
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	_ = cmd.MarkFlagRequired("manifest")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}
