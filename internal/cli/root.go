// Package cli wires configuration, logging and the render pipeline into the
// brandqr command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "brandqr",
		Short:        "brandqr renders gradient QR codes with brand logos",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", envOr("BRANDQR_CONFIG", "brandqr.yaml"), "path to the YAML config file (missing file means defaults)")

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(renderCmd(&configPath))
	cmd.AddCommand(palettesCmd(&configPath))
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
