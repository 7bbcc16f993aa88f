package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/brandqr/internal/config"
	"github.com/cristianadrielbraun/brandqr/internal/render"
)

func renderCmd(configPath *string) *cobra.Command {
	var text string
	var paletteName string
	var out string

	c := &cobra.Command{
		Use:   "render",
		Short: "Render one QR code to a PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := cliLogger(cmd)

			pipeline, _, err := buildPipeline(cfg, logger)
			if err != nil {
				return err
			}

			res, err := pipeline.Generate(cmd.Context(), render.Request{Text: text, Palette: paletteName})
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := res.WritePNG(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}

			b := res.Image.Bounds()
			notes := []string{"palette " + res.Palette.Name}
			if res.Locked {
				notes = append(notes, "monochrome brand")
			}
			if res.HasLogo {
				notes = append(notes, "logo "+res.Label)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %s)\n", out, b.Dx(), b.Dy(), strings.Join(notes, ", "))
			return nil
		},
	}

	c.Flags().StringVarP(&text, "text", "t", "", "Text or URL to encode (required)")
	c.Flags().StringVarP(&paletteName, "palette", "p", "", "Palette name (defaults to the first configured palette)")
	c.Flags().StringVarP(&out, "out", "o", "qr_code.png", "Output PNG path")

	_ = c.MarkFlagRequired("text")
	return c
}

func palettesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List configured palettes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			cat, err := cfg.Catalog()
			if err != nil {
				return err
			}
			for _, p := range cat.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", p.Name, strings.Join(p.Hex(), " "))
			}
			return nil
		},
	}
}

// cliLogger keeps one-shot commands quiet unless something is wrong.
func cliLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
}
