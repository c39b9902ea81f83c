package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	previewOutput string
	previewPage   int
	previewScale  float64
)

var previewCmd = &cobra.Command{
	Use:   "preview [patients|tests|detail] [id]",
	Short: "Render one page of a report as PNG",
	Long: `Lays out a report and rasterises one page to PNG without writing the PDF.

Example:
  labreport preview tests --page 2 -o pruebas.png
  labreport preview detail 42 --scale 4`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "preview.png", "Output PNG file")
	previewCmd.Flags().IntVar(&previewPage, "page", 1, "Page number (1-based)")
	previewCmd.Flags().Float64Var(&previewScale, "scale", 0, "Pixels per mm (default from config)")
	previewCmd.Flags().StringVarP(&generateSearch, "search", "s", "", "Only include matching records (listings)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	src, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	g, _, err := generator(src, args)
	if err != nil {
		return err
	}

	scale := previewScale
	if scale <= 0 {
		scale = cfg.Report.PreviewScale
	}

	f, err := os.Create(previewOutput)
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}
	if err := g.Preview(ctx, f, previewPage, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("preview written", zap.String("path", previewOutput), zap.Int("page", previewPage))
	fmt.Fprintln(cmd.OutOrStdout(), previewOutput)
	return nil
}
