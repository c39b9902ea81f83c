package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/labreport/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.pdf]",
	Short: "Print the pages and text of a generated report",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	doc, err := inspect.Parse(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pages: %d\n", len(doc.Pages))
	for _, page := range doc.Pages {
		fmt.Fprintf(out, "\n--- Page %d (%.0fx%.0f mm, %d text runs, %d boxes) ---\n",
			page.Number, page.Width, page.Height, len(page.Texts), len(page.Rects))
		fmt.Fprint(out, page.Text())
	}
	return nil
}
