package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/labreport"
	"github.com/tsawler/labreport/model"
	"github.com/tsawler/labreport/report"
	"github.com/tsawler/labreport/server"
	"github.com/tsawler/labreport/source"
)

var (
	generateOutput string
	generateSearch string
)

var generateCmd = &cobra.Command{
	Use:   "generate [patients|tests|detail] [id]",
	Short: "Generate a report to a file",
	Long: `Generates one report from the configured database.

The detail report needs the patient test id. Without --output the file is named the way
the download server names it.

Example:
  labreport generate patients
  labreport generate tests --search Glucosa -o pruebas.pdf
  labreport generate detail 42`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file")
	generateCmd.Flags().StringVarP(&generateSearch, "search", "s", "", "Only include matching records (listings)")
}

// generator builds the Generator selected by args.
func generator(src source.Source, args []string) (*labreport.Generator, report.Kind, error) {
	kind, err := report.ParseKind(args[0])
	if err != nil {
		return nil, kind, err
	}

	g := labreport.From(src).Kind(kind).Logger(logger)
	if cfg.Report.Compress {
		g = g.Compress()
	}

	if kind != report.KindTestDetail {
		if len(args) > 1 {
			return nil, kind, fmt.Errorf("%s report takes no id", kind)
		}
		return g.Search(generateSearch), kind, nil
	}

	if len(args) < 2 {
		return nil, kind, fmt.Errorf("detail report needs a test id")
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, kind, fmt.Errorf("invalid test id %q: %w", args[1], err)
	}
	return g.Detail(id), kind, nil
}

func openSource(ctx context.Context) (*source.SQL, error) {
	return source.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, source.WithLogger(logger))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	src, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	g, kind, err := generator(src, args)
	if err != nil {
		return err
	}

	records, err := g.Records(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	data, err := report.Generate(kind, records, report.Options{
		Clock:    func() time.Time { return now },
		Compress: cfg.Report.Compress,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	path := generateOutput
	if path == "" {
		var rec model.Record
		if len(records) > 0 {
			rec = records[0]
		}
		path = server.Filename(kind, rec, now)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("report written",
		zap.Stringer("kind", kind),
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("bytes", len(data)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
