package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsawler/labreport/report"
	"github.com/tsawler/labreport/server"
	"github.com/tsawler/labreport/source"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reports as PDF downloads",
	Long: `Starts the HTTP download server.

Routes:
  GET /reportes/pacientes.pdf[?search=...]
  GET /reportes/pruebas.pdf[?search=...]
  GET /reportes/prueba/{id}.pdf

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	if cfg.Database.Bootstrap {
		if err := source.Bootstrap(ctx, src.DB(), src.Dialect()); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr: cfg.Server.Listen,
		Handler: server.New(src, report.Options{
			Compress: cfg.Report.Compress,
			Logger:   logger,
		}).Handler(),
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}
	return server.Run(ctx, srv, cfg.GetShutdownTimeout(), logger)
}
