// Package server exposes the reports as PDF downloads over HTTP.
//
// Routes:
//
//	GET /reportes/pacientes.pdf        patient listing
//	GET /reportes/pruebas.pdf          test listing
//	GET /reportes/prueba/{id}.pdf      single test detail
//
// The listings accept an optional search query parameter. Every response is sent as an
// attachment with a descriptive file name.
package server

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/labreport/model"
	"github.com/tsawler/labreport/report"
	"github.com/tsawler/labreport/source"
)

// NotFoundMessage is the body of a detail request for an unknown test.
const NotFoundMessage = "Prueba no encontrada"

// Server renders reports on request.
type Server struct {
	src  source.Source
	opts report.Options
	log  *zap.Logger
}

// New creates a server reading records from src. opts.Clock also names the listing files.
func New(src source.Source, opts report.Options) *Server {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Server{src: src, opts: opts, log: opts.Logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /reportes/pacientes.pdf", s.handleListing(report.KindPatients))
	mux.HandleFunc("GET /reportes/pruebas.pdf", s.handleListing(report.KindTests))
	mux.HandleFunc("GET /reportes/prueba/{file}", s.handleDetail)
	return mux
}

func (s *Server) handleListing(kind report.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := strings.TrimSpace(r.URL.Query().Get("search"))

		var (
			records []model.Record
			err     error
		)
		if kind == report.KindPatients {
			records, err = s.src.Patients(r.Context(), search)
		} else {
			records, err = s.src.Tests(r.Context(), search)
		}
		if err != nil {
			s.fail(w, kind, err)
			return
		}

		now := s.opts.Clock()
		opts := s.opts
		opts.Clock = func() time.Time { return now }
		s.send(w, kind, records, opts, Filename(kind, nil, now))
	}
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	idText, ok := strings.CutSuffix(file, ".pdf")
	if !ok {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	records, err := s.src.TestDetail(r.Context(), id)
	if err != nil {
		s.fail(w, report.KindTestDetail, err)
		return
	}
	if len(records) == 0 {
		http.Error(w, NotFoundMessage, http.StatusNotFound)
		return
	}

	s.send(w, report.KindTestDetail, records, s.opts, Filename(report.KindTestDetail, records[0], s.opts.Clock()))
}

func (s *Server) send(w http.ResponseWriter, kind report.Kind, records []model.Record, opts report.Options, filename string) {
	data, err := report.Generate(kind, records, opts)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, NotFoundMessage, http.StatusNotFound)
			return
		}
		s.fail(w, kind, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		s.log.Warn("failed to write response", zap.Stringer("kind", kind), zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, kind report.Kind, err error) {
	s.log.Error("report failed", zap.Stringer("kind", kind), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Filename returns the download name of a report. The detail report is named after the
// patient, the test date and the test; rec is ignored for listings.
func Filename(kind report.Kind, rec model.Record, now time.Time) string {
	stamp := now.Format("20060102_150405")
	switch kind {
	case report.KindPatients:
		return "reporte_pacientes_" + stamp + ".pdf"
	case report.KindTests:
		return "reporte_pruebas_" + stamp + ".pdf"
	}

	name, okName := rec.Get(report.KeyPatientName)
	date, okDate := rec.Get(report.KeyTestDate)
	test, okTest := rec.Get(report.KeyTestName)
	if !okName || !okDate || !okTest {
		id, _ := rec.Get(report.KeyTestRecordID)
		return fmt.Sprintf("reporte_prueba_%s.pdf", id)
	}

	filename := strings.ReplaceAll(name, " ", "_") + "_" + date + "_" + strings.ReplaceAll(test, " ", "_") + ".pdf"
	return strings.ReplaceAll(filename, "/", "_")
}

// Run serves srv until ctx is cancelled, then shuts it down within timeout.
func Run(ctx context.Context, srv *http.Server, timeout time.Duration, log *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
