package main

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/nsudoku/internal/adapters/http"
	"svw.info/nsudoku/internal/generator"
	"svw.info/nsudoku/internal/hint"
	"svw.info/nsudoku/internal/infrastructure/storage"
	"svw.info/nsudoku/internal/ports"
	"svw.info/nsudoku/internal/solver"
	"svw.info/nsudoku/internal/usecase"
	"svw.info/nsudoku/internal/validator"
	"svw.info/nsudoku/web"
)

var (
	serveAddr   string
	persistKind string
	persistPath string
	serveSolver string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Run the web service",
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.NoArgs,
}

func init() {
	commandServe.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "listen address")
	commandServe.Flags().StringVar(&persistKind, "persist", "sqlite", "storage backend: sqlite|fs")
	commandServe.Flags().StringVar(&persistPath, "persist-path", "./data", "save directory (fs) or database file (sqlite)")
	commandServe.Flags().StringVar(&serveSolver, "solver", "dlx", "solver to use: dlx|backtrack")
	mainCommand.AddCommand(commandServe)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func newStorage() (ports.Storage, error) {
	switch strings.ToLower(strings.TrimSpace(persistKind)) {
	case "fs":
		if err := os.MkdirAll(persistPath, 0o755); err != nil {
			return nil, err
		}
		return storage.NewFS(persistPath), nil
	case "sqlite":
		path := persistPath
		if path != ":memory:" && !strings.HasSuffix(path, ".db") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return nil, err
			}
			path = filepath.Join(path, "puzzles.db")
		}
		return storage.NewSQLite(path)
	default:
		return nil, errors.New("unknown storage backend: " + persistKind)
	}
}

// pickSolver maps a --solver flag value to an engine. Anything that is
// not backtracking selects DLX.
func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewDLXSolver()
	}
}

func serve() error {
	s := pickSolver(serveSolver)

	st, err := newStorage()
	if err != nil {
		return err
	}

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles(), st)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(r)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logrus.WithFields(logrus.Fields{
		"addr":    serveAddr,
		"persist": persistKind,
		"solver":  serveSolver,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
