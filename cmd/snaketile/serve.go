package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpadapter "svw.info/snaketile/internal/adapters/http"
	"svw.info/snaketile/internal/generator"
	"svw.info/snaketile/internal/infrastructure/storage"
	"svw.info/snaketile/internal/solver"
	"svw.info/snaketile/internal/usecase"
	"svw.info/snaketile/internal/validator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the tiling HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("persist-path", "./data", "save directory")
	_ = viper.BindPFlags(serveCmd.Flags())
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

// requestLogger logs method, path, status, bytes, and duration in a
// human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	persist := viper.GetString("persist-path")
	_ = os.MkdirAll(persist, 0o755)

	// Wire providers → use cases → HTTP adapter
	s := solver.NewBacktracking(viper.GetInt("iteration-cap"))
	g := generator.New(s, viper.GetInt("max-attempts"))
	v := validator.New()
	st := storage.NewFS(persist)
	uc := usecase.NewService(g, v, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	addr := viper.GetString("addr")
	srv := &http.Server{
		Addr:              addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", addr, "persist", persist)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
