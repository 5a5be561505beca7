package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/reoring/jtval"
	"github.com/reoring/jtval/i18n"
	"github.com/reoring/jtval/metrics"
	"github.com/reoring/jtval/middleware"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve SCHEMA",
		Short: "Serve validation over HTTP",
		Long: `Compiles SCHEMA once and serves:
  POST /validate         body: item or array; reply {"correct": [...], "errors": [...]}
  POST /validate/legacy  same, with the legacy output shapes
  GET  /metrics          Prometheus metrics
  GET  /healthz          liveness`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			col, err := metrics.New(reg)
			if err != nil {
				return err
			}
			v, err := a.compile(args[0], col)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           newRouter(v, reg, a.logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				<-ctx.Done()
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = srv.Shutdown(sctx)
			}()

			a.logger.Info(i18n.T(i18n.CodeListening, map[string]string{"addr": a.cfg.Addr}), "engine", v.Engine())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return &exitError{code: exitIO, err: err}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&a.flags.Addr, "addr", "", "listen address (default :8080)")
	return cmd
}

func newRouter(v *jtval.Validator, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.With(middleware.ValidateBody(v)).Post("/validate", func(w http.ResponseWriter, r *http.Request) {
		out, _ := middleware.OutcomeFromContext(r.Context())
		logger.Debug("validated request", "valid", len(out.Correct), "invalid", len(out.Failures))
		middleware.WriteJSON(w, http.StatusOK, out)
	})

	r.Post("/validate/legacy", func(w http.ResponseWriter, r *http.Request) {
		data, ok := middleware.DecodeBody(w, r, middleware.DefaultMaxBytes)
		if !ok {
			return
		}
		correct, failures, err := v.ValidateLegacy(r.Context(), data)
		if err != nil {
			status := http.StatusInternalServerError
			if jtval.IsValidation(err) {
				status = http.StatusUnprocessableEntity
			}
			http.Error(w, err.Error(), status)
			return
		}
		middleware.WriteJSON(w, http.StatusOK, map[string]any{"correct": correct, "errors": failures})
	})
	return r
}
