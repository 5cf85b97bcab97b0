package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pppp606/kamon"
	"github.com/pppp606/kamon/internal/adapters/rest"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP construction server",
	Long:  `Starts the Kamon engine in server mode, exposing per-session drawings over a JSON API with an SSE event stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd)

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Server.Addr
		}

		registry := prometheus.NewRegistry()
		metrics := newServerMetrics(registry)

		opts := append(benchOptions(cfg, logger), kamon.WithLifecycleHooks(metrics.hooks()))
		sessions := session.NewManager(
			session.WithWorkbenchOptions(opts...),
			session.WithLogger(logger),
		)

		handler := rest.NewHandler(sessions,
			rest.WithLogger(logger),
			rest.WithCanvasBounds(canvasBounds(cfg)),
			rest.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		)

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Kamon Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("killing server: %w", err)
				}
			}
			fmt.Println("Kamon Server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides config)")
}

// serverMetrics counts workbench activity across all sessions. The
// counters are fed by lifecycle hooks so the domain stays free of
// instrumentation.
type serverMetrics struct {
	commits     *prometheus.CounterVec
	steps       *prometheus.CounterVec
	activations *prometheus.CounterVec
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	m := &serverMetrics{
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kamon",
			Name:      "commits_total",
			Help:      "Elements committed to a drawing, by kind.",
		}, []string{"kind"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kamon",
			Name:      "history_steps_total",
			Help:      "Undo/redo attempts, by operation and whether a state change applied.",
		}, []string{"op", "applied"}),
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kamon",
			Name:      "division_activations_total",
			Help:      "Division-mode activations and recomputations, by element kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.commits, m.steps, m.activations)
	return m
}

func (m *serverMetrics) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommit: func(e *domain.CommitEvent) {
			m.commits.WithLabelValues(string(e.Kind)).Inc()
		},
		OnHistory: func(e *domain.HistoryEvent) {
			m.steps.WithLabelValues(string(e.Op), strconv.FormatBool(e.Applied)).Inc()
		},
		OnDivision: func(e *domain.DivisionEvent) {
			m.activations.WithLabelValues(string(e.Kind)).Inc()
		},
	}
}
