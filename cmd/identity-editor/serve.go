package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-identityform/internal/metrics"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the editor over HTTP",
	Long:  `Starts an HTTP server with the editor page, its form endpoints and a JSON API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			rt.cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("theme") {
			rt.cfg.Theme, _ = cmd.Flags().GetString("theme")
		}
		if cmd.Flags().Changed("metrics") {
			rt.cfg.Metrics, _ = cmd.Flags().GetBool("metrics")
		}

		var binderOpts []form.Option
		apiOpts := []httpapi.OptionFn{httpapi.WithLogger(rt.logger)}

		if rt.cfg.Metrics {
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			collector, err := metrics.New(reg)
			if err != nil {
				return err
			}
			binderOpts = append(binderOpts, form.WithObserver(collector))
			apiOpts = append(apiOpts,
				httpapi.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
				httpapi.WithRejectionRecorder(collector),
			)
		}
		if rt.cfg.Theme != "" {
			apiOpts = append(apiOpts, httpapi.WithTheme(&theme.RendererConfig{
				Theme:   rt.cfg.Theme,
				Variant: rt.cfg.ThemeVariant,
			}))
		}
		apiOpts = append(apiOpts, httpapi.WithBinderOptions(rt.binderOptions(binderOpts...)...))

		handler, err := httpapi.New(rt.resources.Catalog, rt.resources.Package, apiOpts...)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              rt.cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			rt.logger.Info("identity editor listening", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			rt.logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				rt.logger.Warn("graceful shutdown did not complete", "timeout", rt.cfg.ShutdownTimeout, "error", err)
				return srv.Close()
			}
			state := handler.State()
			rt.logger.Info("identity editor stopped", "items", len(state.Items), "dirty", state.Dirty)
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("theme", "", "Theme name passed to the page")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics at /metrics")
}
