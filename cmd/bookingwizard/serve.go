package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	wizard "github.com/dhwrwm/intergalactic-booking-wizard"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/booking"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/config"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/logging"
	httpAdapter "github.com/dhwrwm/intergalactic-booking-wizard/pkg/adapters/http"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wizard HTTP server",
	Long:  `Starts the booking wizard as a JSON API: destination catalog, per-session wizard surface and the authoritative booking endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if backend, _ := cmd.Flags().GetString("store"); backend != "" {
			cfg.Store.Backend = backend
		}

		logger := logging.NewJSON(os.Stderr, slog.LevelInfo)

		store, locker, err := buildStore(cfg)
		if err != nil {
			return err
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		opts := []wizard.Option{
			wizard.WithStore(store),
			wizard.WithLogger(logger),
			wizard.WithLifecycleHooks(metrics.Hooks()),
			wizard.WithBooker(booking.NewService(
				booking.WithLatency(cfg.Booking.Latency),
				booking.WithLogger(logger),
			)),
		}
		if locker != nil {
			opts = append(opts, wizard.WithSessionLocker(locker))
		}
		w := wizard.New(opts...)

		handler := httpAdapter.NewHandler(w, w.Catalog(), w.Booker(),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithSessions(w.Sessions()))

		srv := &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting booking wizard server",
				"addr", srv.Addr, "store", cfg.Store.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			logger.Info("server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides config)")
	serveCmd.Flags().String("store", "", "Session store backend: memory, file or redis (overrides config)")
}
