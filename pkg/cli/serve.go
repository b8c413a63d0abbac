package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/espalier"
	httpadapter "github.com/aretw0/espalier/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCmd(eng *espalier.Engine, o *options, config func() (Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the contract check and serve registered pages over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config()
			if err != nil {
				return err
			}
			logger := cfg.logger()

			httpOpts := append([]httpadapter.Option{httpadapter.WithLogger(logger)}, o.httpOptions...)
			handler, err := httpadapter.NewHandler(eng, httpOpts...)
			if err != nil {
				// A failing contract check stops the program here, before
				// it ever listens.
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.MetricsAddr != "" {
				metrics := &http.Server{Addr: cfg.MetricsAddr, Handler: promhttp.Handler()}
				go func() {
					logger.Info("metrics listening", "addr", cfg.MetricsAddr)
					if err := metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error("metrics server failed", "err", err)
					}
				}()
				defer metrics.Close()
			}

			server := &http.Server{Addr: cfg.Addr, Handler: handler}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			logger.Info("listening", "addr", cfg.Addr, "pages", len(eng.Registry().Pages()))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
