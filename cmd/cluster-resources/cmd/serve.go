package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openshift-assisted/cluster-resources/internal/api"
	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/factory"
	"github.com/openshift-assisted/cluster-resources/internal/log"
	"github.com/openshift-assisted/cluster-resources/internal/security"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the resource query API",
	PreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		err := common.SetupRuntime()
		if err != nil {
			return err
		}

		ctx := common.SetupSignalHandler(context.Background())

		registry, err := factory.CreateRegistry()
		if err != nil {
			return err
		}

		providers, closeFunc, err := createProviders(ctx, registry)
		if err != nil {
			return err
		}
		defer common.CloseAll(context.Background(), closeFunc)

		if cfgFile != "" {
			config.Watch(func(e fsnotify.Event, err error) {
				if err != nil {
					logger.Error(err, "Failed to reload config, keeping security headers", "file", e.Name)

					return
				}

				logger.Info("Config file changed, security headers reloaded", "file", e.Name)
			})
		}

		handler := api.NewHandler(providers, conf.Providers.Timeout).WithLogger(logger.WithName("api"))

		apiServer := factory.CreateHTTPServer(conf.HTTP, security.NewHandler(config.SecurityHeaders{}, handler.Routes()))
		metricsServer := factory.CreatePrometheusServer(conf.Metrics, registry)

		group, ctx := errgroup.WithContext(ctx)

		group.Go(func() error {
			logger.Info("Serving API", "addr", apiServer.Addr, "tls", conf.HTTP.TLS.Enabled())

			return listen(apiServer, conf.HTTP.TLS)
		})

		group.Go(func() error {
			logger.Info("Serving metrics", "addr", metricsServer.Addr)

			return listen(metricsServer, config.TLS{})
		})

		group.Go(func() error {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.GracefulDuration)
			defer cancel()

			return errors.Join(apiServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx))
		})

		err = group.Wait()

		logger.V(1).Info("Server stopped")

		return err
	},
}

func listen(server *http.Server, tls config.TLS) error {
	var err error

	if tls.Enabled() {
		err = server.ListenAndServeTLS(tls.CertFile, tls.KeyFile)
	} else {
		err = server.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server %s failed: %w", server.Addr, err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
