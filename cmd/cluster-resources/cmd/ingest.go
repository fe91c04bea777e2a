package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/deadletter"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/state"
	"github.com/openshift-assisted/cluster-resources/internal/factory"
	"github.com/openshift-assisted/cluster-resources/internal/ingest"
	"github.com/openshift-assisted/cluster-resources/internal/log"
)

var ingestCmd = &cobra.Command{
	Use:     "ingest",
	Short:   "Consume cluster and host events from kafka into the state store",
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

		valkeyClient, closeValkey, err := factory.CreateValkeyClient(ctx, conf.Valkey)
		if err != nil {
			return err
		}
		defer common.CloseAll(context.Background(), closeValkey)

		s3Client, err := factory.CreateS3Client(ctx, conf.DeadLetterQueue)
		if err != nil {
			return err
		}

		logger.Info("Kafka consumer", "brokers", conf.Kafka.Broker.URLs, "sasl", config.KafkaConfig().Broker.Creds.String())

		consumer, err := factory.CreateKafkaConsumer(config.KafkaConfig())
		if err != nil {
			return err
		}
		defer consumer.Close()

		clock := clockwork.NewRealClock()
		store := state.NewValkeyRepo(valkeyClient, conf.Valkey.Expiration)

		processing, err := factory.DecorateProcessing(ingest.NewMain(store, store, clock), registry, conf.Providers.Retry)
		if err != nil {
			return err
		}

		dlq := deadletter.NewS3Writer(s3Client, clock, conf.DeadLetterQueue.Bucket, conf.DeadLetterQueue.KeyPrefix)

		errorProcessing, err := factory.DecorateErrorProcessing(ingest.NewMainError(dlq), registry, conf.Providers.Retry)
		if err != nil {
			return err
		}

		runner := ingest.NewRunner[entity.Event](consumer, []string{conf.Kafka.Consumer.Topic}, processing, errorProcessing).
			WithBackoff(clock, conf.Kafka.Consumer.OutageBackoff).
			WithLogger(logger.WithName("ingest"))

		metricsServer := factory.CreatePrometheusServer(conf.Metrics, registry)

		group, ctx := errgroup.WithContext(ctx)

		group.Go(func() error {
			err := runner.Start(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		})

		group.Go(func() error {
			return listen(metricsServer, config.TLS{})
		})

		group.Go(func() error {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.GracefulDuration)
			defer cancel()

			return metricsServer.Shutdown(shutdownCtx)
		})

		err = group.Wait()
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}

		logger.V(1).Info("Ingest stopped")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
