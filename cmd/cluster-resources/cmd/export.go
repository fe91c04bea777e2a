package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/snapshot"
	"github.com/openshift-assisted/cluster-resources/internal/factory"
	"github.com/openshift-assisted/cluster-resources/internal/log"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var (
	exportTypes     []string
	exportOutputDir string
)

var errNoSnapshotDestination = errors.New("no snapshot destination, set s3.bucket or --output-dir")

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Write every resource of the selected types to S3 as NDJSON",
	PreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		types, err := parseTypes(exportTypes)
		if err != nil {
			return err
		}

		ctx := common.SetupSignalHandler(context.Background())

		providers, closeFunc, err := createProviders(ctx, prometheus.NewRegistry())
		if err != nil {
			return err
		}
		defer common.CloseAll(context.Background(), closeFunc)

		writer, err := createSnapshotWriter(ctx, conf.S3, exportOutputDir)
		if err != nil {
			return err
		}

		clock := clockwork.NewRealClock()

		group, ctx := errgroup.WithContext(ctx)

		for _, t := range types {
			group.Go(func() error {
				count, err := exportType(ctx, providers, writer, clock, t)
				if err != nil {
					return err
				}

				logger.Info("Exported", "type", t, "resources", count)

				return nil
			})
		}

		return group.Wait()
	},
}

// createSnapshotWriter writes each snapshot to S3 and to outputDir, whichever
// are configured.
func createSnapshotWriter(ctx context.Context, s3Conf config.S3, outputDir string) (repo.SnapshotWriter, error) {
	writers := []repo.SnapshotWriter{}

	if s3Conf.Bucket != "" {
		s3Client, err := factory.CreateS3Client(ctx, s3Conf)
		if err != nil {
			return nil, err
		}

		writers = append(writers, snapshot.NewS3Writer(s3Client, s3Conf.Bucket, s3Conf.KeyPrefix))
	}

	if outputDir != "" {
		writers = append(writers, snapshot.NewFileWriter(outputDir))
	}

	if len(writers) == 0 {
		return nil, errNoSnapshotDestination
	}

	return snapshot.NewParallelWriter(writers...), nil
}

func exportType(ctx context.Context, providers provider.Providers, writer repo.SnapshotWriter, clock clockwork.Clock, t resource.Type) (int, error) {
	p, err := providers.Get(t)
	if err != nil {
		return 0, err
	}

	resources, err := p.GetResources(ctx, resource.NewReadRequest())
	if err != nil {
		return 0, fmt.Errorf("failed to get %s resources: %w", t, err)
	}

	err = writer.WriteSnapshot(ctx, entity.Snapshot{
		Type:      t,
		Timestamp: clock.Now(),
		Resources: resources,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write %s snapshot: %w", t, err)
	}

	return len(resources), nil
}

func parseTypes(names []string) ([]resource.Type, error) {
	if len(names) == 0 {
		return resource.Types(), nil
	}

	ret := make([]resource.Type, 0, len(names))

	for _, name := range names {
		t := resource.Type(name)

		_, err := resource.SchemaOf(t)
		if err != nil {
			return nil, err
		}

		ret = append(ret, t)
	}

	return ret, nil
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportTypes, "types", nil, "types to export, all when empty")
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "also keep a local copy of every snapshot in this directory")

	rootCmd.AddCommand(exportCmd)
}
