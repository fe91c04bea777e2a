package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshift-assisted/cluster-resources/internal/cleanup"
	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/state"
	"github.com/openshift-assisted/cluster-resources/internal/factory"
	"github.com/openshift-assisted/cluster-resources/internal/log"
)

var (
	cleanupClusterID string
	cleanupBefore    string
	cleanupOlderThan time.Duration
)

var cleanupCmd = &cobra.Command{
	Use:     "cleanup",
	Short:   "Delete the states of a cluster last updated before a date",
	PreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		afterDate, err := cutoff(cleanupBefore, cleanupOlderThan, time.Now())
		if err != nil {
			return err
		}

		policy, err := cleanup.TimeBasedDeletePolicy(afterDate, cleanupClusterID)
		if err != nil {
			return err
		}

		ctx := common.SetupSignalHandler(context.Background())

		ctx, cancel := context.WithTimeout(ctx, conf.DefaultTimeout)
		defer cancel()

		client, closeFunc, err := factory.CreateValkeyClient(ctx, conf.Valkey)
		if err != nil {
			return err
		}
		defer common.CloseAll(context.Background(), closeFunc)

		executor := cleanup.NewExecutor(state.NewValkeyRepo(client, conf.Valkey.Expiration)).
			WithLogger(logger.WithName("cleanup"))

		result, err := executor.Execute(ctx, policy)
		if err != nil {
			return err
		}

		logger.Info("Cleanup done", "policy", policy.String(), "hosts", result.Hosts, "cluster", result.Cluster)

		return nil
	},
}

// cutoff prefers the explicit date over the age.
func cutoff(before string, olderThan time.Duration, now time.Time) (time.Time, error) {
	if before != "" {
		ret, err := time.Parse(time.RFC3339, before)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --before: %w", err)
		}

		return ret, nil
	}

	if olderThan <= 0 {
		return time.Time{}, fmt.Errorf("one of --before or --older-than is required")
	}

	return now.Add(-olderThan), nil
}

func init() {
	cleanupCmd.Flags().StringVar(&cleanupClusterID, "cluster-id", "", "cluster to clean up")
	cleanupCmd.Flags().StringVar(&cleanupBefore, "before", "", "delete states updated before this RFC3339 date")
	cleanupCmd.Flags().DurationVar(&cleanupOlderThan, "older-than", 0, "delete states not updated for this long")

	_ = cleanupCmd.MarkFlagRequired("cluster-id")

	rootCmd.AddCommand(cleanupCmd)
}
