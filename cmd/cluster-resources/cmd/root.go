package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/log"
	"github.com/openshift-assisted/cluster-resources/internal/version"
)

var (
	cfgFile string
	conf    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cluster-resources",
	Short: "Project cluster, host and stack resources",
	Long: `cluster-resources exposes the clusters, hosts and stack services of the
state store and the stack catalog as uniform resources, through a query API,
one-shot queries and S3 exports.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

// setup parses the configuration and initialises the logger. It runs as the
// PreRunE of every command.
func setup(cmd *cobra.Command, _ []string) error {
	var err error

	conf, err = config.Parse(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", cfgFile, err)
	}

	err = log.Init(conf.Logs)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	logger := log.Logger()

	logger.Info("Starting cluster-resources",
		"command", cmd.Name(),
		"version", version.Info(),
	)
	logger.V(1).Info("Using config", "config", fmt.Sprintf("%+v", *conf))

	return nil
}
