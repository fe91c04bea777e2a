package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/openshift-assisted/cluster-resources/internal/api"
	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var (
	queryFields  []string
	queryFilters []string
)

var queryCmd = &cobra.Command{
	Use:     "query <type>",
	Short:   "Print the resources of one type as JSON",
	Example: "  cluster-resources query Host --fields Hosts/host_name,Hosts/host_status --filter Hosts/cluster_id=c1",
	Args:    cobra.ExactArgs(1),
	PreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := resource.Type(args[0])

		query, err := buildQuery(queryFields, queryFilters)
		if err != nil {
			return err
		}

		request, err := api.ParseQuery(t, query)
		if err != nil {
			return err
		}

		ctx := common.SetupSignalHandler(context.Background())

		ctx, cancel := context.WithTimeout(ctx, conf.DefaultTimeout)
		defer cancel()

		providers, closeFunc, err := createProviders(ctx, prometheus.NewRegistry())
		if err != nil {
			return err
		}
		defer common.CloseAll(context.Background(), closeFunc)

		p, err := providers.Get(t)
		if err != nil {
			return err
		}

		resources, err := p.GetResources(ctx, request)
		if err != nil {
			return fmt.Errorf("failed to get %s resources: %w", t, err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(resource.Select(resources, request))
	},
}

func buildQuery(fields []string, filters []string) (url.Values, error) {
	ret := url.Values{}

	if len(fields) > 0 {
		ret.Set("fields", strings.Join(fields, ","))
	}

	for _, filter := range filters {
		key, value, ok := strings.Cut(filter, "=")
		if !ok {
			return nil, fmt.Errorf("invalid filter %q, expected <category>/<name>=<value>", filter)
		}

		ret.Add(key, value)
	}

	return ret, nil
}

func init() {
	queryCmd.Flags().StringSliceVar(&queryFields, "fields", nil, "properties or categories to return, all when empty")
	queryCmd.Flags().StringArrayVar(&queryFilters, "filter", nil, "equality filter <category>/<name>=<value>, repeatable")

	rootCmd.AddCommand(queryCmd)
}
