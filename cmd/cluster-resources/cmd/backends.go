package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/state"
	"github.com/openshift-assisted/cluster-resources/internal/factory"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
)

// createProviders connects the state store and builds the decorated providers.
func createProviders(ctx context.Context, registry prometheus.Registerer) (provider.Providers, common.CloseFunc, error) {
	client, closeFunc, err := factory.CreateValkeyClient(ctx, conf.Valkey)
	if err != nil {
		return nil, nil, err
	}

	store := state.NewValkeyRepo(client, conf.Valkey.Expiration)

	hosts, err := factory.CreateHostSource(conf.Hosts, store)
	if err != nil {
		common.CloseAll(ctx, closeFunc)

		return nil, nil, fmt.Errorf("failed to create host source: %w", err)
	}

	ret, err := factory.CreateProviders(*conf, store, hosts, registry)
	if err != nil {
		common.CloseAll(ctx, closeFunc)

		return nil, nil, err
	}

	return ret, closeFunc, nil
}
