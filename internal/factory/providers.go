package factory

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/catalog"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/node"
	"github.com/openshift-assisted/cluster-resources/internal/log"
	"github.com/openshift-assisted/cluster-resources/internal/providers"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
)

// CreateHostSource returns the store the Host provider reads from.
func CreateHostSource(conf config.Hosts, state repo.HostStateReader) (repo.HostStateReader, error) {
	switch conf.Source {
	case config.HostSourceValkey, "":
		return state, nil
	case config.HostSourceKubernetes:
		client, err := CreateKubernetesClient(conf.Kubernetes)
		if err != nil {
			return nil, err
		}

		return node.NewKubernetesRepo(client, conf.Kubernetes.ClusterID, conf.Kubernetes.LabelSelector), nil
	default:
		return nil, fmt.Errorf("unknown host source %q", conf.Source)
	}
}

// CreateProviders builds every provider, wired to the catalog file and the
// state store, then decorates them.
func CreateProviders(conf config.Config, clusters repo.ClusterStateReader, hosts repo.HostStateReader, registry prometheus.Registerer) (provider.Providers, error) {
	stackCatalog, err := catalog.NewYAMLCatalogFromFile(conf.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	policy, err := provider.ParseFailurePolicy(conf.Providers.FailurePolicy)
	if err != nil {
		return nil, err
	}

	ret, err := providers.Registry().ResolveAll(providers.Dependencies{
		Catalog:       stackCatalog,
		Clusters:      clusters,
		Hosts:         hosts,
		FailurePolicy: policy,
		Logger:        log.Logger().WithName("provider"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve providers: %w", err)
	}

	return DecorateProviders(ret, registry, conf.Providers.Retry)
}

/*
 * DecorateProviders decorates every provider as follow:
 *
 * panic --> duration --> retry --> projector
 */
func DecorateProviders(ps provider.Providers, registry prometheus.Registerer, conf config.Retry) (provider.Providers, error) {
	metrics, err := provider.NewMetrics(registry, provider.MetricsConfig{Namespace: "query"})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider metrics: %w", err)
	}

	clock := clockwork.NewRealClock()

	return ps.Decorate(func(p provider.ResourceProvider) (provider.ResourceProvider, error) {
		ret := provider.NewRetryProvider(p, provider.RetryConfig{MaxAttempt: conf.MaxAttempt, Delay: conf.Delay})
		ret = provider.NewMetricsDecoratorProvider(ret, metrics, clock)

		return provider.NewPanicHandlerProvider(ret), nil
	})
}
