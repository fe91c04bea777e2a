package providers

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/openshift-assisted/cluster-resources/internal/domain/repo"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var errMissingDependency = errors.New("missing dependency")

func newErrMissingDependency(name string) error {
	return fmt.Errorf("%w: %s", errMissingDependency, name)
}

// Dependencies are the backends shared by every provider.
type Dependencies struct {
	Catalog  repo.StackCatalog
	Clusters repo.ClusterStateReader
	Hosts    repo.HostStateReader

	FailurePolicy provider.FailurePolicy
	Logger        logr.Logger
}

func Registry() provider.Registry[Dependencies] {
	return provider.NewRegistry(map[resource.Type]provider.Constructor[Dependencies]{
		resource.StackService:          NewStackServiceProvider,
		resource.StackServiceComponent: NewComponentProvider,
		resource.Cluster:               NewClusterProvider,
		resource.Host:                  NewHostProvider,
	})
}

func configure[Raw any](deps Dependencies, p provider.Projector[Raw]) provider.ResourceProvider {
	policy := deps.FailurePolicy
	if policy == "" {
		policy = provider.FailurePolicySkip
	}

	return p.WithFailurePolicy(policy).WithLogger(deps.Logger)
}
