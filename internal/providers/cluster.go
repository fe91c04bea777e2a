package providers

import (
	"context"
	"sync"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

const maintenanceStateOn = "ON"

// clusterRecord looks the hosts of its cluster up at most once, for both
// total_hosts and health_report.
type clusterRecord struct {
	entity.ClusterState

	hosts *hostLookup
}

type hostLookup struct {
	reader repo.HostStateReader

	once   sync.Once
	states []entity.HostState
	err    error
}

func (c clusterRecord) hostStates(ctx context.Context) ([]entity.HostState, error) {
	c.hosts.once.Do(func() {
		c.hosts.states, c.hosts.err = c.hosts.reader.GetHostStates(ctx, c.ClusterID)
	})

	return c.hosts.states, c.hosts.err
}

func clusterPayload(path ...string) func(clusterRecord) (interface{}, bool) {
	get := field(path...)

	return func(c clusterRecord) (interface{}, bool) {
		return get(c.Payload)
	}
}

func clusterDefinition() provider.Definition[clusterRecord] {
	return provider.Definition[clusterRecord]{
		Type: resource.Cluster,
		Accessors: map[resource.PropertyID]provider.Accessor[clusterRecord]{
			resource.ClusterID:                provider.RequiredText(func(c clusterRecord) string { return c.ClusterID }),
			resource.ClusterName:              provider.Field(clusterPayload("name")),
			resource.ClusterVersion:           provider.Field(clusterPayload("openshift_version")),
			resource.ClusterProvisioningState: provider.Field(clusterPayload("status")),
			resource.ClusterSecurityType:      provider.Field(clusterPayload("security_type")),
			resource.ClusterDesiredConfigs:    provider.Field(clusterPayload("desired_configs")),
			resource.ClusterTotalHosts: provider.Computed(func(ctx context.Context, c clusterRecord) (resource.Value, error) {
				states, err := c.hostStates(ctx)
				if err != nil {
					return resource.Value{}, err
				}

				return resource.IntValue(int64(len(states))), nil
			}),
			resource.ClusterHealthReport: provider.Computed(func(ctx context.Context, c clusterRecord) (resource.Value, error) {
				states, err := c.hostStates(ctx)
				if err != nil {
					return resource.Value{}, err
				}

				return healthReport(states), nil
			}),
		},
		Defaults: resource.Defaults{
			resource.ClusterSecurityType:      resource.TextValue("NONE"),
			resource.ClusterProvisioningState: resource.TextValue("INIT"),
		},
	}
}

// NewClusterProvider reads clusters from the state store. Host counts are only
// looked up when total_hosts or health_report is wanted.
func NewClusterProvider(deps Dependencies) (provider.ResourceProvider, error) {
	if deps.Clusters == nil {
		return nil, newErrMissingDependency("cluster state reader")
	}

	if deps.Hosts == nil {
		return nil, newErrMissingDependency("host state reader")
	}

	fetch := func(ctx context.Context, _ resource.Request) ([]clusterRecord, error) {
		states, err := deps.Clusters.GetClusterStates(ctx)
		if err != nil {
			return nil, err
		}

		ret := make([]clusterRecord, 0, len(states))
		for _, state := range states {
			ret = append(ret, clusterRecord{
				ClusterState: state,
				hosts:        &hostLookup{reader: deps.Hosts},
			})
		}

		return ret, nil
	}

	ret, err := provider.NewProjector(clusterDefinition(), fetch)
	if err != nil {
		return nil, err
	}

	return configure(deps, ret), nil
}

func healthReport(states []entity.HostState) resource.Value {
	report := map[string]int64{
		"Host/host_status/HEALTHY":   0,
		"Host/host_status/UNHEALTHY": 0,
		"Host/host_status/UNKNOWN":   0,
		"Host/maintenance_state":     0,
	}

	for _, state := range states {
		report["Host/host_status/"+hostStatus(textAt(state.Payload, "status"))]++

		if textAt(state.Payload, "maintenance_state") == maintenanceStateOn {
			report["Host/maintenance_state"]++
		}
	}

	ret := make(map[string]resource.Value, len(report))
	for key, count := range report {
		ret[key] = resource.IntValue(count)
	}

	return resource.MapValue(ret)
}
