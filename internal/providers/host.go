package providers

import (
	"context"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

const (
	hostStatusHealthy   = "HEALTHY"
	hostStatusUnhealthy = "UNHEALTHY"
	hostStatusUnknown   = "UNKNOWN"
)

// hostStatus folds the detailed host state reported by the agent into a health
// status.
func hostStatus(state string) string {
	switch state {
	case "known", "installed", "installing", "installing-in-progress", "preparing-for-installation",
		"preparing-successful", "added-to-existing-cluster", "known-unbound", "binding":
		return hostStatusHealthy
	case "disconnected", "disconnected-unbound", "error", "insufficient", "insufficient-unbound",
		"installing-pending-user-action", "preparing-failed", "cancelled":
		return hostStatusUnhealthy
	default:
		return hostStatusUnknown
	}
}

func hostPayload(path ...string) func(entity.HostState) (interface{}, bool) {
	get := field(path...)

	return func(h entity.HostState) (interface{}, bool) {
		return get(h.Payload)
	}
}

var hostDefinition = provider.Definition[entity.HostState]{
	Type: resource.Host,
	Accessors: map[resource.PropertyID]provider.Accessor[entity.HostState]{
		resource.HostClusterID: provider.RequiredText(func(h entity.HostState) string { return h.ClusterID }),
		resource.HostID:        provider.RequiredText(func(h entity.HostState) string { return h.HostID }),
		resource.HostName: provider.OptionalText(func(h entity.HostState) string {
			ret := textAt(h.Payload, "requested_hostname")
			if ret == "" {
				ret = textAt(h.Payload, "host_inventory", "hostname")
			}

			return ret
		}),
		resource.HostIP:                provider.OptionalText(func(h entity.HostState) string { return firstIPv4(h.Payload) }),
		resource.HostOSType:            provider.Field(hostPayload("host_inventory", "operating_system", "name")),
		resource.HostCPUCount:          provider.Field(hostPayload("host_inventory", "cpu", "count")),
		resource.HostTotalMem:          provider.Field(hostPayload("host_inventory", "memory", "physical_bytes")),
		resource.HostState:             provider.OptionalText(func(h entity.HostState) string { return textAt(h.Payload, "status") }),
		resource.HostLastHeartbeatTime: provider.Field(hostPayload("checked_in_at")),
		resource.HostMaintenanceState:  provider.Field(hostPayload("maintenance_state")),
		resource.HostRackInfo:          provider.Field(hostPayload("rack")),
		resource.HostStatus: provider.Text(func(h entity.HostState) string {
			return hostStatus(textAt(h.Payload, "status"))
		}),
	},
	Defaults: resource.Defaults{
		resource.HostMaintenanceState: resource.TextValue("OFF"),
		resource.HostRackInfo:         resource.TextValue("/default-rack"),
	},
}

func NewHostProvider(deps Dependencies) (provider.ResourceProvider, error) {
	if deps.Hosts == nil {
		return nil, newErrMissingDependency("host state reader")
	}

	fetch := func(ctx context.Context, _ resource.Request) ([]entity.HostState, error) {
		return deps.Hosts.ListHostStates(ctx)
	}

	ret, err := provider.NewProjector(hostDefinition, fetch)
	if err != nil {
		return nil, err
	}

	return configure(deps, ret), nil
}
