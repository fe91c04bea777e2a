package state

import (
	"time"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

type State struct {
	UpdatedAt time.Time
	Metadata  map[string]interface{}
	Payload   map[string]interface{}
}

func hostToModels(event entity.HostState) State {
	return State{
		UpdatedAt: event.UpdatedAt,
		Metadata:  event.Metadata,
		Payload:   event.Payload,
	}
}

func hostToEntity(clusterID, hostID string, state State) entity.HostState {
	return entity.HostState{
		ClusterID: clusterID,
		HostID:    hostID,
		UpdatedAt: state.UpdatedAt,
		Metadata:  state.Metadata,
		Payload:   state.Payload,
	}
}

func clusterToModels(event entity.ClusterState) State {
	return State{
		UpdatedAt: event.UpdatedAt,
		Metadata:  event.Metadata,
		Payload:   event.Payload,
	}
}

func clusterToEntity(clusterID string, state State) entity.ClusterState {
	return entity.ClusterState{
		ClusterID: clusterID,
		UpdatedAt: state.UpdatedAt,
		Metadata:  state.Metadata,
		Payload:   state.Payload,
	}
}
