package ingest

import (
	"context"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

const categoryInvalidClusterState = "invalid_cluster_state"

func (m Main) processClusterState(ctx context.Context, event entity.Event) error {
	clusterID, err := ExtractString(event.Payload, "id")
	if err != nil {
		return newErrProcessingError(err, categoryInvalidClusterState, "failed to extract id")
	}

	updatedAt, err := m.updatedAt(event.Payload)
	if err != nil {
		return newErrProcessingError(err, categoryInvalidClusterState, "invalid updated_at")
	}

	payload := CopyPayload(event.Payload)

	err = anonymize(payload, "user_name", "user_id")
	if err != nil {
		return newErrProcessingError(err, categoryInvalidClusterState, "failed to hash user_name")
	}

	// Hosts are stored on their own
	delete(payload, "hosts")

	state := entity.ClusterState{
		ClusterID: clusterID,
		UpdatedAt: updatedAt,
		Payload:   payload,
		Metadata:  CopyPayload(event.Metadata),
	}

	err = m.clusters.WriteClusterState(ctx, state)
	if err != nil {
		return newErrProcessingError(err, categoryStateWriter, "failed to write cluster state")
	}

	return nil
}
