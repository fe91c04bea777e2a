package ingest

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

const categoryInvalidHostState = "invalid_host_state"

var errInventoryType = errors.New("unexpected type for inventory")

func (m Main) processHostState(ctx context.Context, event entity.Event) error {
	clusterID, err := ExtractString(event.Payload, "cluster_id")
	if err != nil {
		return newErrProcessingError(err, categoryInvalidHostState, "failed to extract cluster_id")
	}

	hostID, err := ExtractString(event.Payload, "id")
	if err != nil {
		return newErrProcessingError(err, categoryInvalidHostState, "failed to extract id")
	}

	updatedAt, err := m.updatedAt(event.Payload)
	if err != nil {
		return newErrProcessingError(err, categoryInvalidHostState, "invalid updated_at")
	}

	payload := CopyPayload(event.Payload)

	err = anonymize(payload, "user_name", "user_id")
	if err != nil {
		return newErrProcessingError(err, categoryInvalidHostState, "failed to hash user_name")
	}

	// inventory is a serialized JSON document
	inventory, present := payload["inventory"]
	if present {
		hostInventory, err := parseInventory(inventory)
		if err != nil {
			return newErrProcessingError(err, categoryInvalidHostState, "invalid inventory")
		}

		payload["host_inventory"] = hostInventory
		delete(payload, "inventory")
	}

	delete(payload, "free_addresses")

	state := entity.HostState{
		ClusterID: clusterID,
		HostID:    hostID,
		UpdatedAt: updatedAt,
		Payload:   payload,
		Metadata:  CopyPayload(event.Metadata),
	}

	err = m.hosts.WriteHostState(ctx, state)
	if err != nil {
		return newErrProcessingError(err, categoryStateWriter, "failed to write host state")
	}

	return nil
}

func parseInventory(input interface{}) (map[string]interface{}, error) {
	var raw []byte

	switch inventory := input.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return inventory, nil
	case string:
		raw = []byte(inventory)
	case []byte:
		raw = inventory
	default:
		return nil, errInventoryType
	}

	if len(raw) == 0 {
		return nil, nil
	}

	ret := make(map[string]interface{})

	err := json.Unmarshal(raw, &ret)
	if err != nil {
		return nil, err
	}

	return ret, nil
}
