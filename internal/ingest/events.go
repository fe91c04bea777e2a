package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo"
)

var errUnknownEvent = errors.New("unknown event name")

const (
	EventNameClusterState = "ClusterState"
	EventNameHostState    = "HostState"

	categoryUnknownName = "unknown_name"
	categoryStateWriter = "state_writer"
)

// Main turns the backend events into the states the providers read.
type Main struct {
	clusters repo.ClusterStateWriter
	hosts    repo.HostStateWriter

	clock clockwork.Clock
}

func NewMain(clusters repo.ClusterStateWriter, hosts repo.HostStateWriter, clock clockwork.Clock) Main {
	return Main{
		clusters: clusters,
		hosts:    hosts,
		clock:    clock,
	}
}

func (m Main) Process(ctx context.Context, event entity.Event) error {
	switch event.Name {
	case EventNameClusterState:
		return m.processClusterState(ctx, event)
	case EventNameHostState:
		return m.processHostState(ctx, event)
	default:
		return newErrProcessingError(errUnknownEvent, categoryUnknownName, "event %q", event.Name)
	}
}

// updatedAt reads updated_at when present, the reception time otherwise.
func (m Main) updatedAt(payload map[string]interface{}) (time.Time, error) {
	_, ok := payload["updated_at"]
	if !ok {
		return m.clock.Now().UTC(), nil
	}

	value, err := ExtractString(payload, "updated_at")
	if err != nil {
		return time.Time{}, err
	}

	return ValidateDate(value)
}
