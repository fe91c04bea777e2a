package repo

import (
	"context"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_repo.go

type StackCatalog interface {
	GetStackServices(ctx context.Context) ([]entity.StackService, error)
	GetStackServiceComponents(ctx context.Context) ([]entity.StackServiceComponent, error)
}

type ClusterStateWriter interface {
	WriteClusterState(ctx context.Context, state entity.ClusterState) error
}

type ClusterStateReader interface {
	GetClusterStates(ctx context.Context) ([]entity.ClusterState, error)
}

type ClusterState interface {
	ClusterStateWriter
	ClusterStateReader
}

type HostStateWriter interface {
	WriteHostState(ctx context.Context, state entity.HostState) error
}

type HostStateReader interface {
	GetHostStates(ctx context.Context, clusterID string) ([]entity.HostState, error)
	ListHostStates(ctx context.Context) ([]entity.HostState, error)
}

type HostState interface {
	HostStateWriter
	HostStateReader
}

type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, snapshot entity.Snapshot) error
}

type DeadLetterWriter interface {
	WriteDeadLetter(ctx context.Context, letter entity.DeadLetter) error
}
