package provider

import (
	"context"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_provider.go

// ResourceProvider projects the backend objects of one Type. Implementations
// are shared by concurrent calls and must not keep per-call state.
type ResourceProvider interface {
	Type() resource.Type
	GetResources(ctx context.Context, request resource.Request) ([]resource.Resource, error)
}
