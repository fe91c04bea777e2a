package providers

import (
	"context"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var componentDefinition = provider.Definition[entity.StackServiceComponent]{
	Type: resource.StackServiceComponent,
	Accessors: map[resource.PropertyID]provider.Accessor[entity.StackServiceComponent]{
		resource.ComponentStackName:     provider.RequiredText(func(c entity.StackServiceComponent) string { return c.StackName }),
		resource.ComponentStackVersion:  provider.RequiredText(func(c entity.StackServiceComponent) string { return c.StackVersion }),
		resource.ComponentServiceName:   provider.RequiredText(func(c entity.StackServiceComponent) string { return c.ServiceName }),
		resource.ComponentComponentName: provider.RequiredText(func(c entity.StackServiceComponent) string { return c.Name }),
		resource.ComponentDisplayName:   provider.OptionalText(func(c entity.StackServiceComponent) string { return c.DisplayName }),
		resource.ComponentCategory:      provider.OptionalText(func(c entity.StackServiceComponent) string { return c.Category }),
		resource.ComponentCardinality:   provider.OptionalText(func(c entity.StackServiceComponent) string { return c.Cardinality }),
		resource.ComponentIsMaster: provider.Bool(func(c entity.StackServiceComponent) bool {
			return c.Category == entity.ComponentCategoryMaster
		}),
		resource.ComponentIsClient: provider.Bool(func(c entity.StackServiceComponent) bool {
			return c.Category == entity.ComponentCategoryClient
		}),
		resource.ComponentCustomCommands: provider.StringList(func(c entity.StackServiceComponent) []string { return c.CustomCommands }),
	},
	Defaults: resource.Defaults{
		resource.ComponentCardinality: resource.TextValue("0+"),
	},
}

func NewComponentProvider(deps Dependencies) (provider.ResourceProvider, error) {
	if deps.Catalog == nil {
		return nil, newErrMissingDependency("catalog")
	}

	fetch := func(ctx context.Context, _ resource.Request) ([]entity.StackServiceComponent, error) {
		return deps.Catalog.GetStackServiceComponents(ctx)
	}

	ret, err := provider.NewProjector(componentDefinition, fetch)
	if err != nil {
		return nil, err
	}

	return configure(deps, ret), nil
}
