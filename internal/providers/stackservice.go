package providers

import (
	"context"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var stackServiceDefinition = provider.Definition[entity.StackService]{
	Type: resource.StackService,
	Accessors: map[resource.PropertyID]provider.Accessor[entity.StackService]{
		resource.StackServiceStackName:        provider.RequiredText(func(s entity.StackService) string { return s.StackName }),
		resource.StackServiceStackVersion:     provider.RequiredText(func(s entity.StackService) string { return s.StackVersion }),
		resource.StackServiceServiceName:      provider.RequiredText(func(s entity.StackService) string { return s.Name }),
		resource.StackServiceDisplayName:      provider.OptionalText(func(s entity.StackService) string { return s.DisplayName }),
		resource.StackServiceComments:         provider.OptionalText(func(s entity.StackService) string { return s.Comments }),
		resource.StackServiceServiceVersion:   provider.OptionalText(func(s entity.StackService) string { return s.Version }),
		resource.StackServiceServiceType:      provider.OptionalText(func(s entity.StackService) string { return s.ServiceType }),
		resource.StackServiceUserName:         provider.OptionalText(func(s entity.StackService) string { return s.UserName }),
		resource.StackServiceRequiredServices: provider.StringList(func(s entity.StackService) []string { return s.RequiredServices }),
		resource.StackServiceConfigTypes:      provider.Computed(configTypes),
		resource.StackServiceProperties:       provider.StringMap(func(s entity.StackService) map[string]string { return s.Properties }),
		resource.StackServiceSelection:        provider.OptionalText(func(s entity.StackService) string { return s.Selection }),
		resource.StackServiceCredentialStoreSupported: provider.Computed(func(_ context.Context, s entity.StackService) (resource.Value, error) {
			if s.CredentialStoreSupported == nil {
				return resource.Value{}, provider.ErrNotAvailable
			}

			return resource.BoolValue(*s.CredentialStoreSupported), nil
		}),
	},
	Defaults: resource.Defaults{
		resource.StackServiceSelection:                resource.TextValue("DEFAULT"),
		resource.StackServiceCredentialStoreSupported: resource.BoolValue(false),
	},
	EntryDefaults: map[resource.PropertyID]map[string]resource.Value{
		resource.StackServiceProperties: {
			"installable": resource.TextValue("true"),
			"managed":     resource.TextValue("true"),
			"monitored":   resource.TextValue("true"),
		},
	},
}

func NewStackServiceProvider(deps Dependencies) (provider.ResourceProvider, error) {
	if deps.Catalog == nil {
		return nil, newErrMissingDependency("catalog")
	}

	fetch := func(ctx context.Context, _ resource.Request) ([]entity.StackService, error) {
		return deps.Catalog.GetStackServices(ctx)
	}

	ret, err := provider.NewProjector(stackServiceDefinition, fetch)
	if err != nil {
		return nil, err
	}

	return configure(deps, ret), nil
}

func configTypes(_ context.Context, s entity.StackService) (resource.Value, error) {
	ret := make(map[string]resource.Value, len(s.ConfigTypes))

	for configType, attributes := range s.ConfigTypes {
		ret[configType] = resource.StringMapValue(attributes)
	}

	return resource.MapValue(ret), nil
}
