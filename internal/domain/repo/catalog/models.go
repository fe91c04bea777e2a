package catalog

import "github.com/openshift-assisted/cluster-resources/internal/domain/entity"

type File struct {
	Stacks []Stack `yaml:"stacks"`
}

type Stack struct {
	Name     string    `yaml:"name"`
	Version  string    `yaml:"version"`
	Services []Service `yaml:"services"`
}

type Service struct {
	Name                     string                       `yaml:"name"`
	DisplayName              string                       `yaml:"displayName"`
	Comments                 string                       `yaml:"comments"`
	Version                  string                       `yaml:"version"`
	Type                     string                       `yaml:"type"`
	User                     string                       `yaml:"user"`
	RequiredServices         []string                     `yaml:"requiredServices"`
	ConfigTypes              map[string]map[string]string `yaml:"configTypes"`
	Properties               map[string]string            `yaml:"properties"`
	Selection                string                       `yaml:"selection"`
	CredentialStoreSupported *bool                        `yaml:"credentialStoreSupported"`
	Components               []Component                  `yaml:"components"`
}

type Component struct {
	Name           string   `yaml:"name"`
	DisplayName    string   `yaml:"displayName"`
	Category       string   `yaml:"category"`
	Cardinality    string   `yaml:"cardinality"`
	CustomCommands []string `yaml:"customCommands"`
}

func mapToEntities(file File) []entity.StackService {
	ret := []entity.StackService{}

	for _, stack := range file.Stacks {
		for _, service := range stack.Services {
			ret = append(ret, mapServiceToEntity(stack, service))
		}
	}

	return ret
}

func mapServiceToEntity(stack Stack, service Service) entity.StackService {
	ret := entity.StackService{
		StackName:                stack.Name,
		StackVersion:             stack.Version,
		Name:                     service.Name,
		DisplayName:              service.DisplayName,
		Comments:                 service.Comments,
		Version:                  service.Version,
		ServiceType:              service.Type,
		UserName:                 service.User,
		RequiredServices:         service.RequiredServices,
		ConfigTypes:              service.ConfigTypes,
		Properties:               service.Properties,
		Selection:                service.Selection,
		CredentialStoreSupported: service.CredentialStoreSupported,
		Components:               make([]entity.StackServiceComponent, 0, len(service.Components)),
	}

	for _, component := range service.Components {
		ret.Components = append(ret.Components, entity.StackServiceComponent{
			StackName:      stack.Name,
			StackVersion:   stack.Version,
			ServiceName:    service.Name,
			Name:           component.Name,
			DisplayName:    component.DisplayName,
			Category:       component.Category,
			Cardinality:    component.Cardinality,
			CustomCommands: component.CustomCommands,
		})
	}

	return ret
}
