package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

var (
	errMissingName    = errors.New("missing name")
	errDuplicateEntry = errors.New("duplicate entry")
)

// YAMLCatalog is a stack catalog loaded once from a YAML document. It is read
// only, so concurrent readers share it freely.
type YAMLCatalog struct {
	services []entity.StackService
}

func NewYAMLCatalogFromFile(path string) (YAMLCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return YAMLCatalog{}, common.NewError(err, "failed to open catalog %s", path)
	}
	defer f.Close()

	return NewYAMLCatalog(f)
}

func NewYAMLCatalog(reader io.Reader) (YAMLCatalog, error) {
	file := File{}

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	err := decoder.Decode(&file)
	if err != nil && !errors.Is(err, io.EOF) {
		return YAMLCatalog{}, common.NewError(err, "failed to decode catalog")
	}

	err = validate(file)
	if err != nil {
		return YAMLCatalog{}, fmt.Errorf("invalid catalog: %w", err)
	}

	return YAMLCatalog{
		services: mapToEntities(file),
	}, nil
}

func (c YAMLCatalog) GetStackServices(ctx context.Context) ([]entity.StackService, error) {
	ret := make([]entity.StackService, len(c.services))
	copy(ret, c.services)

	return ret, nil
}

func (c YAMLCatalog) GetStackServiceComponents(ctx context.Context) ([]entity.StackServiceComponent, error) {
	ret := []entity.StackServiceComponent{}

	for _, service := range c.services {
		ret = append(ret, service.Components...)
	}

	return ret, nil
}

func validate(file File) error {
	errs := []error{}
	seen := map[string]struct{}{}

	check := func(name, key string) {
		if name == "" {
			errs = append(errs, fmt.Errorf("%w in %s", errMissingName, key))

			return
		}

		if _, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("%w %s", errDuplicateEntry, key))
		}

		seen[key] = struct{}{}
	}

	for _, stack := range file.Stacks {
		stackKey := stack.Name + "-" + stack.Version
		check(stack.Name, "stack "+stackKey)

		for _, service := range stack.Services {
			serviceKey := stackKey + "/" + service.Name
			check(service.Name, "service "+serviceKey)

			for _, component := range service.Components {
				check(component.Name, "component "+serviceKey+"/"+component.Name)
			}
		}
	}

	return errors.Join(errs...)
}
