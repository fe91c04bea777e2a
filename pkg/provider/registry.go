package provider

import (
	"errors"
	"fmt"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var (
	errMissingConstructor = errors.New("no provider registered")
	errTypeMismatch       = errors.New("provider type mismatch")
)

// Constructor builds the provider of one Type from the shared dependencies.
type Constructor[Deps any] func(deps Deps) (ResourceProvider, error)

// Registry is the static Type -> constructor table.
type Registry[Deps any] struct {
	constructors map[resource.Type]Constructor[Deps]
}

func NewRegistry[Deps any](constructors map[resource.Type]Constructor[Deps]) Registry[Deps] {
	ret := Registry[Deps]{
		constructors: make(map[resource.Type]Constructor[Deps], len(constructors)),
	}

	for t, constructor := range constructors {
		ret.constructors[t] = constructor
	}

	return ret
}

// Validate checks that every declared Type has a constructor and that no
// constructor is registered for an undeclared Type. It runs once at startup.
func (r Registry[Deps]) Validate() error {
	errs := []error{}

	for _, t := range resource.Types() {
		if r.constructors[t] == nil {
			errs = append(errs, fmt.Errorf("%w for %s", errMissingConstructor, t))
		}
	}

	for t := range r.constructors {
		_, err := resource.SchemaOf(t)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r Registry[Deps]) Resolve(t resource.Type, deps Deps) (ResourceProvider, error) {
	constructor := r.constructors[t]
	if constructor == nil {
		return nil, resource.NewErrUnsupportedType(t)
	}

	ret, err := constructor(deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", t, err)
	}

	if ret.Type() != t {
		return nil, fmt.Errorf("%w: %s registered for %s", errTypeMismatch, ret.Type(), t)
	}

	return ret, nil
}

// ResolveAll builds one long-lived provider per declared Type.
func (r Registry[Deps]) ResolveAll(deps Deps) (Providers, error) {
	err := r.Validate()
	if err != nil {
		return nil, err
	}

	ret := make(Providers, len(r.constructors))

	for _, t := range resource.Types() {
		p, err := r.Resolve(t, deps)
		if err != nil {
			return nil, err
		}

		ret[t] = p
	}

	return ret, nil
}

// Providers

type Providers map[resource.Type]ResourceProvider

func (p Providers) Get(t resource.Type) (ResourceProvider, error) {
	ret, ok := p[t]
	if !ok {
		return nil, resource.NewErrUnsupportedType(t)
	}

	return ret, nil
}

// Decorate wraps every provider, for example with NewPanicHandlerProvider.
func (p Providers) Decorate(decorator func(ResourceProvider) (ResourceProvider, error)) (Providers, error) {
	ret := make(Providers, len(p))

	for t, provider := range p {
		decorated, err := decorator(provider)
		if err != nil {
			return nil, fmt.Errorf("failed to decorate %s provider: %w", t, err)
		}

		ret[t] = decorated
	}

	return ret, nil
}
