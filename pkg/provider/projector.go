package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var (
	errMissingKeyAccessor = errors.New("missing key accessor")
	errUnknownAccessor    = errors.New("accessor outside of schema")
	errInvalidPolicy      = errors.New("invalid failure policy")
)

// FailurePolicy decides what happens to a resource whose key property cannot
// be computed.
type FailurePolicy string

const (
	FailurePolicySkip  FailurePolicy = "skip"
	FailurePolicyAbort FailurePolicy = "abort"
)

func ParseFailurePolicy(policy string) (FailurePolicy, error) {
	switch FailurePolicy(policy) {
	case FailurePolicySkip, FailurePolicyAbort:
		return FailurePolicy(policy), nil
	case "":
		return FailurePolicySkip, nil
	default:
		return "", fmt.Errorf("%w: %q", errInvalidPolicy, policy)
	}
}

// Fetcher queries the backend. It may use the request to narrow the query but
// must not rely on it for correctness.
type Fetcher[Raw any] func(ctx context.Context, request resource.Request) ([]Raw, error)

type Definition[Raw any] struct {
	Type      resource.Type
	Accessors map[resource.PropertyID]Accessor[Raw]
	Defaults  resource.Defaults

	// EntryDefaults are merged into map valued properties.
	EntryDefaults map[resource.PropertyID]map[string]resource.Value
}

// Projector is the generic ResourceProvider: it fetches raw objects then
// projects each of them on the wanted properties.
type Projector[Raw any] struct {
	definition Definition[Raw]
	schema     resource.Schema
	fetch      Fetcher[Raw]

	policy FailurePolicy
	logger *logr.Logger
}

func NewProjector[Raw any](definition Definition[Raw], fetch Fetcher[Raw]) (Projector[Raw], error) {
	schema, err := resource.SchemaOf(definition.Type)
	if err != nil {
		return Projector[Raw]{}, err
	}

	errs := []error{}

	for id := range definition.Accessors {
		if !schema.Contains(id) {
			errs = append(errs, fmt.Errorf("%w: %s", errUnknownAccessor, id))
		}
	}

	for _, id := range schema.KeyProperties() {
		if _, ok := definition.Accessors[id]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", errMissingKeyAccessor, id))
		}
	}

	for id := range definition.EntryDefaults {
		if !schema.Contains(id) {
			errs = append(errs, fmt.Errorf("%w: entry defaults of %s", errUnknownAccessor, id))
		}
	}

	errs = append(errs, definition.Defaults.Validate(schema))

	err = errors.Join(errs...)
	if err != nil {
		return Projector[Raw]{}, fmt.Errorf("invalid %s provider: %w", definition.Type, err)
	}

	return Projector[Raw]{
		definition: definition,
		schema:     schema,
		fetch:      fetch,
		policy:     FailurePolicySkip,
	}, nil
}

func (p Projector[Raw]) WithFailurePolicy(policy FailurePolicy) Projector[Raw] {
	p.policy = policy

	return p
}

func (p Projector[Raw]) WithLogger(logger logr.Logger) Projector[Raw] {
	logger = logger.WithValues("type", p.definition.Type)
	p.logger = &logger

	return p
}

func (p Projector[Raw]) Type() resource.Type {
	return p.definition.Type
}

func (p Projector[Raw]) GetResources(ctx context.Context, request resource.Request) ([]resource.Resource, error) {
	err := request.Validate(p.schema)
	if err != nil {
		return nil, err
	}

	raws, err := p.fetch(ctx, request)
	if err != nil {
		return nil, resource.NewErrBackendUnavailable(err)
	}

	ret := make([]resource.Resource, 0, len(raws))

	for _, raw := range raws {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		res, err := p.project(ctx, request, raw)
		if err != nil {
			if p.policy == FailurePolicyAbort {
				return nil, err
			}

			p.logError(err, "Dropping resource")

			continue
		}

		ret = append(ret, res)
	}

	return resource.Dedup(ret), nil
}

func (p Projector[Raw]) project(ctx context.Context, request resource.Request, raw Raw) (resource.Resource, error) {
	ret := resource.New(p.definition.Type)

	// Keys are always computed: they identify the raw object in errors even
	// when they are not wanted.
	identity := resource.New(p.definition.Type)

	var (
		keyErr error
		keyID  resource.PropertyID
	)

	for _, id := range p.schema.KeyProperties() {
		value, err := p.definition.Accessors[id](ctx, raw)
		if err != nil {
			if keyErr == nil {
				keyErr, keyID = err, id
			}

			continue
		}

		err = identity.SetProperty(id, value)
		if err != nil {
			return resource.Resource{}, err
		}

		if request.Wants(id) {
			err = ret.SetProperty(id, value)
			if err != nil {
				return resource.Resource{}, err
			}
		}
	}

	if keyErr != nil {
		return resource.Resource{}, resource.NewErrPropertyComputation(keyErr, p.definition.Type, keyID, identity.Identity())
	}

	for _, id := range p.schema.Properties() {
		if p.schema.IsKey(id) || !request.Wants(id) {
			continue
		}

		accessor, ok := p.definition.Accessors[id]
		if !ok {
			continue
		}

		value, err := accessor(ctx, raw)
		if errors.Is(err, ErrNotAvailable) {
			continue
		}

		if err != nil {
			p.logInfo(1, "Dropping property", "property", id.String(), "resource", identity.Identity(), "reason", err.Error())

			continue
		}

		entryDefaults, ok := p.definition.EntryDefaults[id]
		if ok {
			value = value.WithDefaults(entryDefaults)
		}

		err = ret.SetProperty(id, value)
		if err != nil {
			return resource.Resource{}, err
		}
	}

	ret.MergeDefaults(request, p.definition.Defaults)

	return ret.Freeze(), nil
}

func (p Projector[Raw]) logInfo(level int, msg string, keysAndValues ...any) {
	if p.logger == nil {
		return
	}

	p.logger.V(level).Info(msg, keysAndValues...)
}

func (p Projector[Raw]) logError(err error, msg string, keysAndValues ...any) {
	if p.logger == nil {
		return
	}

	p.logger.Error(err, msg, keysAndValues...)
}
