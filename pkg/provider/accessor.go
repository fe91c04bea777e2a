package provider

import (
	"context"
	"fmt"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

// Accessor computes one property from a raw backend object. It is only called
// when the property is wanted, or when it is a key property.
type Accessor[Raw any] func(ctx context.Context, raw Raw) (resource.Value, error)

func Text[Raw any](get func(Raw) string) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		return resource.TextValue(get(raw)), nil
	}
}

// RequiredText fails the computation when the text is empty.
func RequiredText[Raw any](get func(Raw) string) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		ret := get(raw)
		if ret == "" {
			return resource.Value{}, errEmptyValue
		}

		return resource.TextValue(ret), nil
	}
}

// OptionalText leaves the property absent when the text is empty.
func OptionalText[Raw any](get func(Raw) string) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		ret := get(raw)
		if ret == "" {
			return resource.Value{}, ErrNotAvailable
		}

		return resource.TextValue(ret), nil
	}
}

func Int[Raw any](get func(Raw) int64) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		return resource.IntValue(get(raw)), nil
	}
}

func Bool[Raw any](get func(Raw) bool) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		return resource.BoolValue(get(raw)), nil
	}
}

func StringList[Raw any](get func(Raw) []string) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		return resource.StringListValue(get(raw)), nil
	}
}

func StringMap[Raw any](get func(Raw) map[string]string) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		return resource.StringMapValue(get(raw)), nil
	}
}

// Field reads a decoded payload entry. A missing entry leaves the property
// absent, an entry of an unsupported type fails the computation.
func Field[Raw any](get func(Raw) (interface{}, bool)) Accessor[Raw] {
	return func(_ context.Context, raw Raw) (resource.Value, error) {
		field, ok := get(raw)
		if !ok {
			return resource.Value{}, ErrNotAvailable
		}

		ret, err := resource.FromInterface(field)
		if err != nil {
			return resource.Value{}, fmt.Errorf("failed to convert field: %w", err)
		}

		return ret, nil
	}
}

// Computed is for properties needing more than a field read, for example a
// secondary backend lookup.
func Computed[Raw any](compute func(ctx context.Context, raw Raw) (resource.Value, error)) Accessor[Raw] {
	return compute
}
