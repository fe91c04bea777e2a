package resource

import (
	"errors"
	"fmt"
	"sort"
)

var (
	errDuplicateProperty = errors.New("duplicate property")
	errNoKeyProperty     = errors.New("no key property")
)

type Type string

func (t Type) String() string {
	return string(t)
}

// Schema is the closed set of properties of a Type and the subset identifying
// one instance.
type Schema struct {
	typ        Type
	properties map[PropertyID]struct{}
	keys       map[PropertyID]struct{}
}

func NewSchema(t Type, keys []PropertyID, others ...PropertyID) (Schema, error) {
	if len(keys) == 0 {
		return Schema{}, fmt.Errorf("%w for %s", errNoKeyProperty, t)
	}

	ret := Schema{
		typ:        t,
		properties: make(map[PropertyID]struct{}, len(keys)+len(others)),
		keys:       make(map[PropertyID]struct{}, len(keys)),
	}

	for i, id := range append(append([]PropertyID{}, keys...), others...) {
		err := id.Validate()
		if err != nil {
			return Schema{}, fmt.Errorf("invalid property in %s schema: %w", t, err)
		}

		if _, present := ret.properties[id]; present {
			return Schema{}, fmt.Errorf("%w %s in %s schema", errDuplicateProperty, id, t)
		}

		ret.properties[id] = struct{}{}

		if i < len(keys) {
			ret.keys[id] = struct{}{}
		}
	}

	return ret, nil
}

func (s Schema) Type() Type {
	return s.typ
}

func (s Schema) Contains(id PropertyID) bool {
	_, ok := s.properties[id]

	return ok
}

func (s Schema) IsKey(id PropertyID) bool {
	_, ok := s.keys[id]

	return ok
}

// HasCategory reports whether at least one property lives under category.
func (s Schema) HasCategory(category string) bool {
	for id := range s.properties {
		if id.InCategory(category) {
			return true
		}
	}

	return false
}

// Properties returns the schema sorted by canonical id.
func (s Schema) Properties() []PropertyID {
	return sortedIDs(s.properties)
}

func (s Schema) KeyProperties() []PropertyID {
	return sortedIDs(s.keys)
}

func sortedIDs(set map[PropertyID]struct{}) []PropertyID {
	ret := make([]PropertyID, 0, len(set))
	for id := range set {
		ret = append(ret, id)
	}

	sort.Slice(ret, func(i, j int) bool {
		return ret[i].String() < ret[j].String()
	})

	return ret
}

// Registry

// SchemaOf returns the schema declared for t.
func SchemaOf(t Type) (Schema, error) {
	ret, ok := schemas[t]
	if !ok {
		return Schema{}, NewErrUnsupportedType(t)
	}

	return ret, nil
}

func KeyPropertiesOf(t Type) ([]PropertyID, error) {
	schema, err := SchemaOf(t)
	if err != nil {
		return nil, err
	}

	return schema.KeyProperties(), nil
}

// Types lists every declared Type, sorted.
func Types() []Type {
	ret := make([]Type, 0, len(schemas))
	for t := range schemas {
		ret = append(ret, t)
	}

	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})

	return ret
}

func mustSchema(t Type, keys []PropertyID, others ...PropertyID) Schema {
	ret, err := NewSchema(t, keys, others...)
	if err != nil {
		panic(err)
	}

	return ret
}
