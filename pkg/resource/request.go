package resource

import (
	"errors"
	"fmt"
)

// Predicate is evaluated by the caller on projected resources, providers never
// call it.
type Predicate func(Resource) bool

// Request lists the wanted properties. An empty request wants every property.
type Request struct {
	properties map[PropertyID]struct{}
	categories map[string]struct{}
	predicate  Predicate
}

func NewReadRequest(ids ...PropertyID) Request {
	ret := Request{
		properties: make(map[PropertyID]struct{}, len(ids)),
		categories: make(map[string]struct{}),
	}

	for _, id := range ids {
		ret.properties[id] = struct{}{}
	}

	return ret
}

// WithCategories also wants every property under the given categories.
func (r Request) WithCategories(categories ...string) Request {
	ret := r.clone()

	for _, category := range categories {
		ret.categories[category] = struct{}{}
	}

	return ret
}

func (r Request) WithPredicate(predicate Predicate) Request {
	ret := r.clone()
	ret.predicate = predicate

	return ret
}

func (r Request) WantsAll() bool {
	return len(r.properties) == 0 && len(r.categories) == 0
}

func (r Request) Wants(id PropertyID) bool {
	if r.WantsAll() {
		return true
	}

	if _, ok := r.properties[id]; ok {
		return true
	}

	for category := range r.categories {
		if id.InCategory(category) {
			return true
		}
	}

	return false
}

// PropertyIDs returns the explicitly requested properties, sorted.
func (r Request) PropertyIDs() []PropertyID {
	return sortedIDs(r.properties)
}

func (r Request) Predicate() Predicate {
	return r.predicate
}

func (r Request) Matches(res Resource) bool {
	if r.predicate == nil {
		return true
	}

	return r.predicate(res)
}

// Validate fails with ErrUnknownProperty when the request names a property or
// a category the schema does not declare.
func (r Request) Validate(schema Schema) error {
	errs := []error{}

	for _, id := range r.PropertyIDs() {
		if !schema.Contains(id) {
			errs = append(errs, NewErrUnknownProperty(schema.Type(), id))
		}
	}

	for category := range r.categories {
		if !schema.HasCategory(category) {
			errs = append(errs, fmt.Errorf("%w: category %s is not declared by %s", ErrUnknownProperty, category, schema.Type()))
		}
	}

	return errors.Join(errs...)
}

func (r Request) clone() Request {
	ret := Request{
		properties: make(map[PropertyID]struct{}, len(r.properties)),
		categories: make(map[string]struct{}, len(r.categories)),
		predicate:  r.predicate,
	}

	for id := range r.properties {
		ret.properties[id] = struct{}{}
	}

	for category := range r.categories {
		ret.categories[category] = struct{}{}
	}

	return ret
}
