package resource

import (
	"errors"
	"fmt"
)

var errDefaultOutsideSchema = errors.New("default outside of schema")

// Defaults is the provider-declared value table used by MergeDefaults.
type Defaults map[PropertyID]Value

// Validate must be called once, when the provider is built: MergeDefaults
// trusts the table.
func (d Defaults) Validate(schema Schema) error {
	errs := []error{}

	for id := range d {
		if !schema.Contains(id) {
			errs = append(errs, fmt.Errorf("%w: %s in %s defaults", errDefaultOutsideSchema, id, schema.Type()))
		}
	}

	return errors.Join(errs...)
}

// MergeDefaults sets every wanted default that r does not hold yet. It never
// replaces a present property, so applying it twice is a no-op.
func (r *Resource) MergeDefaults(request Request, defaults Defaults) {
	if r.frozen {
		return
	}

	schema, err := SchemaOf(r.typ)
	if err != nil {
		return
	}

	for id, value := range defaults {
		if !request.Wants(id) || !schema.Contains(id) {
			continue
		}

		if _, present := r.properties[id]; present {
			continue
		}

		if r.properties == nil {
			r.properties = make(map[PropertyID]Value)
		}

		r.properties[id] = value.Clone()
	}
}
