package resource

import (
	"sort"
	"strings"
)

// Resource is a sparse property bag of one Type. A property that is absent was
// not requested or not computed; it is different from a property set to Null.
//
// Resources are built by a single goroutine then frozen. A frozen resource
// rejects every mutation and only hands out copies of its values.
type Resource struct {
	typ        Type
	properties map[PropertyID]Value
	frozen     bool
}

func New(t Type) Resource {
	return Resource{
		typ:        t,
		properties: make(map[PropertyID]Value),
	}
}

func (r Resource) Type() Type {
	return r.typ
}

func (r *Resource) SetProperty(id PropertyID, value Value) error {
	if r.frozen {
		return ErrFrozenResource
	}

	schema, err := SchemaOf(r.typ)
	if err != nil {
		return err
	}

	if !schema.Contains(id) {
		return NewErrUnknownProperty(r.typ, id)
	}

	if r.properties == nil {
		r.properties = make(map[PropertyID]Value)
	}

	r.properties[id] = value.Clone()

	return nil
}

// Property returns the value of id and whether it is present.
func (r Resource) Property(id PropertyID) (Value, bool) {
	ret, ok := r.properties[id]
	if !ok {
		return Value{}, false
	}

	return ret.Clone(), true
}

func (r Resource) Has(id PropertyID) bool {
	_, ok := r.properties[id]

	return ok
}

func (r Resource) Len() int {
	return len(r.properties)
}

// PropertyIDs returns the present properties sorted by canonical id.
func (r Resource) PropertyIDs() []PropertyID {
	set := make(map[PropertyID]struct{}, len(r.properties))
	for id := range r.properties {
		set[id] = struct{}{}
	}

	return sortedIDs(set)
}

func (r Resource) Properties() map[PropertyID]Value {
	ret := make(map[PropertyID]Value, len(r.properties))
	for id, value := range r.properties {
		ret[id] = value.Clone()
	}

	return ret
}

// Freeze returns a frozen deep copy of r.
func (r Resource) Freeze() Resource {
	return Resource{
		typ:        r.typ,
		properties: r.Properties(),
		frozen:     true,
	}
}

func (r Resource) Frozen() bool {
	return r.frozen
}

// Equal compares the type and every property. Whether a resource is frozen is
// not part of its value.
func (r Resource) Equal(other Resource) bool {
	if r.typ != other.typ || len(r.properties) != len(other.properties) {
		return false
	}

	for id, value := range r.properties {
		otherValue, ok := other.properties[id]
		if !ok || !value.Equal(otherValue) {
			return false
		}
	}

	return true
}

// Key is a canonical encoding of the whole resource: two resources are Equal
// iff their keys are equal.
func (r Resource) Key() string {
	var sb strings.Builder

	sb.WriteString(string(r.typ))
	sb.WriteString("{")

	for i, id := range r.PropertyIDs() {
		if i > 0 {
			sb.WriteString(",")
		}

		sb.WriteString(id.String())
		sb.WriteString("=")
		r.properties[id].writeCanonical(&sb)
	}

	sb.WriteString("}")

	return sb.String()
}

// Identity renders the key properties present on r, for logs and errors.
func (r Resource) Identity() string {
	keys, err := KeyPropertiesOf(r.typ)
	if err != nil {
		return r.Key()
	}

	parts := make([]string, 0, len(keys))

	for _, id := range keys {
		value, ok := r.properties[id]
		if !ok {
			continue
		}

		parts = append(parts, id.String()+"="+value.String())
	}

	return strings.Join(parts, ",")
}

func (r Resource) String() string {
	return r.Key()
}

// Dedup applies set semantics: equal resources are kept once and the result is
// sorted by Key.
func Dedup(resources []Resource) []Resource {
	seen := make(map[string]Resource, len(resources))
	for _, res := range resources {
		key := res.Key()
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = res
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	ret := make([]Resource, 0, len(keys))
	for _, key := range keys {
		ret = append(ret, seen[key])
	}

	return ret
}

// Select keeps the resources accepted by the request predicate.
func Select(resources []Resource, request Request) []Resource {
	if request.predicate == nil {
		return resources
	}

	ret := make([]Resource, 0, len(resources))

	for _, res := range resources {
		if request.Matches(res) {
			ret = append(ret, res)
		}
	}

	return ret
}
