package resource

import (
	"fmt"
	"strings"
)

// Separator joins the category and the name of a PropertyID. Categories may be
// nested ("metrics/cpu") so the name is always the segment after the last one.
const Separator = "/"

// PropertyID addresses one attribute of a resource type. The zero value is not
// a valid id.
type PropertyID struct {
	category string
	name     string
}

func NewPropertyID(category, name string) PropertyID {
	return PropertyID{category: category, name: name}
}

// ParsePropertyID is the inverse of PropertyID.String. Identifiers are compared
// byte for byte, nothing is trimmed or folded.
func ParsePropertyID(canonical string) (PropertyID, error) {
	idx := strings.LastIndex(canonical, Separator)
	if idx < 0 {
		return PropertyID{}, fmt.Errorf("%w: %q has no separator", ErrInvalidPropertyID, canonical)
	}

	ret := PropertyID{
		category: canonical[:idx],
		name:     canonical[idx+len(Separator):],
	}

	err := ret.Validate()
	if err != nil {
		return PropertyID{}, err
	}

	return ret, nil
}

func MustParsePropertyID(canonical string) PropertyID {
	ret, err := ParsePropertyID(canonical)
	if err != nil {
		panic(err)
	}

	return ret
}

func (p PropertyID) Category() string {
	return p.category
}

func (p PropertyID) Name() string {
	return p.name
}

func (p PropertyID) String() string {
	return p.category + Separator + p.name
}

func (p PropertyID) Validate() error {
	switch {
	case p.category == "":
		return fmt.Errorf("%w: %q has an empty category", ErrInvalidPropertyID, p.String())
	case p.name == "":
		return fmt.Errorf("%w: %q has an empty name", ErrInvalidPropertyID, p.String())
	case strings.Contains(p.name, Separator):
		return fmt.Errorf("%w: name %q contains %q", ErrInvalidPropertyID, p.name, Separator)
	case strings.HasPrefix(p.category, Separator) || strings.HasSuffix(p.category, Separator) || strings.Contains(p.category, Separator+Separator):
		return fmt.Errorf("%w: category %q has an empty segment", ErrInvalidPropertyID, p.category)
	}

	return nil
}

// InCategory reports whether the id belongs to category, directly or through a
// nested category ("metrics" contains "metrics/cpu/user").
func (p PropertyID) InCategory(category string) bool {
	return p.category == category || strings.HasPrefix(p.category, category+Separator)
}

func (p PropertyID) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PropertyID) UnmarshalText(text []byte) error {
	ret, err := ParsePropertyID(string(text))
	if err != nil {
		return err
	}

	*p = ret

	return nil
}
