package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var errUnsupportedValueType = errors.New("unsupported value type")

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the closed set of property values. The zero Value is Null, which
// is a real value: a property set to Null is present on its resource.
type Value struct {
	kind Kind

	b bool
	i int64
	f float64
	s string
	m map[string]Value
	l []Value
}

func NullValue() Value {
	return Value{}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func TextValue(s string) Value {
	return Value{kind: KindText, s: s}
}

// MapValue copies m, later changes to m are not visible through the Value.
func MapValue(m map[string]Value) Value {
	ret := make(map[string]Value, len(m))
	for k, v := range m {
		ret[k] = v.Clone()
	}

	return Value{kind: KindMap, m: ret}
}

func ListValue(l ...Value) Value {
	ret := make([]Value, 0, len(l))
	for _, v := range l {
		ret = append(ret, v.Clone())
	}

	return Value{kind: KindList, l: ret}
}

func StringMapValue(m map[string]string) Value {
	ret := make(map[string]Value, len(m))
	for k, v := range m {
		ret[k] = TextValue(v)
	}

	return Value{kind: KindMap, m: ret}
}

func StringListValue(l []string) Value {
	ret := make([]Value, 0, len(l))
	for _, v := range l {
		ret = append(ret, TextValue(v))
	}

	return Value{kind: KindList, l: ret}
}

// FromInterface converts decoded JSON/YAML data into a Value.
func FromInterface(input interface{}) (Value, error) {
	switch v := input.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return v.Clone(), nil
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int32:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case uint32:
		return IntValue(int64(v)), nil
	case float32:
		return FloatValue(float64(v)), nil
	case float64:
		return FloatValue(v), nil
	case json.Number:
		i, err := v.Int64()
		if err == nil {
			return IntValue(i), nil
		}

		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", v.String(), err)
		}

		return FloatValue(f), nil
	case string:
		return TextValue(v), nil
	case []string:
		return StringListValue(v), nil
	case map[string]string:
		return StringMapValue(v), nil
	case []interface{}:
		ret := make([]Value, 0, len(v))

		for i, item := range v {
			value, err := FromInterface(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}

			ret = append(ret, value)
		}

		return Value{kind: KindList, l: ret}, nil
	case map[string]interface{}:
		ret := make(map[string]Value, len(v))

		for key, item := range v {
			value, err := FromInterface(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %s: %w", key, err)
			}

			ret[key] = value
		}

		return Value{kind: KindMap, m: ret}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", errUnsupportedValueType, input)
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// Map returns a copy of the entries of a map Value.
func (v Value) Map() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}

	return MapValue(v.m).m, true
}

// List returns a copy of the items of a list Value.
func (v Value) List() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}

	return ListValue(v.l...).l, true
}

// Entry looks up one key of a map Value.
func (v Value) Entry(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}

	ret, ok := v.m[key]
	if !ok {
		return Value{}, false
	}

	return ret.Clone(), true
}

func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		return len(v.m)
	case KindList:
		return len(v.l)
	default:
		return 0
	}
}

func (v Value) Clone() Value {
	switch v.kind {
	case KindMap:
		return MapValue(v.m)
	case KindList:
		return ListValue(v.l...)
	default:
		return v
	}
}

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	case KindText:
		return v.s == other.s
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}

		for key, item := range v.m {
			otherItem, ok := other.m[key]
			if !ok || !item.Equal(otherItem) {
				return false
			}
		}

		return true
	case KindList:
		if len(v.l) != len(other.l) {
			return false
		}

		for i := range v.l {
			if !v.l[i].Equal(other.l[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// WithDefaults fills the missing entries of a map Value. Existing entries are
// never replaced. Non map values are returned unchanged.
func (v Value) WithDefaults(defaults map[string]Value) Value {
	if v.kind != KindMap {
		return v.Clone()
	}

	ret := MapValue(v.m)
	for key, def := range defaults {
		if _, present := ret.m[key]; present {
			continue
		}

		ret.m[key] = def.Clone()
	}

	return ret
}

// Interface converts the Value back to plain Go data.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindMap:
		ret := make(map[string]interface{}, len(v.m))
		for key, item := range v.m {
			ret[key] = item.Interface()
		}

		return ret
	case KindList:
		ret := make([]interface{}, 0, len(v.l))
		for _, item := range v.l {
			ret = append(ret, item.Interface())
		}

		return ret
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	err := decoder.Decode(&raw)
	if err != nil {
		return err
	}

	ret, err := FromInterface(raw)
	if err != nil {
		return err
	}

	*v = ret

	return nil
}

// String is the plain textual form used by equality predicates: text is
// returned unquoted, everything else as its canonical encoding.
func (v Value) String() string {
	if v.kind == KindText {
		return v.s
	}

	return v.canonical()
}

// canonical is an unambiguous, deterministic encoding: kinds are tagged and map
// keys are sorted.
func (v Value) canonical() string {
	var sb strings.Builder

	v.writeCanonical(&sb)

	return sb.String()
}

func (v Value) writeCanonical(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		f := v.f
		if f == 0 {
			// -0 and 0 are Equal
			f = 0
		}

		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		sb.WriteString("f")
	case KindText:
		sb.WriteString(strconv.Quote(v.s))
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for key := range v.m {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		sb.WriteString("{")
		for i, key := range keys {
			if i > 0 {
				sb.WriteString(",")
			}

			sb.WriteString(strconv.Quote(key))
			sb.WriteString(":")
			v.m[key].writeCanonical(sb)
		}
		sb.WriteString("}")
	case KindList:
		sb.WriteString("[")
		for i, item := range v.l {
			if i > 0 {
				sb.WriteString(",")
			}

			item.writeCanonical(sb)
		}
		sb.WriteString("]")
	}
}
