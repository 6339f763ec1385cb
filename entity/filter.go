package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Any is the sentinel filter value meaning "do not filter on this field".
const Any = "Any"

// IsAny reports whether v is the Any sentinel.
func IsAny(v any) bool {
	str, ok := v.(string)
	return ok && str == Any
}

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Unset is the zero op, a filter carrying it matches nothing.
	Unset FilterOp = iota

	// Logical operators
	Or

	// Comparison operators
	TextContainsOp     // case-insensitive substring
	EqualsOrWildcardOp // exact equality, or Any
	NumericAtMostOp    // <= threshold, or Any
)

var opNames = map[FilterOp]string{
	Or:                 "or",
	TextContainsOp:     "contains",
	EqualsOrWildcardOp: "==",
	NumericAtMostOp:    "<=",
}

// Ops lists the comparison operators in the order the filter panel cycles them.
var Ops = []FilterOp{
	TextContainsOp,
	EqualsOrWildcardOp,
	NumericAtMostOp,
}

func (op FilterOp) String() string {
	name, ok := opNames[op]
	if !ok {
		return "?"
	}
	return name
}

// MarshalText renders the op for config files.
func (op FilterOp) MarshalText() ([]byte, error) {
	if _, ok := opNames[op]; !ok {
		return nil, errors.Errorf("unknown filter op: %d", int(op))
	}
	return []byte(op.String()), nil
}

// UnmarshalText parses an op name as written by MarshalText.
func (op *FilterOp) UnmarshalText(text []byte) error {

	found, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*op = found
	return nil
}

// ParseOp finds the op with the given name.
// Long names such as "numeric_at_most" are accepted as well.
func ParseOp(name string) (FilterOp, error) {

	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "text_contains":
		return TextContainsOp, nil
	case "equals_or_wildcard", "equals":
		return EqualsOrWildcardOp, nil
	case "numeric_at_most", "at_most":
		return NumericAtMostOp, nil
	}

	for op, opName := range opNames {
		if opName == name {
			return op, nil
		}
	}
	return Unset, errors.Errorf("unknown filter op: %q", name)
}

// Filter is a single predicate on a job field.
// Or filters combine their Children and ignore Field and Value.
type Filter struct {
	Op       FilterOp `yaml:"op" json:"op"`
	Field    string   `yaml:"field,omitempty" json:"field,omitempty"`
	Value    any      `yaml:"value,omitempty" json:"value,omitempty"`
	Children []Filter `yaml:"children,omitempty" json:"children,omitempty"`
}

// TextContains matches records whose field contains needle, ignoring case.
func TextContains(field, needle string) Filter {
	return Filter{Op: TextContainsOp, Field: field, Value: needle}
}

// EqualsOrWildcard matches records whose field equals value, or all records when value is Any.
func EqualsOrWildcard(field string, value any) Filter {
	return Filter{Op: EqualsOrWildcardOp, Field: field, Value: value}
}

// NumericAtMost matches records whose numeric field is at most threshold,
// or all records when threshold is Any.
func NumericAtMost(field string, threshold any) Filter {
	return Filter{Op: NumericAtMostOp, Field: field, Value: threshold}
}

// AnyOf matches records matching at least one of children.
func AnyOf(children ...Filter) Filter {
	return Filter{Op: Or, Children: children}
}

// Search matches needle against any of fields, like a search box over title and description.
func Search(needle string, fields ...string) Filter {

	children := make([]Filter, len(fields))
	for i, field := range fields {
		children[i] = TextContains(field, needle)
	}
	return AnyOf(children...)
}

// Set is an ordered conjunction of filters; an empty Set matches everything.
// Sets are rebuilt rather than mutated when a control changes.
type Set []Filter

// With returns a new set with f appended.
func (set Set) With(f Filter) Set {
	out := make(Set, 0, len(set)+1)
	out = append(out, set...)
	return append(out, f)
}

// Without returns a new set minus any filter on field.
// Or filters are dropped when any child is on field.
func (set Set) Without(field string) Set {

	out := make(Set, 0, len(set))
	for _, f := range set {
		if f.On(field) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// On reports whether the filter constrains field.
func (f Filter) On(field string) bool {

	if f.Op != Or {
		return f.Field == field
	}
	for _, child := range f.Children {
		if child.On(field) {
			return true
		}
	}
	return false
}

// ValueCount is a facet value with the number of records carrying it.
type ValueCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}
