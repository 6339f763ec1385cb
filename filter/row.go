package filter

import (
	"strings"

	nt "furrow/entity"
)

// Row is one editable filter in the panel.
// A text row with several Fields searches them all, like the work list search box.
type Row struct {
	Field   string      `yaml:"field"`
	Fields  []string    `yaml:"fields,omitempty"`
	Op      nt.FilterOp `yaml:"op"`
	Value   string      `yaml:"value"`
	Enabled bool        `yaml:"enabled"`
}

// Label returns the field name shown in the panel.
func (row Row) Label() string {
	if row.Field != "" {
		return row.Field
	}
	return strings.Join(row.Fields, "|")
}

// Filter converts the row into a predicate.
func (row Row) Filter() nt.Filter {

	if len(row.Fields) > 0 {
		children := make([]nt.Filter, len(row.Fields))
		for i, field := range row.Fields {
			children[i] = Row{Field: field, Op: row.Op, Value: row.Value}.Filter()
		}
		return nt.AnyOf(children...)
	}

	var value any = row.Value
	if row.Op == nt.EqualsOrWildcardOp {
		value = coerce(row.Value)
	}
	return nt.Filter{
		Op:    row.Op,
		Field: row.Field,
		Value: value,
	}
}

// Set builds a new filter set from the enabled rows.
func Set(rows []Row) nt.Set {

	set := nt.Set{}
	for _, row := range rows {
		if row.Enabled {
			set = set.With(row.Filter())
		}
	}
	return set
}

// Controls are the work list page's search box and select boxes.
// Empty Category, Distance or Tag mean Any.
type Controls struct {
	Search   string
	Category string
	Distance string
	Tag      string
	Status   string
}

// Set builds the filter set the work list page applies.
func (ctl Controls) Set() nt.Set {

	return nt.Set{
		nt.Search(ctl.Search, nt.FieldTitle, nt.FieldDescription),
		nt.EqualsOrWildcard(nt.FieldCategory, orAny(ctl.Category)),
		nt.NumericAtMost(nt.FieldDistance, orAny(ctl.Distance)),
		nt.EqualsOrWildcard(nt.FieldTags, orAny(ctl.Tag)),
		nt.EqualsOrWildcard(nt.FieldStatus, orAny(ctl.Status)),
	}
}

// unexported

func orAny(value string) string {
	if value == "" {
		return nt.Any
	}
	return value
}

func coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
