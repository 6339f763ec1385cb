package furrow

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "furrow/entity"
	"furrow/filter"
)

// Layout is what the list shows and which filters the filter panel offers.
type Layout struct {
	Columns []nt.Column  `yaml:"columns"`
	Filters []filter.Row `yaml:"filters"`
	Facet   string       `yaml:"facet,omitempty"`
}

// DefaultLayout mirrors the work list page: search, category, distance and tag controls.
func DefaultLayout() *Layout {

	return &Layout{
		Columns: []nt.Column{
			{Field: nt.FieldTitle, Width: 36},
			{Field: nt.FieldCategory, Width: 12},
			{Field: nt.FieldDistance, Title: "dist", Width: 6},
			{Field: nt.FieldPrice, Width: 18},
			{Field: nt.FieldDate, Width: 14},
			{Field: nt.FieldUrgent, Width: 6},
			{Field: nt.FieldTags, Width: 24},
			{Field: nt.FieldStatus, Width: 8, Hidden: true},
		},
		Filters: []filter.Row{
			{Fields: []string{nt.FieldTitle, nt.FieldDescription}, Op: nt.TextContainsOp, Enabled: true},
			{Field: nt.FieldCategory, Op: nt.EqualsOrWildcardOp, Value: nt.Any, Enabled: true},
			{Field: nt.FieldDistance, Op: nt.NumericAtMostOp, Value: nt.Any, Enabled: true},
			{Field: nt.FieldTags, Op: nt.EqualsOrWildcardOp, Value: nt.Any, Enabled: true},
			{Field: nt.FieldStatus, Op: nt.EqualsOrWildcardOp, Value: nt.Any},
			{Field: nt.FieldUrgent, Op: nt.EqualsOrWildcardOp, Value: "true"},
		},
		Facet: nt.FieldCategory,
	}
}

// LoadLayout reads a layout file, filling what it leaves out from DefaultLayout.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = DefaultLayout()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read layout")
		return
	}

	loaded := &Layout{}
	err = yaml.Unmarshal(data, loaded)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse layout from %s", path)
		return
	}

	layout.merge(loaded)
	return
}

// Set builds the filter set from the layout's enabled filter rows.
func (layout *Layout) Set() nt.Set {
	return filter.Set(layout.Filters)
}

// unexported

func (layout *Layout) merge(other *Layout) {

	if len(other.Columns) > 0 {
		layout.Columns = other.Columns
	}
	if len(other.Filters) > 0 {
		layout.Filters = other.Filters
	}
	if other.Facet != "" {
		layout.Facet = other.Facet
	}
}
