package entity

// Column describes how a job field is shown in the list panel.
type Column struct {
	Field  string `yaml:"field"`
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Heading returns the title, falling back to the field name.
func (col Column) Heading() string {
	if col.Title != "" {
		return col.Title
	}
	return col.Field
}
