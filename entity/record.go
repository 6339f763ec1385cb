package entity

// Record is one listing as seen by the filter engine.
// Records are treated as read-only once loaded.
type Record interface {
	// Key returns a stable unique identity.
	Key() string
	// Field returns the named field, ok is false when the record has no such field.
	Field(name string) (val Value, ok bool)
}

// MapRecord is a Record backed by a loosely typed field map.
type MapRecord struct {
	ID     string         `json:"id" yaml:"id"`
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// Key returns the record's id.
func (rec MapRecord) Key() string {
	return rec.ID
}

// Field looks up a field by name.
func (rec MapRecord) Field(name string) (Value, bool) {
	raw, ok := rec.Fields[name]
	if !ok {
		return Value{}, false
	}
	return Value{Raw: raw}, true
}
