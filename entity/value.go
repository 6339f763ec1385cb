package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
// Tag sets are joined with ", ".
func (v Value) String() string {
	switch raw := v.Raw.(type) {
	case nil:
		return ""
	case string:
		return raw
	case []string:
		return strings.Join(raw, ", ")
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Float returns the value as a float64 when it holds any numeric kind.
func (v Value) Float() (float64, error) {

	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case float32:
		return float64(raw), nil
	case int:
		return float64(raw), nil
	case int8:
		return float64(raw), nil
	case int16:
		return float64(raw), nil
	case int32:
		return float64(raw), nil
	case int64:
		return float64(raw), nil
	case uint:
		return float64(raw), nil
	case uint8:
		return float64(raw), nil
	case uint16:
		return float64(raw), nil
	case uint32:
		return float64(raw), nil
	case uint64:
		return float64(raw), nil
	}
	return 0, errors.Errorf("value is not numeric: %T", v.Raw)
}

// Number is like Float, but also parses numeric strings such as "5" or " 2.5 ".
// It is meant for thresholds arriving from select boxes and config files.
func (v Value) Number() (float64, error) {

	str, ok := v.Raw.(string)
	if !ok {
		return v.Float()
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "value is not a number: %q", str)
	}
	return f, nil
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Tags returns the value as a tag set, ok is false when it is not one.
func (v Value) Tags() (tags []string, ok bool) {

	switch raw := v.Raw.(type) {
	case []string:
		return raw, true
	case []any:
		tags = make([]string, 0, len(raw))
		for _, item := range raw {
			str, isStr := item.(string)
			if !isStr {
				return nil, false
			}
			tags = append(tags, str)
		}
		return tags, true
	}
	return nil, false
}
