package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {

	cases := []struct {
		raw    any
		expect string
	}{
		{nil, ""},
		{"plain", "plain"},
		{[]string{"Combine", "Experience"}, "Combine, Experience"},
		{2.5, "2.5"},
		{12.0, "12"},
		{3, "3"},
		{true, "true"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expect, Value{Raw: tc.raw}.String())
	}
}

func TestValueFloat(t *testing.T) {

	for _, raw := range []any{5, int8(5), int16(5), int32(5), int64(5), uint(5), uint8(5), uint16(5), uint32(5), uint64(5), float32(5), 5.0} {
		f, err := Value{Raw: raw}.Float()
		require.NoError(t, err, "%T", raw)
		assert.Equal(t, 5.0, f)
	}

	_, err := Value{Raw: "5"}.Float()
	assert.ErrorContains(t, err, "not numeric")
}

func TestValueNumber(t *testing.T) {

	f, err := Value{Raw: " 2.5 "}.Number()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	f, err = Value{Raw: 12}.Number()
	require.NoError(t, err)
	assert.Equal(t, 12.0, f)

	_, err = Value{Raw: "Any"}.Number()
	assert.Error(t, err)

	_, err = Value{Raw: true}.Number()
	assert.Error(t, err)
}

func TestValueBool(t *testing.T) {

	b, err := Value{Raw: true}.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Value{Raw: "true"}.Bool()
	assert.Error(t, err)
}

func TestValueTags(t *testing.T) {

	tags, ok := Value{Raw: []string{"a", "b"}}.Tags()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tags)

	tags, ok = Value{Raw: []any{"a", "b"}}.Tags()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tags)

	_, ok = Value{Raw: []any{"a", 1}}.Tags()
	assert.False(t, ok)

	_, ok = Value{Raw: "a"}.Tags()
	assert.False(t, ok)
}

func TestRecords(t *testing.T) {

	rec := MapRecord{ID: "x", Fields: map[string]any{"distance": 3}}
	assert.Equal(t, "x", rec.Key())

	val, ok := rec.Field("distance")
	assert.True(t, ok)
	assert.Equal(t, 3, val.Raw)

	_, ok = rec.Field("title")
	assert.False(t, ok)

	job := Job{ID: "j", Tags: []string{"Weekend"}, Urgent: true}
	assert.Equal(t, "j", job.Key())

	for _, field := range JobFields {
		_, ok := job.Field(field)
		assert.True(t, ok, field)
	}

	val, _ = job.Field(FieldTags)
	assert.Equal(t, "Weekend", val.String())

	_, ok = job.Field("nope")
	assert.False(t, ok)

	assert.Equal(t, "km", Column{Field: "distance", Title: "km"}.Heading())
	assert.Equal(t, "distance", Column{Field: "distance"}.Heading())
}
