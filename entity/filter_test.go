package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseOp(t *testing.T) {

	cases := []struct {
		name   string
		expect FilterOp
	}{
		{"contains", TextContainsOp},
		{"text_contains", TextContainsOp},
		{"==", EqualsOrWildcardOp},
		{" Equals ", EqualsOrWildcardOp},
		{"<=", NumericAtMostOp},
		{"numeric_at_most", NumericAtMostOp},
		{"or", Or},
	}

	for _, tc := range cases {
		op, err := ParseOp(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expect, op, tc.name)
	}

	_, err := ParseOp("between")
	assert.ErrorContains(t, err, "unknown filter op")
}

func TestOpText(t *testing.T) {

	assert.Equal(t, "?", Unset.String())
	assert.Equal(t, "<=", NumericAtMostOp.String())

	_, err := Unset.MarshalText()
	assert.Error(t, err)

	row := struct {
		Op FilterOp `yaml:"op"`
	}{}
	require.NoError(t, yaml.Unmarshal([]byte(`op: "<="`), &row))
	assert.Equal(t, NumericAtMostOp, row.Op)

	data, err := yaml.Marshal(row)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<=")

	assert.Error(t, yaml.Unmarshal([]byte("op: between"), &row))
}

func TestIsAny(t *testing.T) {

	assert.True(t, IsAny(Any))
	assert.False(t, IsAny("any"))
	assert.False(t, IsAny("All"))
	assert.False(t, IsAny(nil))
}

func TestConstructors(t *testing.T) {

	assert.Equal(t, Filter{Op: TextContainsOp, Field: "title", Value: "rice"}, TextContains("title", "rice"))
	assert.Equal(t, Filter{Op: EqualsOrWildcardOp, Field: "category", Value: Any}, EqualsOrWildcard("category", Any))
	assert.Equal(t, Filter{Op: NumericAtMostOp, Field: "distance", Value: 5}, NumericAtMost("distance", 5))

	search := Search("rice", "title", "description")
	assert.Equal(t, Or, search.Op)
	assert.Equal(t, []Filter{TextContains("title", "rice"), TextContains("description", "rice")}, search.Children)
}

func TestSet(t *testing.T) {

	base := Set{
		Search("rice", "title", "description"),
		EqualsOrWildcard("category", "Field"),
	}

	t.Run("with copies", func(t *testing.T) {
		grown := base.With(NumericAtMost("distance", 5))
		assert.Len(t, grown, 3)
		assert.Len(t, base, 2)

		grown[0] = EqualsOrWildcard("status", "open")
		assert.Equal(t, Or, base[0].Op)
	})

	t.Run("without", func(t *testing.T) {
		assert.Equal(t, Set{Search("rice", "title", "description")}, base.Without("category"))
		assert.Equal(t, Set{EqualsOrWildcard("category", "Field")}, base.Without("description"))
		assert.Len(t, base.Without("distance"), 2)
		assert.Len(t, base, 2)
	})

	t.Run("on", func(t *testing.T) {
		assert.True(t, base[0].On("title"))
		assert.False(t, base[0].On("category"))
		assert.True(t, base[1].On("category"))
	})
}
