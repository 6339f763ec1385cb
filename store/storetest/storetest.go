// Package storetest checks a Store against the in-memory filter engine.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furrow"
	nt "furrow/entity"
	"furrow/facet"
	"furrow/mock"
)

// Sets are filter sets exercised against each store.
var Sets = map[string]nt.Set{
	"empty":          {},
	"title":          {nt.TextContains(nt.FieldTitle, "RICE")},
	"within five":    {nt.NumericAtMost(nt.FieldDistance, 5)},
	"within ten str": {nt.NumericAtMost(nt.FieldDistance, "10")},
	"any category":   {nt.EqualsOrWildcard(nt.FieldCategory, nt.Any)},
	"orchard":        {nt.EqualsOrWildcard(nt.FieldCategory, "Orchard")},
	"search":         {nt.Search("orchard", nt.FieldTitle, nt.FieldDescription)},
	"tag":            {nt.EqualsOrWildcard(nt.FieldTags, "Weekend")},
	"tag substring":  {nt.TextContains(nt.FieldTags, "meal")},
	"urgent":         {nt.EqualsOrWildcard(nt.FieldUrgent, true)},
	"applicants":     {nt.EqualsOrWildcard(nt.FieldApplicants, "5")},
	"residual":       {nt.TextContains(nt.FieldDistance, "2")},
	"bad threshold":  {nt.NumericAtMost(nt.FieldDistance, "near")},
	"nan threshold":  {nt.NumericAtMost(nt.FieldDistance, "NaN")},
	"nan applicants": {nt.EqualsOrWildcard(nt.FieldApplicants, "NaN")},
	"kelvin sign":    {nt.TextContains(nt.FieldTitle, "kiwi")},
	"folded needle":  {nt.Search("KİWİ", nt.FieldTitle, nt.FieldDescription)},
	"unknown field":  {nt.TextContains("colour", "red")},
	"combined": {
		nt.Search("a", nt.FieldTitle, nt.FieldDescription),
		nt.EqualsOrWildcard(nt.FieldCategory, nt.Any),
		nt.NumericAtMost(nt.FieldDistance, 25),
		nt.EqualsOrWildcard(nt.FieldStatus, "open"),
	},
}

// folding jobs have text that strings.ToLower folds beyond ascii.
var folding = []nt.Job{
	{ID: "k1", Title: "\u212Aiwi Picking", Description: "Orchard work", Category: "Orchard", Distance: 3, Status: "open"},
	{ID: "k2", Title: "Kİwİ Sorting", Description: "Packing shed", Category: "Packing", Distance: 12, Status: "open"},
}

// Run loads sample and generated jobs into store and checks that queries and
// facet counts agree with facet.Apply and facet.Counts.
func Run(t *testing.T, store furrow.Store) {
	t.Helper()

	ctx := context.Background()

	generated, err := mock.Generate(120, 7)
	require.NoError(t, err)
	jobs := append(mock.Sample(), generated...)
	jobs = append(jobs, folding...)

	err = store.Load(ctx, jobs)
	require.NoError(t, err)

	for name, set := range Sets {
		t.Run(name, func(t *testing.T) {

			got, err := store.Query(ctx, set)
			require.NoError(t, err)
			assert.Equal(t, ids(facet.Apply(jobs, set)), ids(got))

			for _, field := range []string{nt.FieldCategory, nt.FieldTags, nt.FieldDistance} {
				counts, err := store.Facets(ctx, set, field)
				require.NoError(t, err)
				assert.Equal(t, facet.Counts(jobs, set, field), counts, field)
			}
		})
	}

	t.Run("scenario", func(t *testing.T) {
		got, err := store.Query(ctx, nt.Set{nt.TextContains(nt.FieldTitle, "rice")})
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, []string{"Combine", "Experience"}, got[0].Tags)
	})

	t.Run("folding", func(t *testing.T) {
		got, err := store.Query(ctx, Sets["kelvin sign"])
		require.NoError(t, err)
		assert.Contains(t, ids(got), "k1")

		got, err = store.Query(ctx, Sets["nan threshold"])
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("reload replaces", func(t *testing.T) {
		err := store.Load(ctx, mock.Sample()[:2])
		require.NoError(t, err)

		got, err := store.Query(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids(got))
	})
}

func ids(jobs []nt.Job) []string {
	out := []string{}
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}
