// Package facet filters and counts records against a filter set.
//
// Everything here is pure: input records are never modified, results are new slices,
// and a predicate that cannot be evaluated for a record simply does not match it.
package facet

import (
	"cmp"
	"slices"
	"strings"

	nt "furrow/entity"
)

// Apply returns the records matching every filter in the set, in input order.
func Apply[R nt.Record](records []R, filters nt.Set) []R {

	out := make([]R, 0, len(records))
	for _, rec := range records {
		if MatchAll(rec, filters) {
			out = append(out, rec)
		}
	}
	return out
}

// MatchAll reports whether rec satisfies every filter in the set.
func MatchAll(rec nt.Record, filters nt.Set) bool {

	for _, f := range filters {
		if !Match(rec, f) {
			return false
		}
	}
	return true
}

// Match reports whether rec satisfies a single filter.
func Match(rec nt.Record, f nt.Filter) bool {

	switch f.Op {
	case nt.Or:
		if len(f.Children) == 0 {
			return true
		}
		for _, child := range f.Children {
			if Match(rec, child) {
				return true
			}
		}
		return false
	case nt.TextContainsOp:
		return textContains(rec, f)
	case nt.EqualsOrWildcardOp:
		return equalsOrWildcard(rec, f)
	case nt.NumericAtMostOp:
		return numericAtMost(rec, f)
	}
	return false
}

// Counts tallies the values of field among records matching the set, ignoring
// filters on field itself so that picking one value leaves its siblings visible.
// Tags are counted individually. Results are ordered by count, then value.
func Counts[R nt.Record](records []R, filters nt.Set, field string) []nt.ValueCount {

	others := filters.Without(field)
	tally := map[string]int{}

	for _, rec := range records {
		if !MatchAll(rec, others) {
			continue
		}
		val, ok := rec.Field(field)
		if !ok {
			continue
		}
		for _, key := range facetKeys(val) {
			tally[key]++
		}
	}

	counts := make([]nt.ValueCount, 0, len(tally))
	for val, count := range tally {
		counts = append(counts, nt.ValueCount{Value: val, Count: count})
	}
	slices.SortFunc(counts, func(a, b nt.ValueCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return counts
}

// unexported

func textContains(rec nt.Record, f nt.Filter) bool {

	needle, ok := f.Value.(string)
	if !ok {
		return false
	}
	val, ok := rec.Field(f.Field)
	if !ok {
		return false
	}
	needle = strings.ToLower(needle)

	if tags, isTags := val.Tags(); isTags {
		if needle == "" {
			return true
		}
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(val.String()), needle)
}

func equalsOrWildcard(rec nt.Record, f nt.Filter) bool {

	if nt.IsAny(f.Value) {
		return true
	}
	if f.Value == nil {
		return false
	}
	val, ok := rec.Field(f.Field)
	if !ok {
		return false
	}
	want := nt.Value{Raw: f.Value}

	if tags, isTags := val.Tags(); isTags {
		str, isStr := f.Value.(string)
		return isStr && slices.Contains(tags, str)
	}

	if got, err := val.Float(); err == nil {
		num, err := want.Number()
		return err == nil && got == num
	}

	switch got := val.Raw.(type) {
	case string:
		str, isStr := f.Value.(string)
		return isStr && got == str
	case bool:
		b, err := want.Bool()
		return err == nil && got == b
	}
	return false
}

func numericAtMost(rec nt.Record, f nt.Filter) bool {

	if nt.IsAny(f.Value) {
		return true
	}
	threshold, err := nt.Value{Raw: f.Value}.Number()
	if err != nil {
		return false
	}
	val, ok := rec.Field(f.Field)
	if !ok {
		return false
	}
	num, err := val.Float()
	if err != nil {
		return false
	}
	return num <= threshold
}

func facetKeys(val nt.Value) []string {

	if tags, ok := val.Tags(); ok {
		keys := make([]string, 0, len(tags))
		for _, tag := range tags {
			if tag != "" && !slices.Contains(keys, tag) {
				keys = append(keys, tag)
			}
		}
		return keys
	}

	key := val.String()
	if key == "" {
		return nil
	}
	return []string{key}
}
