// Package sqlbuild pushes filter sets down into SQL for the jobs table.
//
// The SQL produced matches facet.Match for every predicate it claims; anything it
// cannot express is handed back as a residual set for the caller to apply in Go.
package sqlbuild

import (
	"fmt"
	"math"
	"strings"

	nt "furrow/entity"
)

// Kind is the storage shape of a column.
type Kind int

const (
	Text Kind = iota
	Number
	Bool
	Tags
)

// Column maps a record field onto a table column.
type Column struct {
	Name string
	Kind Kind
}

// JobColumns maps job fields onto the jobs table.
var JobColumns = map[string]Column{
	nt.FieldTitle:       {Name: "title", Kind: Text},
	nt.FieldDescription: {Name: "description", Kind: Text},
	nt.FieldCategory:    {Name: "category", Kind: Text},
	nt.FieldPrice:       {Name: "price", Kind: Text},
	nt.FieldPriceType:   {Name: "price_type", Kind: Text},
	nt.FieldLocation:    {Name: "location", Kind: Text},
	nt.FieldDistance:    {Name: "distance", Kind: Number},
	nt.FieldDate:        {Name: "date", Kind: Text},
	nt.FieldTime:        {Name: "time", Kind: Text},
	nt.FieldTags:        {Name: "tags", Kind: Tags},
	nt.FieldUrgent:      {Name: "urgent", Kind: Bool},
	nt.FieldApplicants:  {Name: "applicants", Kind: Number},
	nt.FieldStatus:      {Name: "status", Kind: Text},
}

// TagSep separates tags in the tags column.
const TagSep = "|"

const never = "1 = 0"

// Clause is a rendered filter set.
type Clause struct {
	Where    string // "WHERE ..." or empty
	Args     []any
	Residual nt.Set // filters left for the caller
}

// Dialect is what a database can evaluate exactly as facet.Match does.
type Dialect struct {
	// Lower names a sql function folding case as strings.ToLower does.
	// Text search is left residual when empty.
	Lower string
}

// Build renders the set against columns.
func Build(set nt.Set, columns map[string]Column, dialect Dialect) (clause Clause) {

	exprs := []string{}
	for _, f := range set {
		expr, args, ok := render(f, columns, dialect)
		if !ok {
			clause.Residual = append(clause.Residual, f)
			continue
		}
		if expr == "" {
			continue
		}
		exprs = append(exprs, expr)
		clause.Args = append(clause.Args, args...)
	}

	if len(exprs) > 0 {
		clause.Where = "WHERE " + strings.Join(exprs, " AND ")
	}
	return
}

// And appends expr to the clause's conditions.
func (clause Clause) And(expr string) string {
	if clause.Where == "" {
		return "WHERE " + expr
	}
	return clause.Where + " AND " + expr
}

// Quote quotes an identifier.
func Quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// unexported

// render returns an expression for f, "" meaning no constraint, ok false when f cannot be pushed down.
func render(f nt.Filter, columns map[string]Column, dialect Dialect) (expr string, args []any, ok bool) {

	if f.Op == nt.Or {
		return renderOr(f, columns, dialect)
	}

	col, known := columns[f.Field]
	if !known {
		return never, nil, true
	}
	name := Quote(col.Name)

	switch f.Op {
	case nt.TextContainsOp:
		needle, isStr := f.Value.(string)
		switch {
		case !isStr:
			return never, nil, true
		case col.Kind != Text && col.Kind != Tags:
			return "", nil, false
		case needle == "":
			return "", nil, true
		case dialect.Lower == "" || (col.Kind == Tags && strings.Contains(needle, TagSep)):
			// a separator would match across tags
			return "", nil, false
		}
		expr = fmt.Sprintf("instr(%s(%s), ?) > 0", dialect.Lower, name)
		return expr, []any{strings.ToLower(needle)}, true

	case nt.EqualsOrWildcardOp:
		if nt.IsAny(f.Value) {
			return "", nil, true
		}
		return renderEquals(name, col.Kind, f.Value)

	case nt.NumericAtMostOp:
		if nt.IsAny(f.Value) {
			return "", nil, true
		}
		threshold, err := nt.Value{Raw: f.Value}.Number()
		if err != nil || math.IsNaN(threshold) || col.Kind != Number {
			return never, nil, true
		}
		return fmt.Sprintf("%s <= ?", name), []any{threshold}, true
	}

	return never, nil, true
}

func renderEquals(name string, kind Kind, value any) (expr string, args []any, ok bool) {

	val := nt.Value{Raw: value}

	switch kind {
	case Text:
		str, isStr := value.(string)
		if !isStr {
			return never, nil, true
		}
		return fmt.Sprintf("%s = ?", name), []any{str}, true

	case Tags:
		str, isStr := value.(string)
		if !isStr || str == "" {
			return never, nil, true
		}
		if strings.Contains(str, TagSep) {
			return "", nil, false
		}
		expr = fmt.Sprintf("instr('%s' || %s || '%s', ?) > 0", TagSep, name, TagSep)
		return expr, []any{TagSep + str + TagSep}, true

	case Number:
		num, err := val.Number()
		if err != nil || math.IsNaN(num) {
			return never, nil, true
		}
		return fmt.Sprintf("%s = ?", name), []any{num}, true

	case Bool:
		b, err := val.Bool()
		if err != nil {
			return never, nil, true
		}
		return fmt.Sprintf("%s = ?", name), []any{b}, true
	}

	return never, nil, true
}

func renderOr(f nt.Filter, columns map[string]Column, dialect Dialect) (expr string, args []any, ok bool) {

	exprs := []string{}
	for _, child := range f.Children {
		childExpr, childArgs, childOk := render(child, columns, dialect)
		if !childOk {
			return "", nil, false
		}
		if childExpr == "" {
			// one unconstrained branch satisfies the whole or
			return "", nil, true
		}
		exprs = append(exprs, childExpr)
		args = append(args, childArgs...)
	}

	if len(exprs) == 0 {
		return "", nil, true
	}
	return "(" + strings.Join(exprs, " OR ") + ")", args, true
}
