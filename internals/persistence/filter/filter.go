// Package filter is the closed predicate language the query layer accepts:
// six comparisons over a named record field, combined with And/Or/Not.
// Translate rewrites a predicate into a SQL fragment using a record-field →
// column map, so filtering is pushed down to the store. A field with no
// column behind it fails translation outright; silently dropping a term
// would return over-broad results.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedField marks a predicate term referencing a record field
// the paired entity does not have (derived/computed fields). Raised before
// any store round trip.
var ErrUnsupportedField = errors.New("filter: unsupported record field")

type Op string

const (
	OpEq Op = "="
	OpNe Op = "<>"
	OpGt Op = ">"
	OpGe Op = ">="
	OpLt Op = "<"
	OpLe Op = "<="
)

// Expr is a predicate tree node. The variant set is closed on purpose:
// every node translates to exactly one SQL fragment.
type Expr interface {
	isExpr()
}

type Cmp struct {
	Field string
	Op    Op
	Value any
}

type AndExpr struct{ Exprs []Expr }
type OrExpr struct{ Exprs []Expr }
type NotExpr struct{ Expr Expr }

func (Cmp) isExpr()     {}
func (AndExpr) isExpr() {}
func (OrExpr) isExpr()  {}
func (NotExpr) isExpr() {}

func Eq(field string, v any) Expr { return Cmp{Field: field, Op: OpEq, Value: v} }
func Ne(field string, v any) Expr { return Cmp{Field: field, Op: OpNe, Value: v} }
func Gt(field string, v any) Expr { return Cmp{Field: field, Op: OpGt, Value: v} }
func Ge(field string, v any) Expr { return Cmp{Field: field, Op: OpGe, Value: v} }
func Lt(field string, v any) Expr { return Cmp{Field: field, Op: OpLt, Value: v} }
func Le(field string, v any) Expr { return Cmp{Field: field, Op: OpLe, Value: v} }

func And(exprs ...Expr) Expr { return AndExpr{Exprs: exprs} }
func Or(exprs ...Expr) Expr  { return OrExpr{Exprs: exprs} }
func Not(e Expr) Expr        { return NotExpr{Expr: e} }

// Translate renders e as a parenthesized SQL condition with ? placeholders
// and the matching argument list. columns maps record field names to the
// entity's column names.
func Translate(e Expr, columns map[string]string) (string, []any, error) {
	switch t := e.(type) {
	case Cmp:
		col, ok := columns[t.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedField, t.Field)
		}
		return fmt.Sprintf("%s %s ?", col, t.Op), []any{t.Value}, nil
	case AndExpr:
		return translateList(t.Exprs, " AND ", "(1 = 1)", columns)
	case OrExpr:
		return translateList(t.Exprs, " OR ", "(1 = 0)", columns)
	case NotExpr:
		sql, args, err := Translate(t.Expr, columns)
		if err != nil {
			return "", nil, err
		}
		return "NOT (" + sql + ")", args, nil
	default:
		return "", nil, fmt.Errorf("filter: unknown expression %T", e)
	}
}

func translateList(exprs []Expr, sep, empty string, columns map[string]string) (string, []any, error) {
	if len(exprs) == 0 {
		// empty AND is true, empty OR is false
		return empty, nil, nil
	}
	parts := make([]string, 0, len(exprs))
	var args []any
	for _, e := range exprs {
		sql, a, err := Translate(e, columns)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, a...)
	}
	return "(" + strings.Join(parts, sep) + ")", args, nil
}
