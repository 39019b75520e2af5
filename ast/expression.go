package ast

// LiteralKind distinguishes the spelling family of a Literal value (spec
// §3.4: "literal (number|string|boolean|null|keyword literal)").
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBoolean
	LiteralNull
	LiteralKeyword // current_date, current_timestamp, current_time; never unbounded
)

// ColumnRef is a (possibly namespaced) column reference, or the bare `*`
// wildcard when Star is true (spec §3.4).
type ColumnRef struct {
	Namespaces []string
	Name       string
	Star       bool
}

func (*ColumnRef) Kind() NodeKind  { return KindColumnRef }
func (*ColumnRef) valueExprNode() {}

// Literal is a number, string, boolean, null, or keyword-literal value.
// Value carries the canonical text (for LiteralString, the unescaped
// contents; for LiteralNumber, the normalized digits).
type Literal struct {
	SubKind LiteralKind
	Value   string
}

func (*Literal) Kind() NodeKind  { return KindLiteral }
func (*Literal) valueExprNode() {}

// UnaryExpr is a prefix operator applied to one operand (`-x`, `not x`,
// `~x`). Operator is always the lower-cased canonical spelling.
type UnaryExpr struct {
	Operator string
	Operand  ValueExpr
}

func (*UnaryExpr) Kind() NodeKind  { return KindUnaryExpr }
func (*UnaryExpr) valueExprNode() {}

// BinaryExpr is a two-operand expression; Operator is always the
// lower-cased canonical spelling (spec §3.4).
type BinaryExpr struct {
	Operator string
	Left     ValueExpr
	Right    ValueExpr
}

func (*BinaryExpr) Kind() NodeKind  { return KindBinaryExpr }
func (*BinaryExpr) valueExprNode() {}

// ParenExpr is an explicitly parenthesized single value, kept distinct from
// its inner expression so the printer can reproduce the parentheses.
type ParenExpr struct {
	Expr ValueExpr
}

func (*ParenExpr) Kind() NodeKind  { return KindParenExpr }
func (*ParenExpr) valueExprNode() {}

// OverClause is a function call's optional `OVER (...)` trailer: either a
// reference to a named WINDOW definition, or an inline frame expression,
// never both (spec §3.4).
type OverClause struct {
	WindowName string                 // set when OVER refers to a named window
	Frame      *WindowFrameExpression // set when OVER is inline
}

// FunctionCall is a (possibly namespaced) function invocation with an
// argument tuple and an optional OVER clause (spec §3.4, §4.4.2).
type FunctionCall struct {
	Namespaces []string
	Name       string
	Distinct   bool
	Args       []ValueExpr
	Over       *OverClause
}

func (*FunctionCall) Kind() NodeKind  { return KindFunctionCall }
func (*FunctionCall) valueExprNode() {}

// CastExpr represents both `x::T` and `CAST(x AS T)` forms; the printer
// distinguishes them via UsesCastKeyword.
type CastExpr struct {
	Expr            ValueExpr
	Type            *TypeValue
	UsesCastKeyword bool
}

func (*CastExpr) Kind() NodeKind  { return KindCastExpr }
func (*CastExpr) valueExprNode() {}

// BetweenExpr is `expr [NOT] BETWEEN low AND high` (spec §3.4, §4.4.2).
type BetweenExpr struct {
	Negated bool
	Expr    ValueExpr
	Low     ValueExpr
	High    ValueExpr
}

func (*BetweenExpr) Kind() NodeKind  { return KindBetweenExpr }
func (*BetweenExpr) valueExprNode() {}

// CaseWhen is one `WHEN cond THEN result` arm of a CaseExpr.
type CaseWhen struct {
	Cond   ValueExpr
	Result ValueExpr
}

func (*CaseWhen) Kind() NodeKind { return KindCaseWhen }

// CaseExpr is a CASE expression in either searched form (Operand is nil) or
// simple form (Operand set, each Whens[i].Cond compared for equality against
// it) plus an optional ELSE (spec §3.4).
type CaseExpr struct {
	Operand ValueExpr // nil for the searched form
	Whens   []*CaseWhen
	Else    ValueExpr
}

func (*CaseExpr) Kind() NodeKind  { return KindCaseExpr }
func (*CaseExpr) valueExprNode() {}

// TupleExpr is a parenthesized, ordered group of values: a scalar grouping
// with more than one element, or one row of a VALUES list (spec §3.2, §3.4).
type TupleExpr struct {
	Items []ValueExpr
}

func (*TupleExpr) Kind() NodeKind  { return KindTupleExpr }
func (*TupleExpr) valueExprNode() {}

// ValueList is an ordered list of values used where the grouping is
// semantic rather than a tuple in its own right: the parser builds one for
// the right-hand side of `IN (1, 2, 3)` (spec §3.4).
type ValueList struct {
	Items []ValueExpr
}

func (*ValueList) Kind() NodeKind  { return KindValueList }
func (*ValueList) valueExprNode() {}

// ArrayConstructor is `ARRAY[e1, e2, ...]`.
type ArrayConstructor struct {
	Elements []ValueExpr
}

func (*ArrayConstructor) Kind() NodeKind  { return KindArrayConstructor }
func (*ArrayConstructor) valueExprNode() {}

// SubqueryExpr is a SelectQuery used in value position (e.g. a scalar
// subquery, or the right-hand side of `IN (SELECT ...)`).
type SubqueryExpr struct {
	Query SelectQuery
}

func (*SubqueryExpr) Kind() NodeKind  { return KindSubqueryExpr }
func (*SubqueryExpr) valueExprNode() {}

// Parameter is a placeholder reference with its sigil stripped. Anonymous
// is true for the bare `?` form, in which case Name is empty.
type Parameter struct {
	Name      string
	Anonymous bool
}

func (*Parameter) Kind() NodeKind  { return KindParameter }
func (*Parameter) valueExprNode() {}

// TypeValue is a (possibly namespaced, possibly parameterized) type name,
// used both as a CAST target and as a standalone value-position type
// literal (spec §3.4).
type TypeValue struct {
	Namespaces []string
	Name       string
	Args       []ValueExpr // e.g. the (10, 2) of numeric(10,2); nil if none
}

func (*TypeValue) Kind() NodeKind  { return KindTypeValue }
func (*TypeValue) valueExprNode() {}

// StringSpecifierValue pairs a string-specifier prefix (`e`, `x`, `b`,
// `u&`) with the literal it introduces, kept as two logically adjacent
// pieces per the §9 open-question resolution recorded in DESIGN.md.
type StringSpecifierValue struct {
	Specifier string
	Literal   *Literal
}

func (*StringSpecifierValue) Kind() NodeKind  { return KindStringSpecifierValue }
func (*StringSpecifierValue) valueExprNode() {}

// GroupingSetsExpr represents a `GROUPING SETS (...)`, `ROLLUP (...)`, or
// `CUBE (...)` element of a GROUP BY list. SetKind is the lower-cased
// canonical keyword ("grouping sets" | "rollup" | "cube"); each entry of
// Sets is one parenthesized group of columns (a single-column group is a
// one-element slice).
type GroupingSetsExpr struct {
	SetKind string
	Sets    [][]ValueExpr
}

func (*GroupingSetsExpr) Kind() NodeKind  { return KindGroupingSetsExpr }
func (*GroupingSetsExpr) valueExprNode() {}
