package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/ast"
)

func mustParseValue(t *testing.T, text string) ast.ValueExpr {
	t.Helper()
	v, err := ParseValue(text)
	require.NoError(t, err)
	return v
}

func TestPrecedenceMultiplicationOverAddition(t *testing.T) {
	v := mustParseValue(t, "1 + 2 * 3")
	bin := v.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Operator)
	assert.Equal(t, "1", bin.Left.(*ast.Literal).Value)
	rhs := bin.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", rhs.Operator)
	assert.Equal(t, "2", rhs.Left.(*ast.Literal).Value)
	assert.Equal(t, "3", rhs.Right.(*ast.Literal).Value)
}

func TestPrecedenceAndOverOr(t *testing.T) {
	v := mustParseValue(t, "a or b and c")
	bin := v.(*ast.BinaryExpr)
	assert.Equal(t, "or", bin.Operator)
	assert.Equal(t, "a", bin.Left.(*ast.ColumnRef).Name)
	rhs := bin.Right.(*ast.BinaryExpr)
	assert.Equal(t, "and", rhs.Operator)
}

func TestEqualPrecedenceLeftAssociative(t *testing.T) {
	v := mustParseValue(t, "1 - 2 - 3")
	outer := v.(*ast.BinaryExpr)
	assert.Equal(t, "-", outer.Operator)
	inner, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok, "left-associative chain nests on the left")
	assert.Equal(t, "1", inner.Left.(*ast.Literal).Value)
	assert.Equal(t, "2", inner.Right.(*ast.Literal).Value)
	assert.Equal(t, "3", outer.Right.(*ast.Literal).Value)
}

func TestBetweenScopeExcludesTrailingAnd(t *testing.T) {
	v := mustParseValue(t, "x between a and b and c")
	outer := v.(*ast.BinaryExpr)
	assert.Equal(t, "and", outer.Operator)
	between, ok := outer.Left.(*ast.BetweenExpr)
	require.True(t, ok, "the first AND belongs to BETWEEN, the second is the outer AND")
	assert.False(t, between.Negated)
	assert.Equal(t, "a", between.Low.(*ast.ColumnRef).Name)
	assert.Equal(t, "b", between.High.(*ast.ColumnRef).Name)
	assert.Equal(t, "c", outer.Right.(*ast.ColumnRef).Name)
}

func TestNotBetween(t *testing.T) {
	v := mustParseValue(t, "x not between 1 and 10")
	between := v.(*ast.BetweenExpr)
	assert.True(t, between.Negated)
}

func TestCastOperatorForm(t *testing.T) {
	v := mustParseValue(t, "x::int")
	cast := v.(*ast.CastExpr)
	assert.False(t, cast.UsesCastKeyword)
	assert.Equal(t, "int", cast.Type.Name)
}

func TestCastKeywordForm(t *testing.T) {
	v := mustParseValue(t, "cast(x as numeric(10, 2))")
	cast := v.(*ast.CastExpr)
	assert.True(t, cast.UsesCastKeyword)
	assert.Equal(t, "numeric", cast.Type.Name)
	require.Len(t, cast.Type.Args, 2)
	assert.Equal(t, "10", cast.Type.Args[0].(*ast.Literal).Value)
}

func TestCaseSearchedForm(t *testing.T) {
	v := mustParseValue(t, "case when a = 1 then 'x' when a = 2 then 'y' else 'z' end")
	c := v.(*ast.CaseExpr)
	assert.Nil(t, c.Operand)
	require.Len(t, c.Whens, 2)
	assert.NotNil(t, c.Else)
}

func TestCaseSimpleForm(t *testing.T) {
	v := mustParseValue(t, "case a when 1 then 'one' end")
	c := v.(*ast.CaseExpr)
	require.NotNil(t, c.Operand)
	assert.Equal(t, "a", c.Operand.(*ast.ColumnRef).Name)
}

func TestInListProducesValueList(t *testing.T) {
	v := mustParseValue(t, "a in (1, 2, 3)")
	bin := v.(*ast.BinaryExpr)
	assert.Equal(t, "in", bin.Operator)
	list, ok := bin.Right.(*ast.ValueList)
	require.True(t, ok)
	assert.Len(t, list.Items, 3)
}

func TestInSubquery(t *testing.T) {
	v := mustParseValue(t, "a in (select b from t)")
	bin := v.(*ast.BinaryExpr)
	sub, ok := bin.Right.(*ast.SubqueryExpr)
	require.True(t, ok)
	_, ok = sub.Query.(*ast.SimpleSelectQuery)
	assert.True(t, ok)
}

func TestParenthesizedTupleIsTupleExpr(t *testing.T) {
	v := mustParseValue(t, "(1, 2)")
	tup, ok := v.(*ast.TupleExpr)
	require.True(t, ok)
	assert.Len(t, tup.Items, 2)
}

func TestParenthesizedSingleValueIsParenExpr(t *testing.T) {
	v := mustParseValue(t, "(1 + 2)")
	_, ok := v.(*ast.ParenExpr)
	assert.True(t, ok)
}

func TestExistsSubquery(t *testing.T) {
	v := mustParseValue(t, "exists (select 1 from t)")
	u := v.(*ast.UnaryExpr)
	assert.Equal(t, "exists", u.Operator)
	_, ok := u.Operand.(*ast.SubqueryExpr)
	assert.True(t, ok)
}

func TestUnaryNotBindsTighterThanAnd(t *testing.T) {
	v := mustParseValue(t, "not a = 1 and b")
	outer := v.(*ast.BinaryExpr)
	assert.Equal(t, "and", outer.Operator)
	not, ok := outer.Left.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "not", not.Operator)
	_, ok = not.Operand.(*ast.BinaryExpr)
	assert.True(t, ok, "not's operand should absorb the comparison but not the trailing and")
}

func TestFunctionCallWithDistinctAndStar(t *testing.T) {
	v := mustParseValue(t, "count(*)")
	call := v.(*ast.FunctionCall)
	assert.Equal(t, "count", call.Name)
	require.Len(t, call.Args, 1)
	assert.True(t, call.Args[0].(*ast.ColumnRef).Star)
}

func TestFunctionCallWithOverClause(t *testing.T) {
	v := mustParseValue(t, "sum(x) over (partition by g order by t rows between unbounded preceding and current row)")
	call := v.(*ast.FunctionCall)
	require.NotNil(t, call.Over)
	frame := call.Over.Frame
	require.NotNil(t, frame)
	require.Len(t, frame.Partition, 1)
	assert.Equal(t, "g", frame.Partition[0].(*ast.ColumnRef).Name)
	require.Len(t, frame.Order, 1)
	require.NotNil(t, frame.Frame)
	assert.Equal(t, "rows", frame.Frame.Unit)
	assert.Equal(t, ast.BoundUnboundedPreceding, frame.Frame.Start.BoundKind)
	assert.Equal(t, ast.BoundCurrentRow, frame.Frame.End.BoundKind)
}

func TestArrayConstructor(t *testing.T) {
	v := mustParseValue(t, "array[1, 2, 3]")
	arr := v.(*ast.ArrayConstructor)
	assert.Len(t, arr.Elements, 3)
}

func TestNamespacedColumnRef(t *testing.T) {
	v := mustParseValue(t, "a.b.c")
	col := v.(*ast.ColumnRef)
	assert.Equal(t, []string{"a", "b"}, col.Namespaces)
	assert.Equal(t, "c", col.Name)
}

func TestNamespacedFunctionCall(t *testing.T) {
	v := mustParseValue(t, "pg_catalog.now()")
	call := v.(*ast.FunctionCall)
	assert.Equal(t, []string{"pg_catalog"}, call.Namespaces)
	assert.Equal(t, "now", call.Name)
}

func TestParameterNamedAndAnonymous(t *testing.T) {
	named := mustParseValue(t, ":id").(*ast.Parameter)
	assert.Equal(t, "id", named.Name)
	assert.False(t, named.Anonymous)

	anon := mustParseValue(t, "?").(*ast.Parameter)
	assert.True(t, anon.Anonymous)
}

func TestStringSpecifierLiteral(t *testing.T) {
	v := mustParseValue(t, `E'a\nb'`)
	sv := v.(*ast.StringSpecifierValue)
	assert.Equal(t, "e", sv.Specifier)
	assert.Equal(t, ast.LiteralString, sv.Literal.SubKind)
}
