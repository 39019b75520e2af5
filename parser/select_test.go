package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/ast"
)

func mustParseSelect(t *testing.T, text string) ast.SelectQuery {
	t.Helper()
	q, err := ParseSelect(text)
	require.NoError(t, err)
	return q
}

func TestSimpleSelectWithAlias(t *testing.T) {
	q := mustParseSelect(t, "select 1 + 2 * 3 as x from t")
	simple := q.(*ast.SimpleSelectQuery)
	require.Len(t, simple.Items, 1)
	assert.Equal(t, "x", simple.Items[0].Alias)
	bin := simple.Items[0].Value.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Operator)
	table := simple.From.(*ast.TableSource)
	assert.Equal(t, "t", table.Name)
}

func TestWithClauseAttachesToUnionAll(t *testing.T) {
	q := mustParseSelect(t, "with t(x) as (select 1 union all select 2) select * from t")
	outer := q.(*ast.SimpleSelectQuery)
	require.NotNil(t, outer.With)
	require.Len(t, outer.With.Tables, 1)
	ct := outer.With.Tables[0]
	assert.Equal(t, "t", ct.Name)
	assert.Equal(t, []string{"x"}, ct.Columns)

	bin, ok := ct.Query.(*ast.BinarySelectQuery)
	require.True(t, ok)
	assert.Equal(t, "union all", bin.Operator)
	left := bin.Left.(*ast.SimpleSelectQuery)
	right := bin.Right.(*ast.SimpleSelectQuery)
	assert.Equal(t, "1", left.Items[0].Value.(*ast.Literal).Value)
	assert.Equal(t, "2", right.Items[0].Value.(*ast.Literal).Value)

	table := outer.From.(*ast.TableSource)
	assert.Equal(t, "t", table.Name)
	assert.True(t, outer.Items[0].Value.(*ast.ColumnRef).Star)
}

func TestSetOperatorChainIsLeftAssociative(t *testing.T) {
	q := mustParseSelect(t, "select 1 union select 2 except select 3")
	outer, ok := q.(*ast.BinarySelectQuery)
	require.True(t, ok)
	assert.Equal(t, "except", outer.Operator)
	inner, ok := outer.Left.(*ast.BinarySelectQuery)
	require.True(t, ok, "left-associative: the first union nests inside the left operand")
	assert.Equal(t, "union", inner.Operator)
}

func TestInnerJoinWithOnCondition(t *testing.T) {
	q := mustParseSelect(t, "select a.x from a inner join b on a.id = b.id")
	simple := q.(*ast.SimpleSelectQuery)
	require.Len(t, simple.Joins, 1)
	j := simple.Joins[0]
	assert.Equal(t, "inner join", j.JoinType)
	assert.NotNil(t, j.On)
	src := j.Source.(*ast.TableSource)
	assert.Equal(t, "b", src.Name)
}

func TestLeftOuterJoinPhraseAndAlias(t *testing.T) {
	q := mustParseSelect(t, "select 1 from a left outer join b bb using (id)")
	simple := q.(*ast.SimpleSelectQuery)
	require.Len(t, simple.Joins, 1)
	j := simple.Joins[0]
	assert.Equal(t, "left outer join", j.JoinType)
	assert.Equal(t, []string{"id"}, j.Using)
	aliased := j.Source.(*ast.AliasedSource)
	assert.Equal(t, "bb", aliased.Alias)
}

func TestCommaJoin(t *testing.T) {
	q := mustParseSelect(t, "select 1 from a, b")
	simple := q.(*ast.SimpleSelectQuery)
	require.Len(t, simple.Joins, 1)
	assert.Equal(t, ",", simple.Joins[0].JoinType)
}

func TestGroupByRollup(t *testing.T) {
	q := mustParseSelect(t, "select a, b from t group by rollup (a, b)")
	simple := q.(*ast.SimpleSelectQuery)
	require.Len(t, simple.GroupBy, 1)
	gs := simple.GroupBy[0].(*ast.GroupingSetsExpr)
	assert.Equal(t, "rollup", gs.SetKind)
	require.Len(t, gs.Sets, 2)
	assert.Len(t, gs.Sets[0], 1)
	assert.Len(t, gs.Sets[1], 1)
}

func TestGroupingSetsWithParenthesizedGroup(t *testing.T) {
	q := mustParseSelect(t, "select a, b from t group by grouping sets ((a, b), (a), ())")
	simple := q.(*ast.SimpleSelectQuery)
	gs := simple.GroupBy[0].(*ast.GroupingSetsExpr)
	assert.Equal(t, "grouping sets", gs.SetKind)
	require.Len(t, gs.Sets, 3)
	assert.Len(t, gs.Sets[0], 2)
	assert.Len(t, gs.Sets[1], 1)
	assert.Len(t, gs.Sets[2], 0)
}

func TestDistinctOn(t *testing.T) {
	q := mustParseSelect(t, "select distinct on (a) a, b from t")
	simple := q.(*ast.SimpleSelectQuery)
	assert.True(t, simple.Distinct)
	require.Len(t, simple.DistinctOn, 1)
}

func TestOrderByDescNullsLast(t *testing.T) {
	q := mustParseSelect(t, "select a from t order by a desc nulls last")
	simple := q.(*ast.SimpleSelectQuery)
	require.Len(t, simple.OrderBy, 1)
	item := simple.OrderBy[0]
	assert.True(t, item.Desc)
	require.NotNil(t, item.NullsFirst)
	assert.False(t, *item.NullsFirst)
}

func TestLimitOffset(t *testing.T) {
	q := mustParseSelect(t, "select a from t limit 10 offset 20")
	simple := q.(*ast.SimpleSelectQuery)
	require.NotNil(t, simple.Limit)
	assert.Equal(t, "10", simple.Limit.Count.(*ast.Literal).Value)
	assert.Equal(t, "20", simple.Limit.Offset.(*ast.Literal).Value)
}

func TestFetchFirstRowsOnly(t *testing.T) {
	q := mustParseSelect(t, "select a from t fetch first 5 rows only")
	simple := q.(*ast.SimpleSelectQuery)
	require.NotNil(t, simple.Fetch)
	assert.True(t, simple.Fetch.First)
	assert.Equal(t, "rows only", simple.Fetch.Unit)
	assert.Equal(t, "5", simple.Fetch.Count.(*ast.Literal).Value)
}

func TestWindowFrameOnSelectItem(t *testing.T) {
	q := mustParseSelect(t, "select sum(x) over (partition by g order by t rows between unbounded preceding and current row) from s")
	simple := q.(*ast.SimpleSelectQuery)
	call := simple.Items[0].Value.(*ast.FunctionCall)
	require.NotNil(t, call.Over)
	require.NotNil(t, call.Over.Frame)
	require.NotNil(t, call.Over.Frame.Frame)
	assert.Equal(t, ast.BoundUnboundedPreceding, call.Over.Frame.Frame.Start.BoundKind)
	assert.Equal(t, ast.BoundCurrentRow, call.Over.Frame.Frame.End.BoundKind)
}

func TestNamedWindowClause(t *testing.T) {
	q := mustParseSelect(t, "select a from t window w as (partition by a)")
	simple := q.(*ast.SimpleSelectQuery)
	require.Len(t, simple.Windows, 1)
	assert.Equal(t, "w", simple.Windows[0].Name)
	require.Len(t, simple.Windows[0].Frame.Partition, 1)
}

func TestSubquerySource(t *testing.T) {
	q := mustParseSelect(t, "select 1 from (select a from t) s")
	simple := q.(*ast.SimpleSelectQuery)
	aliased := simple.From.(*ast.AliasedSource)
	assert.Equal(t, "s", aliased.Alias)
	_, ok := aliased.Source.(*ast.SubquerySource)
	assert.True(t, ok)
}

func TestWhereGroupByHaving(t *testing.T) {
	q := mustParseSelect(t, "select a, count(*) from t where a > 1 group by a having count(*) > 1")
	simple := q.(*ast.SimpleSelectQuery)
	assert.NotNil(t, simple.Where)
	require.Len(t, simple.GroupBy, 1)
	assert.NotNil(t, simple.Having)
}
