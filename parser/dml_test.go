package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/ast"
)

func TestInsertWithMultiRowValues(t *testing.T) {
	q, err := ParseInsert("insert into s.t(a,b) values (1,2),(3,4)")
	require.NoError(t, err)
	assert.Equal(t, []string{"s"}, q.Namespaces)
	assert.Equal(t, "t", q.Table)
	assert.Equal(t, []string{"a", "b"}, q.Columns)

	values, ok := q.Source.(*ast.ValuesQuery)
	require.True(t, ok)
	require.Len(t, values.Rows, 2)
	assert.Equal(t, "1", values.Rows[0].Items[0].(*ast.Literal).Value)
	assert.Equal(t, "2", values.Rows[0].Items[1].(*ast.Literal).Value)
	assert.Equal(t, "3", values.Rows[1].Items[0].(*ast.Literal).Value)
	assert.Equal(t, "4", values.Rows[1].Items[1].(*ast.Literal).Value)
	assert.Nil(t, q.Returning)
}

func TestInsertFromSelectWithReturning(t *testing.T) {
	q, err := ParseInsert("insert into t (a) select b from u returning a")
	require.NoError(t, err)
	_, ok := q.Source.(*ast.SimpleSelectQuery)
	require.True(t, ok)
	require.Len(t, q.Returning, 1)
}

func TestUpdateSetWhereReturning(t *testing.T) {
	q, err := ParseUpdate("update t set a = 1, b = a + 1 where id = 5 returning a, b")
	require.NoError(t, err)
	table := q.Target.(*ast.TableSource)
	assert.Equal(t, "t", table.Name)
	require.Len(t, q.Set, 2)
	assert.Equal(t, "a", q.Set[0].Column)
	assert.NotNil(t, q.Where)
	require.Len(t, q.Returning, 2)
}

func TestUpdateFromJoin(t *testing.T) {
	q, err := ParseUpdate("update t set a = u.a from u where t.id = u.id")
	require.NoError(t, err)
	require.NotNil(t, q.From)
	table := q.From.(*ast.TableSource)
	assert.Equal(t, "u", table.Name)
}

func TestDeleteUsingWhereReturning(t *testing.T) {
	q, err := ParseDelete("delete from t using u where t.id = u.id returning t.id")
	require.NoError(t, err)
	target := q.Target.(*ast.TableSource)
	assert.Equal(t, "t", target.Name)
	require.NotNil(t, q.Using)
	usingSrc := q.Using.(*ast.TableSource)
	assert.Equal(t, "u", usingSrc.Name)
	assert.NotNil(t, q.Where)
	require.Len(t, q.Returning, 1)
}

func TestDeleteWithoutOptionalClauses(t *testing.T) {
	q, err := ParseDelete("delete from t")
	require.NoError(t, err)
	target := q.Target.(*ast.TableSource)
	assert.Equal(t, "t", target.Name)
	assert.Nil(t, q.Using)
	assert.Nil(t, q.Where)
	assert.Nil(t, q.Returning)
}

func TestBareValuesQuery(t *testing.T) {
	q, err := ParseValues("values (1, 2), (3, 4)")
	require.NoError(t, err)
	require.Len(t, q.Rows, 2)
}
