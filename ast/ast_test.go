package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectItemEffectiveAlias(t *testing.T) {
	withAlias := &SelectItem{Value: &ColumnRef{Name: "a"}, Alias: "x"}
	assert.Equal(t, "x", withAlias.EffectiveAlias())

	bareColumn := &SelectItem{Value: &ColumnRef{Name: "a"}}
	assert.Equal(t, "a", bareColumn.EffectiveAlias())

	star := &SelectItem{Value: &ColumnRef{Star: true}}
	assert.Equal(t, "", star.EffectiveAlias())

	expr := &SelectItem{Value: &Literal{SubKind: LiteralNumber, Value: "1"}}
	assert.Equal(t, "", expr.EffectiveAlias())
}

func TestSimpleSelectQueryAppendWhere(t *testing.T) {
	q := &SimpleSelectQuery{}
	first := &BinaryExpr{Operator: "=", Left: &ColumnRef{Name: "a"}, Right: &Literal{Value: "1"}}
	q.AppendWhere(first)
	assert.Same(t, ValueExpr(first), q.Where)

	second := &BinaryExpr{Operator: "=", Left: &ColumnRef{Name: "b"}, Right: &Literal{Value: "2"}}
	q.AppendWhere(second)
	combined, ok := q.Where.(*BinaryExpr)
	if assert.True(t, ok) {
		assert.Equal(t, "and", combined.Operator)
		assert.Same(t, ValueExpr(first), combined.Left)
		assert.Same(t, ValueExpr(second), combined.Right)
	}
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "SimpleSelectQuery", KindSimpleSelectQuery.String())
	assert.Equal(t, "BetweenExpr", KindBetweenExpr.String())
	assert.Equal(t, "Unknown", NodeKind(9999).String())
}

func TestValueExprSlicePoolResetsOnRelease(t *testing.T) {
	s := GetValueExprSlice()
	*s = append(*s, &Literal{Value: "1"}, &Literal{Value: "2"})
	ReleaseValueExprSlice(s)
	assert.Len(t, *s, 0)

	reused := GetValueExprSlice()
	assert.Len(t, *reused, 0)
	ReleaseValueExprSlice(reused)
}

func TestLiteralPoolResetsFields(t *testing.T) {
	l := GetLiteral()
	l.Value = "stale"
	l.SubKind = LiteralString
	ReleaseLiteral(l)
	assert.Equal(t, "", l.Value)
	assert.Equal(t, LiteralNumber, l.SubKind)
}

func TestEveryStatementImplementsNode(t *testing.T) {
	var nodes = []Node{
		&SimpleSelectQuery{},
		&BinarySelectQuery{},
		&ValuesQuery{},
		&InsertQuery{},
		&UpdateQuery{},
		&DeleteQuery{},
	}
	for _, n := range nodes {
		assert.NotEqual(t, NodeKind(0), n.Kind())
	}
}
