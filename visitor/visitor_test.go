package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlcraft/sqlcraft/ast"
)

func sampleQuery() *ast.SimpleSelectQuery {
	return &ast.SimpleSelectQuery{
		Items: []*ast.SelectItem{
			{Value: &ast.ColumnRef{Name: "a"}},
			{Value: &ast.BinaryExpr{
				Operator: "+",
				Left:     &ast.Literal{SubKind: ast.LiteralNumber, Value: "1"},
				Right:    &ast.Literal{SubKind: ast.LiteralNumber, Value: "2"},
			}},
		},
		From:  &ast.TableSource{Name: "t"},
		Where: &ast.BinaryExpr{Operator: "=", Left: &ast.ColumnRef{Name: "a"}, Right: &ast.Literal{Value: "1"}},
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	q := sampleQuery()
	var kinds []ast.NodeKind
	Walk(q, func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Contains(t, kinds, ast.KindSimpleSelectQuery)
	assert.Contains(t, kinds, ast.KindSelectItem)
	assert.Contains(t, kinds, ast.KindColumnRef)
	assert.Contains(t, kinds, ast.KindBinaryExpr)
	assert.Contains(t, kinds, ast.KindTableSource)
	assert.Contains(t, kinds, ast.KindLiteral)
}

func TestWalkSkipsChildrenWhenFuncReturnsFalse(t *testing.T) {
	q := sampleQuery()
	var visited int
	Walk(q, func(n ast.Node) bool {
		visited++
		return n.Kind() != ast.KindBinaryExpr
	})
	// Both BinaryExpr nodes are visited but their children (ColumnRef/Literal
	// pairs) are skipped, so the count is lower than a full traversal.
	var fullCount int
	Walk(sampleQuery(), func(ast.Node) bool { fullCount++; return true })
	assert.Less(t, visited, fullCount)
}

func TestRewriteReplacesLiterals(t *testing.T) {
	q := sampleQuery()
	result := Rewrite(q, func(n ast.Node) ast.Node {
		if lit, ok := n.(*ast.Literal); ok && lit.Value == "1" {
			return &ast.Literal{SubKind: lit.SubKind, Value: "99"}
		}
		return n
	})

	rewritten := result.(*ast.SimpleSelectQuery)
	where := rewritten.Where.(*ast.BinaryExpr)
	assert.Equal(t, "99", where.Right.(*ast.Literal).Value)

	sumItem := rewritten.Items[1].Value.(*ast.BinaryExpr)
	assert.Equal(t, "99", sumItem.Left.(*ast.Literal).Value)
	assert.Equal(t, "2", sumItem.Right.(*ast.Literal).Value)
}

func TestRewriteOnNilNodeIsNoop(t *testing.T) {
	var q *ast.SimpleSelectQuery
	result := Rewrite(q, func(n ast.Node) ast.Node { return n })
	assert.Nil(t, result)
}
