// Package visitor implements tree traversal and transformation over
// ast.Node trees. Dispatch goes through a map[ast.NodeKind]func(...) table
// keyed by each node's Kind() tag rather than a Go type switch, per the
// "avoid runtime reflection" guidance: once a node's kind selects its
// handler, that handler's single type assertion to the concrete struct is
// a cast, not a dispatch decision. Grounded on the teacher's post-order
// ReleaseAST/format tree-walking shape, generalized from a type switch
// into a kind-keyed table and split into a pure read-only Walk and a
// mutating Rewrite.
package visitor

import "github.com/sqlcraft/sqlcraft/ast"

// WalkFunc is called once per visited node in pre-order. Returning false
// skips that node's children.
type WalkFunc func(n ast.Node) bool

// Walk visits n and its descendants in pre-order.
func Walk(n ast.Node, fn WalkFunc) {
	if n == nil || isNilNode(n) {
		return
	}
	if !fn(n) {
		return
	}
	list, ok := childrenTable[n.Kind()]
	if !ok {
		return
	}
	for _, c := range list(n) {
		Walk(c, fn)
	}
}

// RewriteFunc is called once per node in post-order (children already
// rewritten) and returns the node that should replace it — itself, a
// mutated version of itself, or an entirely different node.
type RewriteFunc func(n ast.Node) ast.Node

// Rewrite transforms n and its descendants in post-order: every child is
// rewritten first, then fn is applied to n with its (possibly replaced)
// children already in place.
func Rewrite(n ast.Node, fn RewriteFunc) ast.Node {
	if n == nil || isNilNode(n) {
		return n
	}
	if r, ok := rewriteTable[n.Kind()]; ok {
		n = r(n, fn)
	}
	return fn(n)
}

// isNilNode reports whether n holds a nil pointer of its concrete type.
// Needed because an (*ast.ColumnRef)(nil) stored in an ast.Node/ValueExpr
// interface is itself non-nil as an interface value.
func isNilNode(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.SimpleSelectQuery:
		return v == nil
	case *ast.BinarySelectQuery:
		return v == nil
	case *ast.ValuesQuery:
		return v == nil
	case *ast.InsertQuery:
		return v == nil
	case *ast.UpdateQuery:
		return v == nil
	case *ast.DeleteQuery:
		return v == nil
	case *ast.SelectItem:
		return v == nil
	case *ast.WithClause:
		return v == nil
	case *ast.CommonTable:
		return v == nil
	case *ast.JoinClause:
		return v == nil
	case *ast.OrderByItem:
		return v == nil
	case *ast.WindowDef:
		return v == nil
	case *ast.WindowFrameExpression:
		return v == nil
	case *ast.FrameBound:
		return v == nil
	case *ast.LimitClause:
		return v == nil
	case *ast.FetchClause:
		return v == nil
	case *ast.ForClause:
		return v == nil
	case *ast.TableSource:
		return v == nil
	case *ast.FunctionSource:
		return v == nil
	case *ast.SubquerySource:
		return v == nil
	case *ast.AliasedSource:
		return v == nil
	case *ast.ColumnRef:
		return v == nil
	case *ast.Literal:
		return v == nil
	case *ast.UnaryExpr:
		return v == nil
	case *ast.BinaryExpr:
		return v == nil
	case *ast.ParenExpr:
		return v == nil
	case *ast.FunctionCall:
		return v == nil
	case *ast.CastExpr:
		return v == nil
	case *ast.BetweenExpr:
		return v == nil
	case *ast.CaseExpr:
		return v == nil
	case *ast.CaseWhen:
		return v == nil
	case *ast.TupleExpr:
		return v == nil
	case *ast.ValueList:
		return v == nil
	case *ast.ArrayConstructor:
		return v == nil
	case *ast.SubqueryExpr:
		return v == nil
	case *ast.Parameter:
		return v == nil
	case *ast.TypeValue:
		return v == nil
	case *ast.StringSpecifierValue:
		return v == nil
	case *ast.GroupingSetsExpr:
		return v == nil
	default:
		return false
	}
}

func asValueExpr(n ast.Node) ast.ValueExpr {
	if n == nil || isNilNode(n) {
		return nil
	}
	return n.(ast.ValueExpr)
}

func asSourceExpr(n ast.Node) ast.SourceExpr {
	if n == nil || isNilNode(n) {
		return nil
	}
	return n.(ast.SourceExpr)
}

func asSelectQuery(n ast.Node) ast.SelectQuery {
	if n == nil || isNilNode(n) {
		return nil
	}
	return n.(ast.SelectQuery)
}
