package visitor

import "github.com/sqlcraft/sqlcraft/ast"

// childrenTable lists, for each NodeKind, a function returning that node's
// immediate non-nil children in source order. Walk uses this for pre-order
// traversal; it never mutates.
var childrenTable = map[ast.NodeKind]func(ast.Node) []ast.Node{
	ast.KindSimpleSelectQuery: func(n ast.Node) []ast.Node {
		q := n.(*ast.SimpleSelectQuery)
		var out []ast.Node
		if q.With != nil {
			out = append(out, q.With)
		}
		for _, e := range q.DistinctOn {
			out = appendNonNil(out, e)
		}
		for _, it := range q.Items {
			out = append(out, it)
		}
		if q.From != nil {
			out = appendNonNil(out, q.From)
		}
		for _, j := range q.Joins {
			out = append(out, j)
		}
		out = appendNonNil(out, q.Where)
		for _, e := range q.GroupBy {
			out = appendNonNil(out, e)
		}
		out = appendNonNil(out, q.Having)
		for _, w := range q.Windows {
			out = append(out, w)
		}
		for _, o := range q.OrderBy {
			out = append(out, o)
		}
		if q.Limit != nil {
			out = append(out, q.Limit)
		}
		if q.Fetch != nil {
			out = append(out, q.Fetch)
		}
		if q.For != nil {
			out = append(out, q.For)
		}
		return out
	},
	ast.KindBinarySelectQuery: func(n ast.Node) []ast.Node {
		q := n.(*ast.BinarySelectQuery)
		return appendNonNil(appendNonNil(nil, q.Left), q.Right)
	},
	ast.KindValuesQuery: func(n ast.Node) []ast.Node {
		q := n.(*ast.ValuesQuery)
		out := make([]ast.Node, 0, len(q.Rows))
		for _, r := range q.Rows {
			out = append(out, r)
		}
		return out
	},
	ast.KindInsertQuery: func(n ast.Node) []ast.Node {
		q := n.(*ast.InsertQuery)
		out := appendNonNil(nil, q.Source)
		for _, r := range q.Returning {
			out = append(out, r)
		}
		return out
	},
	ast.KindUpdateQuery: func(n ast.Node) []ast.Node {
		q := n.(*ast.UpdateQuery)
		var out []ast.Node
		out = appendNonNil(out, q.Target)
		for _, s := range q.Set {
			out = appendNonNil(out, s.Value)
		}
		out = appendNonNil(out, q.From)
		for _, j := range q.Joins {
			out = append(out, j)
		}
		out = appendNonNil(out, q.Where)
		for _, r := range q.Returning {
			out = append(out, r)
		}
		return out
	},
	ast.KindDeleteQuery: func(n ast.Node) []ast.Node {
		q := n.(*ast.DeleteQuery)
		var out []ast.Node
		out = appendNonNil(out, q.Target)
		out = appendNonNil(out, q.Using)
		out = appendNonNil(out, q.Where)
		for _, r := range q.Returning {
			out = append(out, r)
		}
		return out
	},
	ast.KindSelectItem: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.SelectItem).Value)
	},
	ast.KindWithClause: func(n ast.Node) []ast.Node {
		w := n.(*ast.WithClause)
		out := make([]ast.Node, 0, len(w.Tables))
		for _, t := range w.Tables {
			out = append(out, t)
		}
		return out
	},
	ast.KindCommonTable: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.CommonTable).Query)
	},
	ast.KindJoinClause: func(n ast.Node) []ast.Node {
		j := n.(*ast.JoinClause)
		return appendNonNil(appendNonNil(nil, j.Source), j.On)
	},
	ast.KindOrderByItem: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.OrderByItem).Value)
	},
	ast.KindWindowDef: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.WindowDef).Frame)
	},
	ast.KindWindowFrameExpression: func(n ast.Node) []ast.Node {
		w := n.(*ast.WindowFrameExpression)
		var out []ast.Node
		for _, e := range w.Partition {
			out = appendNonNil(out, e)
		}
		for _, o := range w.Order {
			out = append(out, o)
		}
		if w.Frame != nil {
			if w.Frame.Start != nil {
				out = append(out, w.Frame.Start)
			}
			if w.Frame.End != nil {
				out = append(out, w.Frame.End)
			}
		}
		return out
	},
	ast.KindFrameBound: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.FrameBound).Value)
	},
	ast.KindLimitClause: func(n ast.Node) []ast.Node {
		l := n.(*ast.LimitClause)
		return appendNonNil(appendNonNil(nil, l.Count), l.Offset)
	},
	ast.KindFetchClause: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.FetchClause).Count)
	},
	ast.KindFunctionSource: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.FunctionSource).Call)
	},
	ast.KindSubquerySource: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.SubquerySource).Query)
	},
	ast.KindAliasedSource: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.AliasedSource).Source)
	},
	ast.KindUnaryExpr: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.UnaryExpr).Operand)
	},
	ast.KindBinaryExpr: func(n ast.Node) []ast.Node {
		b := n.(*ast.BinaryExpr)
		return appendNonNil(appendNonNil(nil, b.Left), b.Right)
	},
	ast.KindParenExpr: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.ParenExpr).Expr)
	},
	ast.KindFunctionCall: func(n ast.Node) []ast.Node {
		f := n.(*ast.FunctionCall)
		out := make([]ast.Node, 0, len(f.Args)+1)
		for _, a := range f.Args {
			out = appendNonNil(out, a)
		}
		if f.Over != nil && f.Over.Frame != nil {
			out = append(out, f.Over.Frame)
		}
		return out
	},
	ast.KindCastExpr: func(n ast.Node) []ast.Node {
		c := n.(*ast.CastExpr)
		out := appendNonNil(nil, c.Expr)
		if c.Type != nil {
			out = append(out, c.Type)
		}
		return out
	},
	ast.KindBetweenExpr: func(n ast.Node) []ast.Node {
		b := n.(*ast.BetweenExpr)
		return appendNonNil(appendNonNil(appendNonNil(nil, b.Expr), b.Low), b.High)
	},
	ast.KindCaseExpr: func(n ast.Node) []ast.Node {
		c := n.(*ast.CaseExpr)
		var out []ast.Node
		out = appendNonNil(out, c.Operand)
		for _, w := range c.Whens {
			out = append(out, w)
		}
		out = appendNonNil(out, c.Else)
		return out
	},
	ast.KindCaseWhen: func(n ast.Node) []ast.Node {
		w := n.(*ast.CaseWhen)
		return appendNonNil(appendNonNil(nil, w.Cond), w.Result)
	},
	ast.KindTupleExpr: func(n ast.Node) []ast.Node {
		t := n.(*ast.TupleExpr)
		out := make([]ast.Node, 0, len(t.Items))
		for _, e := range t.Items {
			out = appendNonNil(out, e)
		}
		return out
	},
	ast.KindValueList: func(n ast.Node) []ast.Node {
		v := n.(*ast.ValueList)
		out := make([]ast.Node, 0, len(v.Items))
		for _, e := range v.Items {
			out = appendNonNil(out, e)
		}
		return out
	},
	ast.KindArrayConstructor: func(n ast.Node) []ast.Node {
		a := n.(*ast.ArrayConstructor)
		out := make([]ast.Node, 0, len(a.Elements))
		for _, e := range a.Elements {
			out = appendNonNil(out, e)
		}
		return out
	},
	ast.KindSubqueryExpr: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.SubqueryExpr).Query)
	},
	ast.KindTypeValue: func(n ast.Node) []ast.Node {
		t := n.(*ast.TypeValue)
		out := make([]ast.Node, 0, len(t.Args))
		for _, a := range t.Args {
			out = appendNonNil(out, a)
		}
		return out
	},
	ast.KindStringSpecifierValue: func(n ast.Node) []ast.Node {
		return appendNonNil(nil, n.(*ast.StringSpecifierValue).Literal)
	},
	ast.KindGroupingSetsExpr: func(n ast.Node) []ast.Node {
		g := n.(*ast.GroupingSetsExpr)
		var out []ast.Node
		for _, set := range g.Sets {
			for _, e := range set {
				out = appendNonNil(out, e)
			}
		}
		return out
	},
}

func appendNonNil(out []ast.Node, n ast.Node) []ast.Node {
	if n == nil || isNilNode(n) {
		return out
	}
	return append(out, n)
}
