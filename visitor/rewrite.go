package visitor

import "github.com/sqlcraft/sqlcraft/ast"

// rewriteTable lists, for each NodeKind, a function that rewrites that
// node's immediate children in place (post-order) and returns the node
// itself (possibly mutated). Rewrite applies fn to the result afterward.
var rewriteTable = map[ast.NodeKind]func(ast.Node, RewriteFunc) ast.Node{
	ast.KindSimpleSelectQuery: func(n ast.Node, fn RewriteFunc) ast.Node {
		q := n.(*ast.SimpleSelectQuery)
		if q.With != nil {
			q.With = Rewrite(q.With, fn).(*ast.WithClause)
		}
		for i, e := range q.DistinctOn {
			q.DistinctOn[i] = asValueExpr(Rewrite(e, fn))
		}
		for i, it := range q.Items {
			q.Items[i] = Rewrite(it, fn).(*ast.SelectItem)
		}
		if q.From != nil {
			q.From = asSourceExpr(Rewrite(q.From, fn))
		}
		for i, j := range q.Joins {
			q.Joins[i] = Rewrite(j, fn).(*ast.JoinClause)
		}
		if q.Where != nil {
			q.Where = asValueExpr(Rewrite(q.Where, fn))
		}
		for i, e := range q.GroupBy {
			q.GroupBy[i] = asValueExpr(Rewrite(e, fn))
		}
		if q.Having != nil {
			q.Having = asValueExpr(Rewrite(q.Having, fn))
		}
		for i, w := range q.Windows {
			q.Windows[i] = Rewrite(w, fn).(*ast.WindowDef)
		}
		for i, o := range q.OrderBy {
			q.OrderBy[i] = Rewrite(o, fn).(*ast.OrderByItem)
		}
		if q.Limit != nil {
			q.Limit = Rewrite(q.Limit, fn).(*ast.LimitClause)
		}
		if q.Fetch != nil {
			q.Fetch = Rewrite(q.Fetch, fn).(*ast.FetchClause)
		}
		return q
	},
	ast.KindBinarySelectQuery: func(n ast.Node, fn RewriteFunc) ast.Node {
		q := n.(*ast.BinarySelectQuery)
		q.Left = asSelectQuery(Rewrite(q.Left, fn))
		q.Right = asSelectQuery(Rewrite(q.Right, fn))
		return q
	},
	ast.KindValuesQuery: func(n ast.Node, fn RewriteFunc) ast.Node {
		q := n.(*ast.ValuesQuery)
		for i, r := range q.Rows {
			q.Rows[i] = Rewrite(r, fn).(*ast.TupleExpr)
		}
		return q
	},
	ast.KindInsertQuery: func(n ast.Node, fn RewriteFunc) ast.Node {
		q := n.(*ast.InsertQuery)
		if q.Source != nil {
			q.Source = asSelectQuery(Rewrite(q.Source, fn))
		}
		for i, r := range q.Returning {
			q.Returning[i] = Rewrite(r, fn).(*ast.SelectItem)
		}
		return q
	},
	ast.KindUpdateQuery: func(n ast.Node, fn RewriteFunc) ast.Node {
		q := n.(*ast.UpdateQuery)
		if q.Target != nil {
			q.Target = asSourceExpr(Rewrite(q.Target, fn))
		}
		for _, s := range q.Set {
			if s.Value != nil {
				s.Value = asValueExpr(Rewrite(s.Value, fn))
			}
		}
		if q.From != nil {
			q.From = asSourceExpr(Rewrite(q.From, fn))
		}
		for i, j := range q.Joins {
			q.Joins[i] = Rewrite(j, fn).(*ast.JoinClause)
		}
		if q.Where != nil {
			q.Where = asValueExpr(Rewrite(q.Where, fn))
		}
		for i, r := range q.Returning {
			q.Returning[i] = Rewrite(r, fn).(*ast.SelectItem)
		}
		return q
	},
	ast.KindDeleteQuery: func(n ast.Node, fn RewriteFunc) ast.Node {
		q := n.(*ast.DeleteQuery)
		if q.Target != nil {
			q.Target = asSourceExpr(Rewrite(q.Target, fn))
		}
		if q.Using != nil {
			q.Using = asSourceExpr(Rewrite(q.Using, fn))
		}
		if q.Where != nil {
			q.Where = asValueExpr(Rewrite(q.Where, fn))
		}
		for i, r := range q.Returning {
			q.Returning[i] = Rewrite(r, fn).(*ast.SelectItem)
		}
		return q
	},
	ast.KindSelectItem: func(n ast.Node, fn RewriteFunc) ast.Node {
		it := n.(*ast.SelectItem)
		if it.Value != nil {
			it.Value = asValueExpr(Rewrite(it.Value, fn))
		}
		return it
	},
	ast.KindWithClause: func(n ast.Node, fn RewriteFunc) ast.Node {
		w := n.(*ast.WithClause)
		for i, t := range w.Tables {
			w.Tables[i] = Rewrite(t, fn).(*ast.CommonTable)
		}
		return w
	},
	ast.KindCommonTable: func(n ast.Node, fn RewriteFunc) ast.Node {
		c := n.(*ast.CommonTable)
		if c.Query != nil {
			c.Query = asSelectQuery(Rewrite(c.Query, fn))
		}
		return c
	},
	ast.KindJoinClause: func(n ast.Node, fn RewriteFunc) ast.Node {
		j := n.(*ast.JoinClause)
		if j.Source != nil {
			j.Source = asSourceExpr(Rewrite(j.Source, fn))
		}
		if j.On != nil {
			j.On = asValueExpr(Rewrite(j.On, fn))
		}
		return j
	},
	ast.KindOrderByItem: func(n ast.Node, fn RewriteFunc) ast.Node {
		o := n.(*ast.OrderByItem)
		if o.Value != nil {
			o.Value = asValueExpr(Rewrite(o.Value, fn))
		}
		return o
	},
	ast.KindWindowDef: func(n ast.Node, fn RewriteFunc) ast.Node {
		w := n.(*ast.WindowDef)
		if w.Frame != nil {
			w.Frame = Rewrite(w.Frame, fn).(*ast.WindowFrameExpression)
		}
		return w
	},
	ast.KindWindowFrameExpression: func(n ast.Node, fn RewriteFunc) ast.Node {
		w := n.(*ast.WindowFrameExpression)
		for i, e := range w.Partition {
			w.Partition[i] = asValueExpr(Rewrite(e, fn))
		}
		for i, o := range w.Order {
			w.Order[i] = Rewrite(o, fn).(*ast.OrderByItem)
		}
		if w.Frame != nil {
			if w.Frame.Start != nil {
				w.Frame.Start = Rewrite(w.Frame.Start, fn).(*ast.FrameBound)
			}
			if w.Frame.End != nil {
				w.Frame.End = Rewrite(w.Frame.End, fn).(*ast.FrameBound)
			}
		}
		return w
	},
	ast.KindFrameBound: func(n ast.Node, fn RewriteFunc) ast.Node {
		b := n.(*ast.FrameBound)
		if b.Value != nil {
			b.Value = asValueExpr(Rewrite(b.Value, fn))
		}
		return b
	},
	ast.KindLimitClause: func(n ast.Node, fn RewriteFunc) ast.Node {
		l := n.(*ast.LimitClause)
		if l.Count != nil {
			l.Count = asValueExpr(Rewrite(l.Count, fn))
		}
		if l.Offset != nil {
			l.Offset = asValueExpr(Rewrite(l.Offset, fn))
		}
		return l
	},
	ast.KindFetchClause: func(n ast.Node, fn RewriteFunc) ast.Node {
		f := n.(*ast.FetchClause)
		if f.Count != nil {
			f.Count = asValueExpr(Rewrite(f.Count, fn))
		}
		return f
	},
	ast.KindFunctionSource: func(n ast.Node, fn RewriteFunc) ast.Node {
		s := n.(*ast.FunctionSource)
		if s.Call != nil {
			s.Call = Rewrite(s.Call, fn).(*ast.FunctionCall)
		}
		return s
	},
	ast.KindSubquerySource: func(n ast.Node, fn RewriteFunc) ast.Node {
		s := n.(*ast.SubquerySource)
		if s.Query != nil {
			s.Query = asSelectQuery(Rewrite(s.Query, fn))
		}
		return s
	},
	ast.KindAliasedSource: func(n ast.Node, fn RewriteFunc) ast.Node {
		s := n.(*ast.AliasedSource)
		if s.Source != nil {
			s.Source = asSourceExpr(Rewrite(s.Source, fn))
		}
		return s
	},
	ast.KindUnaryExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		u := n.(*ast.UnaryExpr)
		if u.Operand != nil {
			u.Operand = asValueExpr(Rewrite(u.Operand, fn))
		}
		return u
	},
	ast.KindBinaryExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		b := n.(*ast.BinaryExpr)
		if b.Left != nil {
			b.Left = asValueExpr(Rewrite(b.Left, fn))
		}
		if b.Right != nil {
			b.Right = asValueExpr(Rewrite(b.Right, fn))
		}
		return b
	},
	ast.KindParenExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		p := n.(*ast.ParenExpr)
		if p.Expr != nil {
			p.Expr = asValueExpr(Rewrite(p.Expr, fn))
		}
		return p
	},
	ast.KindFunctionCall: func(n ast.Node, fn RewriteFunc) ast.Node {
		f := n.(*ast.FunctionCall)
		for i, a := range f.Args {
			f.Args[i] = asValueExpr(Rewrite(a, fn))
		}
		if f.Over != nil && f.Over.Frame != nil {
			f.Over.Frame = Rewrite(f.Over.Frame, fn).(*ast.WindowFrameExpression)
		}
		return f
	},
	ast.KindCastExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		c := n.(*ast.CastExpr)
		if c.Expr != nil {
			c.Expr = asValueExpr(Rewrite(c.Expr, fn))
		}
		if c.Type != nil {
			c.Type = Rewrite(c.Type, fn).(*ast.TypeValue)
		}
		return c
	},
	ast.KindBetweenExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		b := n.(*ast.BetweenExpr)
		if b.Expr != nil {
			b.Expr = asValueExpr(Rewrite(b.Expr, fn))
		}
		if b.Low != nil {
			b.Low = asValueExpr(Rewrite(b.Low, fn))
		}
		if b.High != nil {
			b.High = asValueExpr(Rewrite(b.High, fn))
		}
		return b
	},
	ast.KindCaseExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		c := n.(*ast.CaseExpr)
		if c.Operand != nil {
			c.Operand = asValueExpr(Rewrite(c.Operand, fn))
		}
		for i, w := range c.Whens {
			c.Whens[i] = Rewrite(w, fn).(*ast.CaseWhen)
		}
		if c.Else != nil {
			c.Else = asValueExpr(Rewrite(c.Else, fn))
		}
		return c
	},
	ast.KindCaseWhen: func(n ast.Node, fn RewriteFunc) ast.Node {
		w := n.(*ast.CaseWhen)
		if w.Cond != nil {
			w.Cond = asValueExpr(Rewrite(w.Cond, fn))
		}
		if w.Result != nil {
			w.Result = asValueExpr(Rewrite(w.Result, fn))
		}
		return w
	},
	ast.KindTupleExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		t := n.(*ast.TupleExpr)
		for i, e := range t.Items {
			t.Items[i] = asValueExpr(Rewrite(e, fn))
		}
		return t
	},
	ast.KindValueList: func(n ast.Node, fn RewriteFunc) ast.Node {
		v := n.(*ast.ValueList)
		for i, e := range v.Items {
			v.Items[i] = asValueExpr(Rewrite(e, fn))
		}
		return v
	},
	ast.KindArrayConstructor: func(n ast.Node, fn RewriteFunc) ast.Node {
		a := n.(*ast.ArrayConstructor)
		for i, e := range a.Elements {
			a.Elements[i] = asValueExpr(Rewrite(e, fn))
		}
		return a
	},
	ast.KindSubqueryExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		s := n.(*ast.SubqueryExpr)
		if s.Query != nil {
			s.Query = asSelectQuery(Rewrite(s.Query, fn))
		}
		return s
	},
	ast.KindTypeValue: func(n ast.Node, fn RewriteFunc) ast.Node {
		t := n.(*ast.TypeValue)
		for i, a := range t.Args {
			t.Args[i] = asValueExpr(Rewrite(a, fn))
		}
		return t
	},
	ast.KindStringSpecifierValue: func(n ast.Node, fn RewriteFunc) ast.Node {
		s := n.(*ast.StringSpecifierValue)
		if s.Literal != nil {
			s.Literal = Rewrite(s.Literal, fn).(*ast.Literal)
		}
		return s
	},
	ast.KindGroupingSetsExpr: func(n ast.Node, fn RewriteFunc) ast.Node {
		g := n.(*ast.GroupingSetsExpr)
		for _, set := range g.Sets {
			for i, e := range set {
				set[i] = asValueExpr(Rewrite(e, fn))
			}
		}
		return g
	},
}
