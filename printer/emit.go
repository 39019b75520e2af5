package printer

import "github.com/sqlcraft/sqlcraft/ast"

// toPrintTokens is the first stage of the pipeline: it walks node and
// appends print tokens to b, tagging each clause body with its Container so
// renderLines can later decide indentation. The dispatch shape mirrors the
// teacher's Formatter.Format type switch; each case below corresponds to one
// of the teacher's format* methods, rebuilt to append tokens instead of
// writing bytes.
func toPrintTokens(b *printTokenBuilder, node ast.Node) {
	switch n := node.(type) {
	case *ast.InsertQuery:
		emitInsert(b, n)
	case *ast.UpdateQuery:
		emitUpdate(b, n)
	case *ast.DeleteQuery:
		emitDelete(b, n)
	case *ast.SelectItem:
		emitSelectItem(b, n)
	case *ast.WithClause:
		emitWithClause(b, n)
	case *ast.CommonTable:
		emitCommonTable(b, n)
	case *ast.JoinClause:
		emitJoinClause(b, n)
	case *ast.OrderByItem:
		emitOrderByItem(b, n)
	case *ast.WindowDef:
		emitWindowDef(b, n)
	case *ast.WindowFrameExpression:
		emitWindowFrameBody(b, n)
	case *ast.FetchClause:
		emitFetchClause(b, n)
	case *ast.ForClause:
		emitForClause(b, n)
	case ast.SelectQuery:
		emitSelectQueryNode(b, n)
	case ast.SourceExpr:
		emitSourceExpr(b, n)
	case ast.ValueExpr:
		emitValueExpr(b, n)
	}
}

func emitSelectQueryNode(b *printTokenBuilder, q ast.SelectQuery) {
	switch v := q.(type) {
	case *ast.SimpleSelectQuery:
		emitSimpleSelect(b, v)
	case *ast.BinarySelectQuery:
		emitBinarySelect(b, v)
	case *ast.ValuesQuery:
		emitValuesQuery(b, v)
	}
}

func emitSimpleSelect(b *printTokenBuilder, q *ast.SimpleSelectQuery) {
	if q.With != nil {
		emitWithClause(b, q.With)
		b.space()
	}

	b.clauseBreak()
	b.kw("select")
	if q.Distinct {
		b.space()
		if len(q.DistinctOn) > 0 {
			b.kw("distinct on")
			b.punct("(")
			emitValueExprCSV(b, q.DistinctOn)
			b.punct(")")
		} else {
			b.kw("distinct")
		}
	}
	b.enter(SelectClause)
	for i, item := range q.Items {
		if i > 0 {
			b.comma()
		}
		emitSelectItem(b, item)
	}
	b.exit(SelectClause)

	if q.From != nil {
		b.clauseBreak()
		b.kw("from")
		b.enter(FromClause)
		emitSourceExpr(b, q.From)
		b.exit(FromClause)
	}
	for _, j := range q.Joins {
		emitJoinClause(b, j)
	}
	if q.Where != nil {
		b.clauseBreak()
		b.kw("where")
		b.enter(WhereClause)
		emitValueExpr(b, q.Where)
		b.exit(WhereClause)
	}
	if len(q.GroupBy) > 0 {
		b.clauseBreak()
		b.kw("group by")
		b.enter(GroupByClause)
		emitValueExprCSV(b, q.GroupBy)
		b.exit(GroupByClause)
	}
	if q.Having != nil {
		b.clauseBreak()
		b.kw("having")
		b.enter(HavingClause)
		emitValueExpr(b, q.Having)
		b.exit(HavingClause)
	}
	if len(q.Windows) > 0 {
		b.clauseBreak()
		b.kw("window")
		b.enter(WindowClause)
		for i, w := range q.Windows {
			if i > 0 {
				b.comma()
			}
			emitWindowDef(b, w)
		}
		b.exit(WindowClause)
	}
	if len(q.OrderBy) > 0 {
		b.clauseBreak()
		b.kw("order by")
		b.enter(OrderByClause)
		for i, o := range q.OrderBy {
			if i > 0 {
				b.comma()
			}
			emitOrderByItem(b, o)
		}
		b.exit(OrderByClause)
	}
	if q.Limit != nil {
		b.clauseBreak()
		b.kw("limit")
		b.enter(LimitClause)
		emitValueExpr(b, q.Limit.Count)
		b.exit(LimitClause)
		if q.Limit.Offset != nil {
			b.clauseBreak()
			b.kw("offset")
			b.enter(OffsetClause)
			emitValueExpr(b, q.Limit.Offset)
			b.exit(OffsetClause)
		}
	}
	if q.Fetch != nil {
		emitFetchClause(b, q.Fetch)
	}
	if q.For != nil {
		emitForClause(b, q.For)
	}
}

func emitBinarySelect(b *printTokenBuilder, q *ast.BinarySelectQuery) {
	emitSelectQueryNode(b, q.Left)
	b.clauseBreak()
	b.kw(q.Operator)
	b.enter(BinarySelectQueryOperator)
	emitSelectQueryNode(b, q.Right)
	b.exit(BinarySelectQueryOperator)
}

func emitValuesQuery(b *printTokenBuilder, q *ast.ValuesQuery) {
	b.clauseBreak()
	b.kw("values")
	b.enter(Values)
	for i, row := range q.Rows {
		if i > 0 {
			b.comma()
		}
		emitTuple(b, row.Items)
	}
	b.exit(Values)
}

func emitWithClause(b *printTokenBuilder, w *ast.WithClause) {
	b.kw("with")
	if w.Recursive {
		b.space()
		b.kw("recursive")
	}
	b.space()
	for i, ct := range w.Tables {
		if i > 0 {
			b.comma()
		}
		emitCommonTable(b, ct)
	}
}

func emitCommonTable(b *printTokenBuilder, ct *ast.CommonTable) {
	b.ident(ct.Name)
	if len(ct.Columns) > 0 {
		b.punct("(")
		emitIdentCSV(b, ct.Columns)
		b.punct(")")
	}
	b.space()
	b.kw("as")
	b.space()
	if ct.Materialized != nil {
		if *ct.Materialized {
			b.kw("materialized")
		} else {
			b.kw("not materialized")
		}
		b.space()
	}
	b.punct("(")
	b.enter(CommonTable)
	emitSelectQueryNode(b, ct.Query)
	b.exit(CommonTable)
	b.punct(")")
}

func emitInsert(b *printTokenBuilder, q *ast.InsertQuery) {
	b.kw("insert into")
	b.space()
	emitNamespacedName(b, q.Namespaces, q.Table)
	if len(q.Columns) > 0 {
		b.punct("(")
		emitIdentCSV(b, q.Columns)
		b.punct(")")
	}
	b.space()
	emitSelectQueryNode(b, q.Source)
	if len(q.Returning) > 0 {
		b.clauseBreak()
		b.kw("returning")
		b.space()
		emitSelectItemCSV(b, q.Returning)
	}
}

func emitUpdate(b *printTokenBuilder, q *ast.UpdateQuery) {
	b.kw("update")
	b.space()
	emitSourceExpr(b, q.Target)
	b.clauseBreak()
	b.kw("set")
	b.space()
	for i, s := range q.Set {
		if i > 0 {
			b.comma()
		}
		b.ident(s.Column)
		b.space()
		b.op("=")
		b.space()
		emitValueExpr(b, s.Value)
	}
	if q.From != nil {
		b.clauseBreak()
		b.kw("from")
		b.enter(FromClause)
		emitSourceExpr(b, q.From)
		b.exit(FromClause)
		for _, j := range q.Joins {
			emitJoinClause(b, j)
		}
	}
	if q.Where != nil {
		b.clauseBreak()
		b.kw("where")
		b.enter(WhereClause)
		emitValueExpr(b, q.Where)
		b.exit(WhereClause)
	}
	if len(q.Returning) > 0 {
		b.clauseBreak()
		b.kw("returning")
		b.space()
		emitSelectItemCSV(b, q.Returning)
	}
}

func emitDelete(b *printTokenBuilder, q *ast.DeleteQuery) {
	b.kw("delete from")
	b.space()
	emitSourceExpr(b, q.Target)
	if q.Using != nil {
		b.clauseBreak()
		b.kw("using")
		b.space()
		emitSourceExpr(b, q.Using)
	}
	if q.Where != nil {
		b.clauseBreak()
		b.kw("where")
		b.enter(WhereClause)
		emitValueExpr(b, q.Where)
		b.exit(WhereClause)
	}
	if len(q.Returning) > 0 {
		b.clauseBreak()
		b.kw("returning")
		b.space()
		emitSelectItemCSV(b, q.Returning)
	}
}

func emitSelectItem(b *printTokenBuilder, item *ast.SelectItem) {
	emitValueExpr(b, item.Value)
	if item.Alias != "" {
		b.space()
		b.kw("as")
		b.space()
		b.ident(item.Alias)
	}
}

func emitSelectItemCSV(b *printTokenBuilder, items []*ast.SelectItem) {
	for i, it := range items {
		if i > 0 {
			b.comma()
		}
		emitSelectItem(b, it)
	}
}

func emitJoinClause(b *printTokenBuilder, j *ast.JoinClause) {
	if j.JoinType == "," {
		b.comma()
		emitSourceExpr(b, j.Source)
		return
	}
	b.clauseBreak()
	if j.Lateral {
		b.kw("lateral")
		b.space()
	}
	b.kw(j.JoinType)
	b.space()
	b.enter(JoinClause)
	emitSourceExpr(b, j.Source)
	if j.On != nil {
		b.space()
		b.kw("on")
		b.space()
		emitValueExpr(b, j.On)
	} else if len(j.Using) > 0 {
		b.space()
		b.kw("using")
		b.punct("(")
		emitIdentCSV(b, j.Using)
		b.punct(")")
	}
	b.exit(JoinClause)
}

func emitSourceExpr(b *printTokenBuilder, s ast.SourceExpr) {
	switch v := s.(type) {
	case *ast.TableSource:
		emitNamespacedName(b, v.Namespaces, v.Name)
	case *ast.FunctionSource:
		emitValueExpr(b, v.Call)
	case *ast.SubquerySource:
		b.punct("(")
		b.enter(SubQuerySource)
		emitSelectQueryNode(b, v.Query)
		b.exit(SubQuerySource)
		b.punct(")")
	case *ast.AliasedSource:
		if v.Lateral {
			b.kw("lateral")
			b.space()
		}
		emitSourceExpr(b, v.Source)
		if v.Alias != "" {
			b.space()
			b.ident(v.Alias)
			if len(v.Columns) > 0 {
				b.punct("(")
				emitIdentCSV(b, v.Columns)
				b.punct(")")
			}
		}
	}
}

func emitOrderByItem(b *printTokenBuilder, o *ast.OrderByItem) {
	emitValueExpr(b, o.Value)
	if o.Desc {
		b.space()
		b.kw("desc")
	}
	if o.NullsFirst != nil {
		b.space()
		if *o.NullsFirst {
			b.kw("nulls first")
		} else {
			b.kw("nulls last")
		}
	}
}

func emitWindowDef(b *printTokenBuilder, w *ast.WindowDef) {
	b.ident(w.Name)
	b.space()
	b.kw("as")
	b.space()
	b.punct("(")
	b.enter(WindowFrameExpression)
	emitWindowFrameBody(b, w.Frame)
	b.exit(WindowFrameExpression)
	b.punct(")")
}

func emitWindowFrameBody(b *printTokenBuilder, f *ast.WindowFrameExpression) {
	wrote := false
	sep := func() {
		if wrote {
			b.space()
		}
		wrote = true
	}
	if f.WindowName != "" {
		sep()
		b.ident(f.WindowName)
	}
	if len(f.Partition) > 0 {
		sep()
		b.kw("partition by")
		b.space()
		b.enter(PartitionByClause)
		emitValueExprCSV(b, f.Partition)
		b.exit(PartitionByClause)
	}
	if len(f.Order) > 0 {
		sep()
		b.kw("order by")
		b.space()
		for i, o := range f.Order {
			if i > 0 {
				b.comma()
			}
			emitOrderByItem(b, o)
		}
	}
	if f.Frame != nil {
		sep()
		emitFrameSpec(b, f.Frame)
	}
}

func emitFrameSpec(b *printTokenBuilder, fs *ast.FrameSpec) {
	b.kw(fs.Unit)
	b.space()
	if fs.End != nil {
		b.kw("between")
		b.space()
		emitFrameBound(b, fs.Start)
		b.space()
		b.kw("and")
		b.space()
		emitFrameBound(b, fs.End)
	} else {
		emitFrameBound(b, fs.Start)
	}
}

func emitFrameBound(b *printTokenBuilder, fb *ast.FrameBound) {
	switch fb.BoundKind {
	case ast.BoundUnboundedPreceding:
		b.kw("unbounded preceding")
	case ast.BoundUnboundedFollowing:
		b.kw("unbounded following")
	case ast.BoundCurrentRow:
		b.kw("current row")
	case ast.BoundPreceding:
		emitValueExpr(b, fb.Value)
		b.space()
		b.kw("preceding")
	case ast.BoundFollowing:
		emitValueExpr(b, fb.Value)
		b.space()
		b.kw("following")
	}
}

func emitFetchClause(b *printTokenBuilder, f *ast.FetchClause) {
	b.clauseBreak()
	if f.First {
		b.kw("fetch first")
	} else {
		b.kw("fetch next")
	}
	b.space()
	emitValueExpr(b, f.Count)
	b.space()
	b.kw(f.Unit)
}

func emitForClause(b *printTokenBuilder, f *ast.ForClause) {
	b.clauseBreak()
	b.kw("for")
	b.space()
	b.kw(f.Mode)
}

func emitValueExpr(b *printTokenBuilder, v ast.ValueExpr) {
	switch n := v.(type) {
	case *ast.ColumnRef:
		if n.Star {
			for _, ns := range n.Namespaces {
				b.ident(ns)
				b.punct(".")
			}
			b.punct("*")
			return
		}
		emitNamespacedName(b, n.Namespaces, n.Name)
	case *ast.Literal:
		switch n.SubKind {
		case ast.LiteralString:
			b.lit(escapeStringLiteral(n.Value))
		case ast.LiteralNumber:
			b.lit(n.Value)
		default: // boolean, null, keyword literal
			b.kw(n.Value)
		}
	case *ast.UnaryExpr:
		if isWordOperator(n.Operator) {
			b.kw(n.Operator)
			b.space()
		} else {
			b.op(n.Operator)
		}
		emitValueExpr(b, n.Operand)
	case *ast.BinaryExpr:
		emitValueExpr(b, n.Left)
		if n.Operator == "and" {
			b.space()
			b.and_()
		} else {
			b.space()
			if isWordOperator(n.Operator) {
				b.kw(n.Operator)
			} else {
				b.op(n.Operator)
			}
			b.space()
		}
		emitValueExpr(b, n.Right)
	case *ast.ParenExpr:
		b.punct("(")
		emitValueExpr(b, n.Expr)
		b.punct(")")
	case *ast.FunctionCall:
		emitNamespacedFuncName(b, n.Namespaces, n.Name)
		b.punct("(")
		if n.Distinct {
			b.kw("distinct")
			b.space()
		}
		emitValueExprCSV(b, n.Args)
		b.punct(")")
		if n.Over != nil {
			b.space()
			b.kw("over")
			b.space()
			emitOverClause(b, n.Over)
		}
	case *ast.CastExpr:
		if n.UsesCastKeyword {
			b.kw("cast")
			b.punct("(")
			emitValueExpr(b, n.Expr)
			b.space()
			b.kw("as")
			b.space()
			emitTypeValue(b, n.Type)
			b.punct(")")
		} else {
			emitValueExpr(b, n.Expr)
			b.punct("::")
			emitTypeValue(b, n.Type)
		}
	case *ast.BetweenExpr:
		emitValueExpr(b, n.Expr)
		b.space()
		if n.Negated {
			b.kw("not between")
		} else {
			b.kw("between")
		}
		b.space()
		emitValueExpr(b, n.Low)
		b.space()
		b.kw("and")
		b.space()
		emitValueExpr(b, n.High)
	case *ast.CaseExpr:
		b.kw("case")
		if n.Operand != nil {
			b.space()
			emitValueExpr(b, n.Operand)
		}
		for _, w := range n.Whens {
			b.space()
			b.kw("when")
			b.space()
			emitValueExpr(b, w.Cond)
			b.space()
			b.kw("then")
			b.space()
			emitValueExpr(b, w.Result)
		}
		if n.Else != nil {
			b.space()
			b.kw("else")
			b.space()
			emitValueExpr(b, n.Else)
		}
		b.space()
		b.kw("end")
	case *ast.TupleExpr:
		emitTuple(b, n.Items)
	case *ast.ValueList:
		emitTuple(b, n.Items)
	case *ast.ArrayConstructor:
		b.kw("array")
		b.punct("[")
		emitValueExprCSV(b, n.Elements)
		b.punct("]")
	case *ast.SubqueryExpr:
		b.punct("(")
		emitSelectQueryNode(b, n.Query)
		b.punct(")")
	case *ast.Parameter:
		if n.Anonymous {
			b.raw("?")
		} else {
			b.raw(":" + n.Name)
		}
	case *ast.TypeValue:
		emitTypeValue(b, n)
	case *ast.StringSpecifierValue:
		b.raw(n.Specifier)
		b.lit(escapeStringLiteral(n.Literal.Value))
	case *ast.GroupingSetsExpr:
		emitGroupingSets(b, n)
	}
}

func emitGroupingSets(b *printTokenBuilder, n *ast.GroupingSetsExpr) {
	b.kw(n.SetKind)
	b.space()
	b.punct("(")
	for i, set := range n.Sets {
		if i > 0 {
			b.comma()
		}
		switch len(set) {
		case 0:
			b.punct("(")
			b.punct(")")
		case 1:
			emitValueExpr(b, set[0])
		default:
			emitTuple(b, set)
		}
	}
	b.punct(")")
}

func emitTuple(b *printTokenBuilder, items []ast.ValueExpr) {
	b.punct("(")
	emitValueExprCSV(b, items)
	b.punct(")")
}

func emitTypeValue(b *printTokenBuilder, t *ast.TypeValue) {
	emitNamespacedName(b, t.Namespaces, t.Name)
	if len(t.Args) > 0 {
		b.punct("(")
		emitValueExprCSV(b, t.Args)
		b.punct(")")
	}
}

func emitOverClause(b *printTokenBuilder, o *ast.OverClause) {
	if o.Frame == nil {
		b.ident(o.WindowName)
		return
	}
	b.punct("(")
	b.enter(WindowFrameExpression)
	emitWindowFrameBody(b, o.Frame)
	b.exit(WindowFrameExpression)
	b.punct(")")
}

func emitNamespacedName(b *printTokenBuilder, namespaces []string, name string) {
	for _, ns := range namespaces {
		b.ident(ns)
		b.punct(".")
	}
	b.ident(name)
}

func emitNamespacedFuncName(b *printTokenBuilder, namespaces []string, name string) {
	for _, ns := range namespaces {
		b.ident(ns)
		b.punct(".")
	}
	b.funcName(name)
}

func emitIdentCSV(b *printTokenBuilder, names []string) {
	for i, n := range names {
		if i > 0 {
			b.comma()
		}
		b.ident(n)
	}
}

func emitValueExprCSV(b *printTokenBuilder, items []ast.ValueExpr) {
	for i, it := range items {
		if i > 0 {
			b.comma()
		}
		emitValueExpr(b, it)
	}
}

// isWordOperator reports whether op is spelled with letters ("and", "not
// between", "is not distinct from", ...) rather than symbols ("+", "<>",
// "::"), which decides whether it needs surrounding spaces written as a
// keyword token (subject to KeywordCase) or a bare operator token.
func isWordOperator(op string) bool {
	if op == "" {
		return false
	}
	c := op[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
