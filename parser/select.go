package parser

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/ast"
	"github.com/sqlcraft/sqlcraft/token"
)

// parseSelectBody parses an optional WITH clause, a simple SELECT or a bare
// VALUES list, and any trailing chain of set operators (spec §3.2, §4.4.1).
// It performs no EOF check, so it composes both as the top of a from-text
// entry point and as the body of a parenthesized subquery.
func (p *parser) parseSelectBody() (ast.SelectQuery, error) {
	var with *ast.WithClause
	if p.isCommand("with") || p.isCommand("with recursive") {
		w, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		with = w
	}

	left, err := p.parseSimpleSelectOrValues()
	if err != nil {
		return nil, err
	}
	if with != nil {
		simple, ok := left.(*ast.SimpleSelectQuery)
		if !ok {
			return nil, p.missing("a WITH clause must attach to a SELECT, not a bare VALUES list")
		}
		simple.With = with
		left = simple
	}

	for {
		op, ok := p.matchSetOperator()
		if !ok {
			break
		}
		p.advance()
		right, err := p.parseSimpleSelectOrValues()
		if err != nil {
			return nil, err
		}
		left = &ast.BinarySelectQuery{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) matchSetOperator() (string, bool) {
	for _, op := range []string{"union all", "union", "intersect all", "intersect", "except all", "except"} {
		if p.isCommand(op) {
			return op, true
		}
	}
	return "", false
}

func (p *parser) parseSimpleSelectOrValues() (ast.SelectQuery, error) {
	if p.isCommand("values") {
		return p.parseValuesQuery()
	}
	return p.parseSimpleSelect()
}

func (p *parser) parseWithClause() (*ast.WithClause, error) {
	recursive := p.isCommand("with recursive")
	p.advance() // "with" | "with recursive"
	w := &ast.WithClause{Recursive: recursive}
	for {
		ct, err := p.parseCommonTable()
		if err != nil {
			return nil, err
		}
		w.Tables = append(w.Tables, ct)
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	return w, nil
}

func (p *parser) parseCommonTable() (*ast.CommonTable, error) {
	name, err := p.parseNameSegment()
	if err != nil {
		return nil, err
	}
	ct := &ast.CommonTable{Name: name}
	if p.isKind(token.OpenParen) {
		cols, err := p.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		ct.Columns = cols
	}
	if _, err := p.expectCommand("as"); err != nil {
		return nil, err
	}
	switch {
	case p.consumeCommand("materialized"):
		t := true
		ct.Materialized = &t
	case p.consumeCommand("not materialized"):
		f := false
		ct.Materialized = &f
	}
	if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
		return nil, err
	}
	query, err := p.parseSelectBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	ct.Query = query
	return ct, nil
}

func (p *parser) parseSimpleSelect() (*ast.SimpleSelectQuery, error) {
	if _, err := p.expectCommand("select"); err != nil {
		return nil, err
	}
	q := &ast.SimpleSelectQuery{}

	switch {
	case p.isCommand("distinct on"):
		p.advance()
		if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
			return nil, err
		}
		items, err := p.parseValueExprList(func() (ast.ValueExpr, error) { return p.parseExpr(precOr, true, true) })
		if err != nil {
			return nil, err
		}
		q.DistinctOn = items
		if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
			return nil, err
		}
		q.Distinct = true
	case p.consumeCommand("distinct"):
		q.Distinct = true
	default:
		p.consumeCommand("all")
	}

	items, err := p.parseSelectItems()
	if err != nil {
		return nil, err
	}
	q.Items = items

	if p.consumeCommand("from") {
		from, err := p.parseSourceExpr()
		if err != nil {
			return nil, err
		}
		q.From = from
		joins, err := p.parseJoins()
		if err != nil {
			return nil, err
		}
		q.Joins = joins
	}
	if p.consumeCommand("where") {
		where, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		q.Where = where
	}
	if p.consumeCommand("group by") {
		groupBy, err := p.parseGroupByList()
		if err != nil {
			return nil, err
		}
		q.GroupBy = groupBy
	}
	if p.consumeCommand("having") {
		if len(q.GroupBy) == 0 {
			return nil, p.missing("GROUP BY before HAVING")
		}
		having, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		q.Having = having
	}
	if p.consumeCommand("window") {
		windows, err := p.parseWindowClause()
		if err != nil {
			return nil, err
		}
		q.Windows = windows
	}
	if p.consumeCommand("order by") {
		orderBy, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		q.OrderBy = orderBy
	}
	if err := p.parseLimitFetch(q); err != nil {
		return nil, err
	}
	switch {
	case p.isCommand("for update"), p.isCommand("for share"), p.isCommand("for key share"), p.isCommand("for no key update"):
		q.For = &ast.ForClause{Mode: p.advance().Value}
	}
	return q, nil
}

func (p *parser) parseSelectItems() ([]*ast.SelectItem, error) {
	scratch := ast.GetSelectItemSlice()
	defer ast.ReleaseSelectItemSlice(scratch)
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		*scratch = append(*scratch, item)
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	out := make([]*ast.SelectItem, len(*scratch))
	copy(out, *scratch)
	return out, nil
}

func (p *parser) parseSelectItem() (*ast.SelectItem, error) {
	value, err := p.parseExpr(precOr, true, true)
	if err != nil {
		return nil, err
	}
	item := &ast.SelectItem{Value: value}
	switch {
	case p.consumeCommand("as"):
		name, err := p.parseNameSegment()
		if err != nil {
			return nil, err
		}
		item.Alias = name
	case p.isKind(token.Identifier):
		item.Alias = p.advance().Value
	}
	return item, nil
}

// parseSourceExpr parses one FROM-clause primary source plus its optional
// LATERAL flag and alias (spec §4.4.3).
func (p *parser) parseSourceExpr() (ast.SourceExpr, error) {
	lateral := p.consumeCommand("lateral")
	src, err := p.parseSource()
	if err != nil {
		return nil, err
	}
	alias, cols, hasAlias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	if !hasAlias && !lateral {
		return src, nil
	}
	return &ast.AliasedSource{Source: src, Alias: alias, Columns: cols, Lateral: lateral}, nil
}

// parseSource parses a source with no alias attached: a table name, a
// function call, a parenthesized subquery, or a parenthesized source
// (used to group a join chain under one set of parens).
func (p *parser) parseSource() (ast.SourceExpr, error) {
	if p.isKind(token.OpenParen) {
		p.advance()
		if p.isCommand("select") || p.isCommand("values") || p.isCommand("with") {
			query, err := p.parseSelectBody()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
				return nil, err
			}
			return &ast.SubquerySource{Query: query}, nil
		}
		inner, err := p.parseSourceExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	if p.isKind(token.Function) {
		name := p.advance().Value
		call, err := p.parseFunctionCallTail(nil, name)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionSource{Call: call.(*ast.FunctionCall)}, nil
	}
	namespaces, name, err := p.parseNameChain()
	if err != nil {
		return nil, err
	}
	return &ast.TableSource{Namespaces: namespaces, Name: name}, nil
}

func (p *parser) parseOptionalAlias() (alias string, columns []string, ok bool, err error) {
	switch {
	case p.consumeCommand("as"):
		alias, err = p.parseNameSegment()
		if err != nil {
			return "", nil, false, err
		}
		ok = true
	case p.isKind(token.Identifier):
		if _, _, isJoin := p.matchJoinPhrase(); isJoin {
			break // "inner join", "left join", ... begins a join, not an alias
		}
		alias = p.advance().Value
		ok = true
	}
	if ok && p.isKind(token.OpenParen) {
		columns, err = p.parseIdentifierList()
		if err != nil {
			return "", nil, false, err
		}
	}
	return alias, columns, ok, nil
}

// parseJoins consumes the zero or more joins following a FROM source,
// including plain comma joins. Join-type phrases ("left outer join", ...)
// are never reserved words at lex time (a bare JOIN/LEFT/OUTER is still a
// legal identifier elsewhere), so they are recognized here directly against
// the keyword trie rather than at tokenize time (spec §4.4.3, §9).
func (p *parser) parseJoins() ([]*ast.JoinClause, error) {
	scratch := ast.GetJoinClauseSlice()
	defer ast.ReleaseJoinClauseSlice(scratch)
	for {
		if p.isKind(token.Comma) {
			p.advance()
			src, err := p.parseSourceExpr()
			if err != nil {
				return nil, err
			}
			*scratch = append(*scratch, &ast.JoinClause{JoinType: ",", Source: src})
			continue
		}
		phrase, n, ok := p.matchJoinPhrase()
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			p.advance()
		}
		lateral := p.consumeCommand("lateral")
		src, err := p.parseSource()
		if err != nil {
			return nil, err
		}
		alias, cols, hasAlias, err := p.parseOptionalAlias()
		if err != nil {
			return nil, err
		}
		if hasAlias || lateral {
			src = &ast.AliasedSource{Source: src, Alias: alias, Columns: cols, Lateral: lateral}
		}
		jc := &ast.JoinClause{JoinType: phrase, Source: src}
		switch {
		case p.consumeCommand("on"):
			cond, err := p.parseExpr(precOr, true, true)
			if err != nil {
				return nil, err
			}
			jc.On = cond
		case p.consumeCommand("using"):
			cols, err := p.parseIdentifierList()
			if err != nil {
				return nil, err
			}
			jc.Using = cols
		}
		*scratch = append(*scratch, jc)
	}
	out := make([]*ast.JoinClause, len(*scratch))
	copy(out, *scratch)
	return out, nil
}

// matchJoinPhrase looks ahead at up to four consecutive Identifier-kind
// lexemes and returns the longest JoinTrie match among them.
func (p *parser) matchJoinPhrase() (phrase string, n int, ok bool) {
	const maxJoinWords = 4
	var words []string
	for i := 0; i < maxJoinWords; i++ {
		l := p.peek(i)
		if l.Kind != token.Identifier {
			break
		}
		words = append(words, l.Value)
	}
	matched, ok := token.JoinTrie.LongestMatch(words)
	if !ok {
		return "", 0, false
	}
	return strings.ToLower(strings.Join(words[:matched], " ")), matched, true
}

func (p *parser) parseGroupByList() ([]ast.ValueExpr, error) {
	var items []ast.ValueExpr
	for {
		if p.isCommand("grouping sets") || p.isCommand("rollup") || p.isCommand("cube") {
			gs, err := p.parseGroupingSetsExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, gs)
		} else {
			e, err := p.parseExpr(precOr, true, true)
			if err != nil {
				return nil, err
			}
			items = append(items, e)
		}
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	return items, nil
}

func (p *parser) parseGroupingSetsExpr() (*ast.GroupingSetsExpr, error) {
	setKind := p.advance().Value
	g := &ast.GroupingSetsExpr{SetKind: setKind}
	if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
		return nil, err
	}
	for {
		var set []ast.ValueExpr
		if p.isKind(token.OpenParen) {
			p.advance()
			if !p.isKind(token.CloseParen) {
				for {
					e, err := p.parseExpr(precOr, true, true)
					if err != nil {
						return nil, err
					}
					set = append(set, e)
					if p.consumeSymbol(token.Comma) {
						continue
					}
					break
				}
			}
			if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
				return nil, err
			}
		} else {
			e, err := p.parseExpr(precOr, true, true)
			if err != nil {
				return nil, err
			}
			set = []ast.ValueExpr{e}
		}
		g.Sets = append(g.Sets, set)
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	return g, nil
}

func (p *parser) parseWindowClause() ([]*ast.WindowDef, error) {
	var defs []*ast.WindowDef
	for {
		name, err := p.parseNameSegment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectCommand("as"); err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
			return nil, err
		}
		frame, err := p.parseWindowFrameBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
			return nil, err
		}
		defs = append(defs, &ast.WindowDef{Name: name, Frame: frame})
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	return defs, nil
}

func (p *parser) parseLimitFetch(q *ast.SimpleSelectQuery) error {
	switch {
	case p.consumeCommand("limit"):
		count, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return err
		}
		lc := &ast.LimitClause{Count: count}
		if p.consumeCommand("offset") {
			off, err := p.parseExpr(precOr, true, true)
			if err != nil {
				return err
			}
			lc.Offset = off
		}
		q.Limit = lc
	case p.consumeCommand("offset"):
		off, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return err
		}
		q.Limit = &ast.LimitClause{Offset: off}
	}

	if !p.isCommand("fetch") {
		return nil
	}
	p.advance()
	fc := &ast.FetchClause{Count: &ast.Literal{SubKind: ast.LiteralNumber, Value: "1"}}
	switch {
	case p.consumeCommand("first"):
		fc.First = true
	case p.consumeCommand("next"):
		fc.First = false
	default:
		return p.unexpected(`"first" or "next"`)
	}
	if !p.isCommand("rows only") && !p.isCommand("percent") && !p.isCommand("percent with ties") {
		count, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return err
		}
		fc.Count = count
	}
	switch {
	case p.consumeCommand("rows only"):
		fc.Unit = "rows only"
	case p.consumeCommand("percent with ties"):
		fc.Unit = "percent with ties"
	case p.consumeCommand("percent"):
		fc.Unit = "percent"
	default:
		return p.missing(`expected "rows only", "percent", or "percent with ties"`)
	}
	q.Fetch = fc
	return nil
}
