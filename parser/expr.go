package parser

import (
	"github.com/sqlcraft/sqlcraft/ast"
	"github.com/sqlcraft/sqlcraft/token"
)

// precedence levels for the infix operator loop (spec §4.4.2). "not" as a
// unary prefix and the unary +/-/~ forms are handled in parseUnary instead,
// since they never appear as the left operand of an infix operator.
const (
	precOr = 1 + iota
	precAnd
	_ // precNot: unary only, never reached from the infix loop
	precComparison
	precBetween
	precAdditive
	precMultiplicative
	precCast
)

const precUnary = precCast + 1

// comparisonOperators is the set of canonical two-place comparison spellings
// the tokenizer may hand back as a single Operator lexeme (multi-word forms
// like "is not distinct from" are already merged at lex time, spec §4.3).
var comparisonOperators = map[string]bool{
	"=": true, "<>": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"is": true, "is not": true,
	"like": true, "not like": true, "ilike": true, "not ilike": true,
	"in": true, "not in": true,
	"is distinct from": true, "is not distinct from": true,
}

// classifyInfix reports the precedence and kind of the infix operator at the
// parser's current position, or ok=false if the current lexeme does not
// continue an expression at all (including "and"/"or" when the caller has
// disabled them, e.g. while parsing a BETWEEN bound).
func classifyInfix(cur token.Lexeme, allowAnd, allowOr bool) (op string, prec int, isCast, isBetween, isInList bool, ok bool) {
	if cur.Kind != token.Operator {
		return "", 0, false, false, false, false
	}
	switch {
	case cur.Value == "or":
		return "or", precOr, false, false, false, allowOr
	case cur.Value == "and":
		return "and", precAnd, false, false, false, allowAnd
	case cur.Value == "in" || cur.Value == "not in":
		return cur.Value, precComparison, false, false, true, true
	case comparisonOperators[cur.Value]:
		return cur.Value, precComparison, false, false, false, true
	case cur.Value == "between" || cur.Value == "not between":
		return cur.Value, precBetween, false, true, false, true
	case cur.Value == "+" || cur.Value == "-":
		return cur.Value, precAdditive, false, false, false, true
	case cur.Value == "*" || cur.Value == "/" || cur.Value == "%":
		return cur.Value, precMultiplicative, false, false, false, true
	case cur.Value == "::":
		return cur.Value, precCast, true, false, false, true
	}
	return "", 0, false, false, false, false
}

// parseExpr implements the precedence-climbing value parser (spec §4.4.2).
// minPrec is the lowest-precedence infix operator this call may consume;
// allowAnd/allowOr gate "and"/"or" specifically so a BETWEEN bound can
// exclude them without otherwise changing the precedence table.
func (p *parser) parseExpr(minPrec int, allowAnd, allowOr bool) (ast.ValueExpr, error) {
	left, err := p.parseUnary(allowAnd, allowOr)
	if err != nil {
		return nil, err
	}
	for {
		op, prec, isCast, isBetween, isInList, ok := classifyInfix(p.cur(), allowAnd, allowOr)
		if !ok || prec < minPrec {
			break
		}
		p.advance()
		switch {
		case isBetween:
			left, err = p.parseBetweenTail(left, op == "not between")
		case isCast:
			var typeVal *ast.TypeValue
			typeVal, err = p.parseTypeValue()
			left = &ast.CastExpr{Expr: left, Type: typeVal}
		case isInList:
			var right ast.ValueExpr
			right, err = p.parseInListTail()
			left = &ast.BinaryExpr{Operator: op, Left: left, Right: right}
		default:
			var right ast.ValueExpr
			right, err = p.parseExpr(prec+1, allowAnd, allowOr)
			left = &ast.BinaryExpr{Operator: op, Left: left, Right: right}
		}
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseBetweenTail parses the "low AND high" tail of a BETWEEN expression
// once the BETWEEN/NOT BETWEEN operator itself has been consumed. Both
// bounds are parsed with AND/OR disabled (spec §9 open-question resolution)
// so the bound's own "AND" is never mistaken for a continuation of an outer
// boolean expression; a trailing "AND"/"OR" after the whole BetweenExpr is
// still picked up by the caller's infix loop once this returns.
func (p *parser) parseBetweenTail(expr ast.ValueExpr, negated bool) (ast.ValueExpr, error) {
	low, err := p.parseExpr(precComparison, false, false)
	if err != nil {
		return nil, err
	}
	if !p.consumeOperator("and") {
		return nil, p.unexpected(`"and"`)
	}
	high, err := p.parseExpr(precComparison, false, false)
	if err != nil {
		return nil, err
	}
	return &ast.BetweenExpr{Negated: negated, Expr: expr, Low: low, High: high}, nil
}

// parseInListTail parses the right-hand side of IN/NOT IN: either a
// parenthesized subquery or a parenthesized comma list, which becomes an
// ast.ValueList rather than an ast.TupleExpr since the parens here only
// delimit a list, they never denote a tuple value in their own right (see
// the ValueList/TupleExpr distinction in ast/expression.go).
func (p *parser) parseInListTail() (ast.ValueExpr, error) {
	if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
		return nil, err
	}
	if p.isCommand("select") || p.isCommand("values") || p.isCommand("with") {
		query, err := p.parseSelectBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
			return nil, err
		}
		return &ast.SubqueryExpr{Query: query}, nil
	}
	items, err := p.parseValueExprList(func() (ast.ValueExpr, error) { return p.parseExpr(precOr, true, true) })
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	return &ast.ValueList{Items: items}, nil
}

// parseUnary handles the prefix forms: NOT, unary +/-/~, and EXISTS/NOT
// EXISTS (which are grammatically prefix operators over a parenthesized
// subquery, not infix operators, despite sharing a precedence tier with
// BETWEEN in the spec's table).
func (p *parser) parseUnary(allowAnd, allowOr bool) (ast.ValueExpr, error) {
	cur := p.cur()
	if cur.Kind == token.Operator {
		switch cur.Value {
		case "not":
			p.advance()
			operand, err := p.parseExpr(precComparison-1, allowAnd, allowOr)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpr{Operator: "not", Operand: operand}, nil
		case "exists", "not exists":
			p.advance()
			sub, err := p.parseParenSubquery()
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpr{Operator: cur.Value, Operand: sub}, nil
		}
	}
	if cur.Kind == token.Operator && (cur.Value == "+" || cur.Value == "-" || cur.Value == "~") {
		p.advance()
		operand, err := p.parseExpr(precUnary, allowAnd, allowOr)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: cur.Value, Operand: operand}, nil
	}
	return p.parseAtom(allowAnd, allowOr)
}

func (p *parser) parseParenSubquery() (*ast.SubqueryExpr, error) {
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
	return &ast.SubqueryExpr{Query: query}, nil
}

// parseAtom parses the lowest-level value forms: literals, parameters,
// string-specifier pairs, CAST(...), CASE, ARRAY[...], parenthesized
// expressions/tuples/subqueries, and column-reference/function-call chains.
func (p *parser) parseAtom(allowAnd, allowOr bool) (ast.ValueExpr, error) {
	cur := p.cur()

	switch {
	case cur.Kind == token.Literal:
		p.advance()
		return literalFromLexeme(cur), nil

	case cur.Kind == token.StringSpecifier:
		p.advance()
		litLex, err := p.expectSymbol(token.Literal, "a string literal")
		if err != nil {
			return nil, err
		}
		return &ast.StringSpecifierValue{Specifier: cur.Value, Literal: literalFromLexeme(litLex)}, nil

	case cur.Kind == token.Parameter:
		p.advance()
		if cur.Value == "" {
			return &ast.Parameter{Anonymous: true}, nil
		}
		return &ast.Parameter{Name: cur.Value}, nil

	case cur.IsCommand("cast"):
		return p.parseCastKeywordExpr()

	case cur.IsCommand("case"):
		return p.parseCaseExpr()

	case cur.Kind == token.Type && cur.Value == "array" && p.peek(1).Kind == token.OpenBracket:
		return p.parseArrayConstructor()

	case cur.Kind == token.OpenParen:
		return p.parseParenAtom(allowAnd, allowOr)

	case cur.Kind == token.Function:
		p.advance()
		return p.parseFunctionCallTail(nil, cur.Value)

	case cur.Kind.Is(token.Identifier | token.Command | token.Type):
		return p.parseColumnRefOrFunctionChain()
	}

	return nil, p.unexpected("a value")
}

func literalFromLexeme(l token.Lexeme) *ast.Literal {
	switch l.Value {
	case "true", "false":
		return &ast.Literal{SubKind: ast.LiteralBoolean, Value: l.Value}
	case "null":
		return &ast.Literal{SubKind: ast.LiteralNull, Value: l.Value}
	case "current_date", "current_timestamp", "current_time":
		return &ast.Literal{SubKind: ast.LiteralKeyword, Value: l.Value}
	}
	if len(l.Value) > 0 && (l.Value[0] == '\'' || isDigitOrDot(l.Value[0])) {
		if l.Value[0] == '\'' {
			return &ast.Literal{SubKind: ast.LiteralString, Value: l.Value}
		}
		return &ast.Literal{SubKind: ast.LiteralNumber, Value: l.Value}
	}
	return &ast.Literal{SubKind: ast.LiteralString, Value: l.Value}
}

func isDigitOrDot(b byte) bool { return (b >= '0' && b <= '9') || b == '.' || b == '+' || b == '-' }

func (p *parser) parseCastKeywordExpr() (ast.ValueExpr, error) {
	p.advance() // cast
	if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(precOr, true, true)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectCommand("as"); err != nil {
		return nil, err
	}
	typeVal, err := p.parseTypeValue()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	return &ast.CastExpr{Expr: expr, Type: typeVal, UsesCastKeyword: true}, nil
}

func (p *parser) parseTypeValue() (*ast.TypeValue, error) {
	cur := p.cur()
	if !cur.Kind.Is(token.Type | token.Identifier | token.Command) {
		return nil, p.unexpected("a type name")
	}
	namespaces, name, err := p.parseNameChain()
	if err != nil {
		return nil, err
	}
	tv := &ast.TypeValue{Namespaces: namespaces, Name: name}
	if p.isKind(token.OpenParen) {
		p.advance()
		args, err := p.parseValueExprList(func() (ast.ValueExpr, error) { return p.parseExpr(precOr, true, true) })
		if err != nil {
			return nil, err
		}
		tv.Args = args
		if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
			return nil, err
		}
	}
	for p.isKind(token.OpenBracket) {
		p.advance()
		if _, err := p.expectSymbol(token.CloseBracket, "]"); err != nil {
			return nil, err
		}
		tv.Name += "[]"
	}
	return tv, nil
}

func (p *parser) parseCaseExpr() (ast.ValueExpr, error) {
	p.advance() // case
	c := &ast.CaseExpr{}
	if !p.isCommand("when") {
		operand, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}
	if !p.isCommand("when") {
		return nil, p.missing(`expected "when" in CASE expression`)
	}
	for p.consumeCommand("when") {
		cond, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectCommand("then"); err != nil {
			return nil, err
		}
		result, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, &ast.CaseWhen{Cond: cond, Result: result})
	}
	if p.consumeCommand("else") {
		elseVal, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		c.Else = elseVal
	}
	if _, err := p.expectCommand("end"); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *parser) parseArrayConstructor() (ast.ValueExpr, error) {
	p.advance() // array
	if _, err := p.expectSymbol(token.OpenBracket, "["); err != nil {
		return nil, err
	}
	a := &ast.ArrayConstructor{}
	if !p.isKind(token.CloseBracket) {
		elems, err := p.parseValueExprList(func() (ast.ValueExpr, error) { return p.parseExpr(precOr, true, true) })
		if err != nil {
			return nil, err
		}
		a.Elements = elems
	}
	if _, err := p.expectSymbol(token.CloseBracket, "]"); err != nil {
		return nil, err
	}
	return a, nil
}

// parseParenAtom handles every form that starts with "(": a subquery, a
// parenthesized scalar expression, or a tuple/value-list of two or more
// comma-separated values.
func (p *parser) parseParenAtom(allowAnd, allowOr bool) (ast.ValueExpr, error) {
	p.advance() // (
	if p.isCommand("select") || p.isCommand("values") || p.isCommand("with") {
		query, err := p.parseSelectBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
			return nil, err
		}
		return &ast.SubqueryExpr{Query: query}, nil
	}
	first, err := p.parseExpr(precOr, true, true)
	if err != nil {
		return nil, err
	}
	if p.isKind(token.Comma) {
		items := []ast.ValueExpr{first}
		for p.consumeSymbol(token.Comma) {
			item, err := p.parseExpr(precOr, true, true)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
			return nil, err
		}
		return &ast.TupleExpr{Items: items}, nil
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	return &ast.ParenExpr{Expr: first}, nil
}

// parseColumnRefOrFunctionChain reads a dot-separated chain of name segments
// that terminates on a bare `*` wildcard or a Function-kind lexeme (spec
// §4.4.3: "terminating on a Function or * which must be the last segment").
func (p *parser) parseColumnRefOrFunctionChain() (ast.ValueExpr, error) {
	var segments []string
	for {
		cur := p.cur()
		switch {
		case cur.Kind == token.Function:
			p.advance()
			return p.parseFunctionCallTail(segments, cur.Value)
		case cur.Kind == token.Identifier && cur.Value == "*":
			p.advance()
			return &ast.ColumnRef{Namespaces: segments, Star: true}, nil
		case cur.Kind.Is(token.Identifier | token.Command | token.Type):
			p.advance()
			segments = append(segments, cur.Value)
		default:
			return nil, p.unexpected("a column reference")
		}
		if !p.consumeSymbol(token.Dot) {
			break
		}
	}
	name := segments[len(segments)-1]
	return &ast.ColumnRef{Namespaces: segments[:len(segments)-1], Name: name}, nil
}

func (p *parser) parseFunctionCallTail(namespaces []string, name string) (ast.ValueExpr, error) {
	if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
		return nil, err
	}
	call := &ast.FunctionCall{Namespaces: namespaces, Name: name}
	if p.consumeCommand("distinct") {
		call.Distinct = true
	}
	if !p.isKind(token.CloseParen) {
		if cur := p.cur(); cur.Kind == token.Identifier && cur.Value == "*" {
			p.advance()
			call.Args = []ast.ValueExpr{&ast.ColumnRef{Star: true}}
		} else {
			args, err := p.parseValueExprList(func() (ast.ValueExpr, error) { return p.parseExpr(precOr, true, true) })
			if err != nil {
				return nil, err
			}
			call.Args = args
		}
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	if p.consumeCommand("over") {
		over, err := p.parseOverClause()
		if err != nil {
			return nil, err
		}
		call.Over = over
	}
	return call, nil
}

func (p *parser) parseOverClause() (*ast.OverClause, error) {
	if !p.isKind(token.OpenParen) {
		name, err := p.parseNameSegment()
		if err != nil {
			return nil, err
		}
		return &ast.OverClause{WindowName: name}, nil
	}
	p.advance() // (
	frame, err := p.parseWindowFrameBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	return &ast.OverClause{Frame: frame}, nil
}

// parseWindowFrameBody parses the inside of a window-frame's parentheses,
// shared between an inline `OVER (...)` and a standalone `WINDOW name AS
// (...)` definition.
func (p *parser) parseWindowFrameBody() (*ast.WindowFrameExpression, error) {
	frame := &ast.WindowFrameExpression{}
	if p.isKind(token.Identifier) {
		frame.WindowName = p.advance().Value
	}
	if p.consumeCommand("partition by") {
		items, err := p.parseValueExprList(func() (ast.ValueExpr, error) { return p.parseExpr(precOr, true, true) })
		if err != nil {
			return nil, err
		}
		frame.Partition = items
	}
	if p.consumeCommand("order by") {
		items, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		frame.Order = items
	}
	if p.isCommand("rows") || p.isCommand("range") || p.isCommand("groups") {
		spec, err := p.parseFrameSpec()
		if err != nil {
			return nil, err
		}
		frame.Frame = spec
	}
	return frame, nil
}

func (p *parser) parseFrameSpec() (*ast.FrameSpec, error) {
	unit := p.advance().Value
	spec := &ast.FrameSpec{Unit: unit}
	if p.consumeOperator("between") {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		if !p.consumeOperator("and") {
			return nil, p.unexpected(`"and"`)
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		spec.Start, spec.End = start, end
		return spec, nil
	}
	start, err := p.parseFrameBound()
	if err != nil {
		return nil, err
	}
	spec.Start = start
	return spec, nil
}

func (p *parser) parseFrameBound() (*ast.FrameBound, error) {
	switch {
	case p.consumeCommand("unbounded preceding"):
		return &ast.FrameBound{BoundKind: ast.BoundUnboundedPreceding}, nil
	case p.consumeCommand("unbounded following"):
		return &ast.FrameBound{BoundKind: ast.BoundUnboundedFollowing}, nil
	case p.consumeCommand("current row"):
		return &ast.FrameBound{BoundKind: ast.BoundCurrentRow}, nil
	}
	value, err := p.parseExpr(precComparison, false, false)
	if err != nil {
		return nil, err
	}
	switch {
	case p.consumeCommand("preceding"):
		return &ast.FrameBound{BoundKind: ast.BoundPreceding, Value: value}, nil
	case p.consumeCommand("following"):
		return &ast.FrameBound{BoundKind: ast.BoundFollowing, Value: value}, nil
	}
	return nil, p.unexpected(`"preceding" or "following"`)
}

// parseOrderByItems parses a comma-separated ORDER BY / window ORDER BY
// list; shared by select.go's top-level ORDER BY and the window-frame body.
func (p *parser) parseOrderByItems() ([]*ast.OrderByItem, error) {
	scratch := ast.GetOrderByItemSlice()
	defer ast.ReleaseOrderByItemSlice(scratch)
	for {
		value, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		item := &ast.OrderByItem{Value: value}
		switch {
		case p.consumeCommand("asc"):
		case p.consumeCommand("desc"):
			item.Desc = true
		}
		switch {
		case p.consumeCommand("nulls first"):
			t := true
			item.NullsFirst = &t
		case p.consumeCommand("nulls last"):
			f := false
			item.NullsFirst = &f
		}
		*scratch = append(*scratch, item)
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	out := make([]*ast.OrderByItem, len(*scratch))
	copy(out, *scratch)
	return out, nil
}
