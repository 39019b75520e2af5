// Package parser implements one recursive-descent parser per clause, a
// value-expression precedence climber, and the INSERT/UPDATE/DELETE entry
// points (spec §4.4). Grounded on the teacher's (freeeve/machparse) parser
// package split (parser.go/select.go/expression.go), generalized to operate
// over the project's own lexeme/AST types and reader-driven tokenizer.
package parser

import (
	"fmt"
	"strings"

	"github.com/sqlcraft/sqlcraft/ast"
	"github.com/sqlcraft/sqlcraft/sqlerr"
	"github.com/sqlcraft/sqlcraft/token"
)

// parser is the shared cursor every clause parser advances. Each clause
// parser follows the "(lexemes, index) -> (node, newIndex)" composable
// contract from spec §9 by taking and returning a *parser value rather than
// mutating package-level state, so tests can target any clause parser in
// isolation by constructing one directly.
type parser struct {
	lexemes []token.Lexeme
	pos     int
}

func newParser(lexemes []token.Lexeme) *parser {
	return &parser{lexemes: lexemes}
}

func (p *parser) cur() token.Lexeme {
	if p.pos >= len(p.lexemes) {
		return token.EOF
	}
	return p.lexemes[p.pos]
}

func (p *parser) peek(offset int) token.Lexeme {
	i := p.pos + offset
	if i < 0 || i >= len(p.lexemes) {
		return token.EOF
	}
	return p.lexemes[i]
}

func (p *parser) advance() token.Lexeme {
	l := p.cur()
	if p.pos < len(p.lexemes) {
		p.pos++
	}
	return l
}

func (p *parser) atEOF() bool { return p.pos >= len(p.lexemes) }

func (p *parser) isCommand(value string) bool { return p.cur().IsCommand(value) }
func (p *parser) isOperator(value string) bool { return p.cur().IsOperator(value) }
func (p *parser) isKind(k token.Kind) bool     { return p.cur().Is(k) }

func (p *parser) consumeCommand(value string) bool {
	if p.isCommand(value) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) consumeOperator(value string) bool {
	if p.isOperator(value) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) consumeSymbol(k token.Kind) bool {
	if p.isKind(k) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectCommand(value string) (token.Lexeme, error) {
	if !p.isCommand(value) {
		return token.Lexeme{}, p.unexpected(fmt.Sprintf("%q", value))
	}
	return p.advance(), nil
}

func (p *parser) expectSymbol(k token.Kind, desc string) (token.Lexeme, error) {
	if !p.isKind(k) {
		if k == token.CloseParen || k == token.CloseBracket {
			return token.Lexeme{}, p.unbalanced(desc)
		}
		return token.Lexeme{}, p.unexpected(desc)
	}
	return p.advance(), nil
}

func (p *parser) unexpected(expected string) error {
	cur := p.cur()
	return sqlerr.New(sqlerr.UnexpectedToken, cur.Pos, "unexpected %s; expected %s", describeLexeme(cur), expected).
		WithContext(sqlerr.LexemeContext(p.lexemes, p.pos))
}

func (p *parser) unbalanced(desc string) error {
	cur := p.cur()
	return sqlerr.New(sqlerr.UnbalancedDelimiter, cur.Pos, "missing %s", desc).
		WithContext(sqlerr.LexemeContext(p.lexemes, p.pos))
}

func (p *parser) missing(desc string) error {
	cur := p.cur()
	return sqlerr.New(sqlerr.MissingClauseElement, cur.Pos, "%s", desc).
		WithContext(sqlerr.LexemeContext(p.lexemes, p.pos))
}

func describeLexeme(l token.Lexeme) string {
	if l.IsEOF() {
		return "end of input"
	}
	return fmt.Sprintf("%q", l.Value)
}

// assertEOF is called by the from-text entry points after parsing to make
// sure no trailing garbage remains (spec §4.4: "assert EOF or fail with
// UnexpectedToken").
func (p *parser) assertEOF() error {
	if !p.atEOF() {
		return p.unexpected("end of input")
	}
	return nil
}

// parseNameChain reads one or more dot-separated identifiers; a Function or
// `*` lexeme is consumed as the last segment (spec §4.4.3: "terminating on a
// Function or * which must be the last segment"). It returns the leading
// namespace segments and the final name.
func (p *parser) parseNameChain() ([]string, string, error) {
	first, err := p.parseNameSegment()
	if err != nil {
		return nil, "", err
	}
	names := []string{first}
	for p.isKind(token.Dot) {
		p.advance()
		seg, err := p.parseNameSegment()
		if err != nil {
			return nil, "", err
		}
		names = append(names, seg)
	}
	return names[:len(names)-1], names[len(names)-1], nil
}

func (p *parser) parseNameSegment() (string, error) {
	l := p.cur()
	if l.Kind.Is(token.Identifier | token.Command | token.Type | token.Function) {
		p.advance()
		return l.Value, nil
	}
	if l.Value == "*" {
		p.advance()
		return "*", nil
	}
	return "", p.unexpected("an identifier")
}

// parseIdentifierList reads a parenthesized comma-separated list of plain
// identifiers, e.g. an INSERT column list or a CTE's column alias list.
func (p *parser) parseIdentifierList() ([]string, error) {
	if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
		return nil, err
	}
	var out []string
	for {
		name, err := p.parseNameSegment()
		if err != nil {
			return nil, err
		}
		out = append(out, name)
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	return out, nil
}

// parseValueExprList reads a comma-separated run of values using parseOne
// for each element, via a pooled scratch slice (ast.GetValueExprSlice) that
// never escapes this call — the returned slice is always a freshly sized
// copy, so the pool entry is safe to reuse immediately.
func (p *parser) parseValueExprList(parseOne func() (ast.ValueExpr, error)) ([]ast.ValueExpr, error) {
	scratch := ast.GetValueExprSlice()
	defer ast.ReleaseValueExprSlice(scratch)
	for {
		v, err := parseOne()
		if err != nil {
			return nil, err
		}
		*scratch = append(*scratch, v)
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	out := make([]ast.ValueExpr, len(*scratch))
	copy(out, *scratch)
	return out, nil
}

// joinedName renders a namespace chain plus final name with dots, used only
// in error messages.
func joinedName(namespaces []string, name string) string {
	if len(namespaces) == 0 {
		return name
	}
	return strings.Join(namespaces, ".") + "." + name
}
