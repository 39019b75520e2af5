package parser

import (
	"github.com/sqlcraft/sqlcraft/ast"
	"github.com/sqlcraft/sqlcraft/lexer"
)

// Each From-text entry point tokenizes, delegates to the matching internal
// parser, and asserts EOF so trailing garbage surfaces as an error instead
// of being silently dropped (spec §4.4, §6.1).

// ParseSelect parses a full SELECT statement, including any WITH prefix and
// UNION/INTERSECT/EXCEPT chain.
func ParseSelect(text string) (ast.SelectQuery, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	q, err := p.parseSelectBody()
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseValues parses a bare VALUES list.
func ParseValues(text string) (*ast.ValuesQuery, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	q, err := p.parseValuesQuery()
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseInsert parses an INSERT statement.
func ParseInsert(text string) (*ast.InsertQuery, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	q, err := p.parseInsert()
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseUpdate parses an UPDATE statement.
func ParseUpdate(text string) (*ast.UpdateQuery, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	q, err := p.parseUpdate()
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseDelete parses a DELETE statement.
func ParseDelete(text string) (*ast.DeleteQuery, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	q, err := p.parseDelete()
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseValue parses a single standalone value expression (spec §6.1).
func ParseValue(text string) (ast.ValueExpr, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	v, err := p.parseExpr(precOr, true, true)
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseSource parses a single FROM-clause source expression, alias included.
func ParseSource(text string) (ast.SourceExpr, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	s, err := p.parseSourceExpr()
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseCommonTable parses a single `name (cols)? AS (query)` WITH entry.
func ParseCommonTable(text string) (*ast.CommonTable, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := newParser(lexemes)
	ct, err := p.parseCommonTable()
	if err != nil {
		return nil, err
	}
	if err := p.assertEOF(); err != nil {
		return nil, err
	}
	return ct, nil
}
