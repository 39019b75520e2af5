package parser

import (
	"github.com/sqlcraft/sqlcraft/ast"
	"github.com/sqlcraft/sqlcraft/token"
)

// parseValuesQuery parses a bare `VALUES (row), (row), ...` list (spec
// §3.2, §4.4.4).
func (p *parser) parseValuesQuery() (*ast.ValuesQuery, error) {
	if _, err := p.expectCommand("values"); err != nil {
		return nil, err
	}
	q := &ast.ValuesQuery{}
	for {
		row, err := p.parseValuesRow()
		if err != nil {
			return nil, err
		}
		q.Rows = append(q.Rows, row)
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	return q, nil
}

func (p *parser) parseValuesRow() (*ast.TupleExpr, error) {
	if _, err := p.expectSymbol(token.OpenParen, "("); err != nil {
		return nil, err
	}
	items, err := p.parseValueExprList(func() (ast.ValueExpr, error) { return p.parseExpr(precOr, true, true) })
	if err != nil {
		return nil, err
	}
	t := &ast.TupleExpr{Items: items}
	if _, err := p.expectSymbol(token.CloseParen, ")"); err != nil {
		return nil, err
	}
	return t, nil
}

// parseReturning parses the optional RETURNING clause shared by INSERT,
// UPDATE, and DELETE (spec §4.4.4).
func (p *parser) parseReturning() ([]*ast.SelectItem, error) {
	if !p.consumeCommand("returning") {
		return nil, nil
	}
	return p.parseSelectItems()
}

// parseInsert parses `WITH? INSERT INTO ns.table (cols)? source RETURNING?`
// (spec §3.2, §4.4.4). A WITH clause written before INSERT is attached to
// the source when it is a simple SELECT without a WITH of its own; any other
// source is an error.
func (p *parser) parseInsert() (*ast.InsertQuery, error) {
	var with *ast.WithClause
	if p.isCommand("with") || p.isCommand("with recursive") {
		w, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		with = w
	}
	if _, err := p.expectCommand("insert"); err != nil {
		return nil, err
	}
	if _, err := p.expectCommand("into"); err != nil {
		return nil, err
	}
	namespaces, table, err := p.parseNameChain()
	if err != nil {
		return nil, err
	}
	q := &ast.InsertQuery{Namespaces: namespaces, Table: table}
	if p.isKind(token.OpenParen) {
		cols, err := p.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		q.Columns = cols
	}
	source, err := p.parseSelectBody()
	if err != nil {
		return nil, err
	}
	if with != nil {
		simple, ok := source.(*ast.SimpleSelectQuery)
		if !ok || simple.With != nil {
			return nil, p.missing("a WITH clause before INSERT must attach to a SELECT source")
		}
		simple.With = with
	}
	q.Source = source
	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	q.Returning = returning
	return q, nil
}

// parseUpdate parses `UPDATE target SET a = v, ... FROM? WHERE? RETURNING?`
// (spec §3.2, §4.4.4).
func (p *parser) parseUpdate() (*ast.UpdateQuery, error) {
	if _, err := p.expectCommand("update"); err != nil {
		return nil, err
	}
	target, err := p.parseSourceExpr()
	if err != nil {
		return nil, err
	}
	q := &ast.UpdateQuery{Target: target}
	if _, err := p.expectCommand("set"); err != nil {
		return nil, err
	}
	set, err := p.parseSetList()
	if err != nil {
		return nil, err
	}
	q.Set = set
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
	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	q.Returning = returning
	return q, nil
}

func (p *parser) parseSetList() ([]*ast.SetClause, error) {
	var out []*ast.SetClause
	for {
		col, err := p.parseNameSegment()
		if err != nil {
			return nil, err
		}
		if !p.consumeOperator("=") {
			return nil, p.unexpected(`"="`)
		}
		value, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.SetClause{Column: col, Value: value})
		if p.consumeSymbol(token.Comma) {
			continue
		}
		break
	}
	return out, nil
}

// parseDelete parses `DELETE FROM target USING? WHERE? RETURNING?` (spec
// §6.1's parse_delete entry point; DeleteQuery's shape follows PostgreSQL's
// DELETE grammar, see ast.DeleteQuery).
func (p *parser) parseDelete() (*ast.DeleteQuery, error) {
	if _, err := p.expectCommand("delete"); err != nil {
		return nil, err
	}
	if _, err := p.expectCommand("from"); err != nil {
		return nil, err
	}
	target, err := p.parseSourceExpr()
	if err != nil {
		return nil, err
	}
	q := &ast.DeleteQuery{Target: target}
	if p.consumeCommand("using") {
		using, err := p.parseSourceExpr()
		if err != nil {
			return nil, err
		}
		q.Using = using
	}
	if p.consumeCommand("where") {
		where, err := p.parseExpr(precOr, true, true)
		if err != nil {
			return nil, err
		}
		q.Where = where
	}
	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	q.Returning = returning
	return q, nil
}
