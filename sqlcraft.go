// Package sqlcraft is the module's facade: the one import path most
// callers need for parsing, printing, and rewriting SQL text (spec §6.1).
// It wires together parser, printer, visitor, and paramcompile without
// exposing their internals, the way the teacher's root machparse package
// wires parser/format/visitor (freeeve-machparse/sqlparser.go).
package sqlcraft

import (
	"github.com/sqlcraft/sqlcraft/ast"
	"github.com/sqlcraft/sqlcraft/paramcompile"
	"github.com/sqlcraft/sqlcraft/parser"
	"github.com/sqlcraft/sqlcraft/printer"
	"github.com/sqlcraft/sqlcraft/visitor"
)

// Parse parses a single SELECT/VALUES/set-operation query (spec §6.1's
// `parse(text) → ast | error`). Use the Parse* functions below for the
// other statement forms.
func Parse(sql string) (ast.SelectQuery, error) {
	return parser.ParseSelect(sql)
}

// ParseValues parses a standalone VALUES statement.
func ParseValues(sql string) (*ast.ValuesQuery, error) {
	return parser.ParseValues(sql)
}

// ParseInsert parses an INSERT statement.
func ParseInsert(sql string) (*ast.InsertQuery, error) {
	return parser.ParseInsert(sql)
}

// ParseUpdate parses an UPDATE statement.
func ParseUpdate(sql string) (*ast.UpdateQuery, error) {
	return parser.ParseUpdate(sql)
}

// ParseDelete parses a DELETE statement.
func ParseDelete(sql string) (*ast.DeleteQuery, error) {
	return parser.ParseDelete(sql)
}

// ParseValue parses a standalone value expression, the grammar production
// usable anywhere a column default, CHECK constraint, or filter value is
// written outside a full statement.
func ParseValue(sql string) (ast.ValueExpr, error) {
	return parser.ParseValue(sql)
}

// ParseSource parses a standalone FROM-clause source expression.
func ParseSource(sql string) (ast.SourceExpr, error) {
	return parser.ParseSource(sql)
}

// ParseCommonTable parses a single `name [(cols)] AS [MATERIALIZED] (query)`
// common table expression.
func ParseCommonTable(sql string) (*ast.CommonTable, error) {
	return parser.ParseCommonTable(sql)
}

// Print renders node back to SQL text under opts (spec §6.2).
func Print(node ast.Node, opts printer.Options) string {
	return printer.Print(node, opts)
}

// String renders node using printer.Default().
func String(node ast.Node) string {
	return printer.String(node)
}

// DefaultOptions returns the package's default house style.
func DefaultOptions() printer.Options {
	return printer.Default()
}

// Walk traverses node and its descendants in pre-order, calling fn once
// per node. Returning false from fn skips that node's children.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	visitor.Walk(node, fn)
}

// Rewrite traverses node in post-order, replacing each node with whatever
// fn returns for it.
func Rewrite(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	return visitor.Rewrite(node, fn)
}

// ParamStyle selects the driver placeholder spelling CompileNamedParams
// rewrites `:name` references into.
type ParamStyle = paramcompile.Style

const (
	ParamStylePGIndexed = paramcompile.StylePGIndexed
	ParamStyleQuestion  = paramcompile.StyleQuestion
)

// CompileNamedParams rewrites every `:name` reference in sql into style's
// placeholder spelling (spec §6.3), returning the rewritten SQL, the bound
// values in occurrence order, and the referenced names in occurrence order.
func CompileNamedParams(sql string, values map[string]any, style ParamStyle) (string, []any, []string, error) {
	return paramcompile.CompileNamed(sql, values, style)
}

// Statement is the interface every top-level parsed statement implements.
type Statement = ast.Statement

// Node is the base interface every AST node implements.
type Node = ast.Node

// Expr is any value expression (column reference, literal, operator
// expression, function call, ...).
type Expr = ast.ValueExpr

// Common type aliases for callers that need to type-switch on parsed
// results without importing the ast package directly.
type (
	SimpleSelectQuery = ast.SimpleSelectQuery
	BinarySelectQuery = ast.BinarySelectQuery
	ValuesQuery       = ast.ValuesQuery
	InsertQuery       = ast.InsertQuery
	UpdateQuery       = ast.UpdateQuery
	DeleteQuery       = ast.DeleteQuery
	SelectItem        = ast.SelectItem
	WithClause        = ast.WithClause
	CommonTable       = ast.CommonTable
	JoinClause        = ast.JoinClause
	ColumnRef         = ast.ColumnRef
	Literal           = ast.Literal
	UnaryExpr         = ast.UnaryExpr
	BinaryExpr        = ast.BinaryExpr
	ParenExpr         = ast.ParenExpr
	FunctionCall      = ast.FunctionCall
	CastExpr          = ast.CastExpr
	BetweenExpr       = ast.BetweenExpr
	CaseExpr          = ast.CaseExpr
	TupleExpr         = ast.TupleExpr
	SubqueryExpr      = ast.SubqueryExpr
	Parameter         = ast.Parameter
	TableSource       = ast.TableSource
	SubquerySource    = ast.SubquerySource
	AliasedSource     = ast.AliasedSource
)
