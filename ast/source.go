package ast

// TableSource is a (possibly namespaced) table name in FROM/JOIN position
// (spec §4.4.3).
type TableSource struct {
	Namespaces []string
	Name       string
}

func (*TableSource) Kind() NodeKind   { return KindTableSource }
func (*TableSource) sourceExprNode() {}

// FunctionSource is a function call used as a FROM-clause source (spec
// §4.4.3: "a Function lexeme followed by (args) -> function source").
type FunctionSource struct {
	Call *FunctionCall
}

func (*FunctionSource) Kind() NodeKind   { return KindFunctionSource }
func (*FunctionSource) sourceExprNode() {}

// SubquerySource is a parenthesized subquery used as a FROM-clause source.
type SubquerySource struct {
	Query SelectQuery
}

func (*SubquerySource) Kind() NodeKind   { return KindSubquerySource }
func (*SubquerySource) sourceExprNode() {}

// AliasedSource wraps any SourceExpr with an optional alias, column alias
// list, and LATERAL flag (spec §4.4.3: "a source expression is a source
// optionally followed by AS? alias (col, col, ...)?").
type AliasedSource struct {
	Source  SourceExpr
	Alias   string
	Columns []string
	Lateral bool
}

func (*AliasedSource) Kind() NodeKind   { return KindAliasedSource }
func (*AliasedSource) sourceExprNode() {}
