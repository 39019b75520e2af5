// Package ast defines the abstract syntax tree for SQL statements: clause
// nodes (the structural parts of SELECT/INSERT/UPDATE/DELETE) and value
// components (expressions usable wherever a value is expected). Every node
// carries a stable NodeKind tag so the visitor package can dispatch without
// a Go type switch (spec §4.6, §9).
package ast

// NodeKind is the closed set of concrete AST node types. It exists so
// visitor.Walk/Rewrite can dispatch through a map[NodeKind]func(...) table
// instead of a type switch, per the "avoid runtime reflection" guidance.
type NodeKind int

const (
	KindSimpleSelectQuery NodeKind = iota + 1
	KindBinarySelectQuery
	KindValuesQuery
	KindInsertQuery
	KindUpdateQuery
	KindDeleteQuery

	KindSelectItem
	KindWithClause
	KindCommonTable
	KindJoinClause
	KindOrderByItem
	KindWindowDef
	KindWindowFrameExpression
	KindFrameBound
	KindLimitClause
	KindFetchClause
	KindForClause

	KindTableSource
	KindFunctionSource
	KindSubquerySource
	KindAliasedSource

	KindColumnRef
	KindLiteral
	KindUnaryExpr
	KindBinaryExpr
	KindParenExpr
	KindFunctionCall
	KindCastExpr
	KindBetweenExpr
	KindCaseExpr
	KindCaseWhen
	KindTupleExpr
	KindValueList
	KindArrayConstructor
	KindSubqueryExpr
	KindParameter
	KindTypeValue
	KindStringSpecifierValue
	KindGroupingSetsExpr
)

// String returns the kind's name without the "Kind" prefix, written by hand
// from nodeKindNames.
func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var nodeKindNames = map[NodeKind]string{
	KindSimpleSelectQuery:     "SimpleSelectQuery",
	KindBinarySelectQuery:     "BinarySelectQuery",
	KindValuesQuery:           "ValuesQuery",
	KindInsertQuery:           "InsertQuery",
	KindUpdateQuery:           "UpdateQuery",
	KindDeleteQuery:           "DeleteQuery",
	KindSelectItem:            "SelectItem",
	KindWithClause:            "WithClause",
	KindCommonTable:           "CommonTable",
	KindJoinClause:            "JoinClause",
	KindOrderByItem:           "OrderByItem",
	KindWindowDef:             "WindowDef",
	KindWindowFrameExpression: "WindowFrameExpression",
	KindFrameBound:            "FrameBound",
	KindLimitClause:           "LimitClause",
	KindFetchClause:           "FetchClause",
	KindForClause:             "ForClause",
	KindTableSource:           "TableSource",
	KindFunctionSource:        "FunctionSource",
	KindSubquerySource:        "SubquerySource",
	KindAliasedSource:         "AliasedSource",
	KindColumnRef:             "ColumnRef",
	KindLiteral:               "Literal",
	KindUnaryExpr:             "UnaryExpr",
	KindBinaryExpr:            "BinaryExpr",
	KindParenExpr:             "ParenExpr",
	KindFunctionCall:          "FunctionCall",
	KindCastExpr:              "CastExpr",
	KindBetweenExpr:           "BetweenExpr",
	KindCaseExpr:              "CaseExpr",
	KindCaseWhen:              "CaseWhen",
	KindTupleExpr:             "TupleExpr",
	KindValueList:             "ValueList",
	KindArrayConstructor:      "ArrayConstructor",
	KindSubqueryExpr:          "SubqueryExpr",
	KindParameter:             "Parameter",
	KindTypeValue:             "TypeValue",
	KindStringSpecifierValue:  "StringSpecifierValue",
	KindGroupingSetsExpr:      "GroupingSetsExpr",
}

// Node is the base interface every AST node implements.
type Node interface {
	Kind() NodeKind
}

// Statement is a top-level SQL statement.
type Statement interface {
	Node
	statementNode()
}

// SelectQuery is any query producing rows: a simple SELECT, a set operation
// between two SelectQueries, or a VALUES list (spec §3.2).
type SelectQuery interface {
	Statement
	selectQueryNode()
}

// ValueExpr is any value component: column references, literals, operator
// expressions, function calls, CAST, BETWEEN, CASE, tuples, subqueries,
// parameters, type values, and string specifiers (spec §3.4).
type ValueExpr interface {
	Node
	valueExprNode()
}

// SourceExpr is a FROM-clause source: a table name, a subquery, a function
// call, or any of those wrapped with an alias (spec §4.4.3).
type SourceExpr interface {
	Node
	sourceExprNode()
}
