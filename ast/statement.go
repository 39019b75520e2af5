package ast

// SimpleSelectQuery is a single (non set-operation) SELECT statement (spec
// §3.2). If GroupBy is empty, Having must be nil: the parser rejects HAVING
// without GROUP BY, while AppendHaving does not check it. No check relates
// OrderBy items to Windows.
type SimpleSelectQuery struct {
	With       *WithClause
	Distinct   bool
	DistinctOn []ValueExpr // non-nil only for DISTINCT ON (...)
	Items      []*SelectItem
	From       SourceExpr
	Joins      []*JoinClause
	Where      ValueExpr
	GroupBy    []ValueExpr
	Having     ValueExpr
	Windows    []*WindowDef
	OrderBy    []*OrderByItem
	Limit      *LimitClause
	Fetch      *FetchClause
	For        *ForClause
}

func (*SimpleSelectQuery) Kind() NodeKind   { return KindSimpleSelectQuery }
func (*SimpleSelectQuery) statementNode()   {}
func (*SimpleSelectQuery) selectQueryNode() {}

// AppendWhere extends Where with `AND cond`, wrapping the existing
// condition if one is present. This is one of the narrow mutation seams
// spec §3.5 calls out.
func (q *SimpleSelectQuery) AppendWhere(cond ValueExpr) {
	if q.Where == nil {
		q.Where = cond
		return
	}
	q.Where = &BinaryExpr{Operator: "and", Left: q.Where, Right: cond}
}

// AppendHaving extends Having with `AND cond`, same policy as AppendWhere.
func (q *SimpleSelectQuery) AppendHaving(cond ValueExpr) {
	if q.Having == nil {
		q.Having = cond
		return
	}
	q.Having = &BinaryExpr{Operator: "and", Left: q.Having, Right: cond}
}

// AppendJoin adds j to the FROM clause's join list.
func (q *SimpleSelectQuery) AppendJoin(j *JoinClause) {
	q.Joins = append(q.Joins, j)
}

// BinarySelectQuery is a set operation between two queries (spec §3.2).
// Operator is one of "union", "union all", "intersect", "intersect all",
// "except", "except all". Chained operators are left-associative and are
// nested by construction: left is itself a BinarySelectQuery for the third
// and later operand.
type BinarySelectQuery struct {
	Left     SelectQuery
	Operator string
	Right    SelectQuery
}

func (*BinarySelectQuery) Kind() NodeKind   { return KindBinarySelectQuery }
func (*BinarySelectQuery) statementNode()   {}
func (*BinarySelectQuery) selectQueryNode() {}

// ValuesQuery is an ordered list of equal-arity tuple rows (spec §3.2).
// Columns holds optional column aliases, used only when a ValuesQuery is
// converted into a simple select (e.g. `SELECT * FROM (VALUES ...) AS t(a,
// b)` keeps them on the AliasedSource instead).
type ValuesQuery struct {
	Rows    []*TupleExpr
	Columns []string
}

func (*ValuesQuery) Kind() NodeKind   { return KindValuesQuery }
func (*ValuesQuery) statementNode()   {}
func (*ValuesQuery) selectQueryNode() {}

// InsertQuery is `INSERT INTO ns.table (cols) source` (spec §3.2, §4.4.4).
// A WITH clause written before INSERT is attached directly to Source when
// Source is a *SimpleSelectQuery; attaching one to a *ValuesQuery source
// fails at parse time (spec §4.4.4: "WITH ... attaches to the source if
// that source is a simple select, else fails").
type InsertQuery struct {
	Namespaces []string
	Table      string
	Columns    []string
	Source     SelectQuery
	Returning  []*SelectItem
}

func (*InsertQuery) Kind() NodeKind { return KindInsertQuery }
func (*InsertQuery) statementNode() {}

// SetClause is one `column = value` assignment of an UPDATE statement.
type SetClause struct {
	Column string
	Value  ValueExpr
}

// UpdateQuery is `UPDATE target SET ... FROM? WHERE? RETURNING?` (spec
// §3.2, §4.4.4).
type UpdateQuery struct {
	Target    SourceExpr
	Set       []*SetClause
	From      SourceExpr
	Joins     []*JoinClause
	Where     ValueExpr
	Returning []*SelectItem
}

func (*UpdateQuery) Kind() NodeKind { return KindUpdateQuery }
func (*UpdateQuery) statementNode() {}

// AppendWhere extends Where with `AND cond`, mirroring
// SimpleSelectQuery.AppendWhere.
func (q *UpdateQuery) AppendWhere(cond ValueExpr) {
	if q.Where == nil {
		q.Where = cond
		return
	}
	q.Where = &BinaryExpr{Operator: "and", Left: q.Where, Right: cond}
}

// DeleteQuery is `DELETE FROM target USING? WHERE? RETURNING?`. It is not
// enumerated in the statement list of spec §3.2 (whose bullets stop at
// UpdateQuery), but `parse_delete` is a named entry point in spec §6.1, so
// a DeleteQuery type is required; its shape follows PostgreSQL's DELETE
// grammar the way UpdateQuery follows UPDATE's.
type DeleteQuery struct {
	Target    SourceExpr
	Using     SourceExpr
	Where     ValueExpr
	Returning []*SelectItem
}

func (*DeleteQuery) Kind() NodeKind { return KindDeleteQuery }
func (*DeleteQuery) statementNode() {}

// AppendWhere extends Where with `AND cond`, mirroring
// SimpleSelectQuery.AppendWhere.
func (q *DeleteQuery) AppendWhere(cond ValueExpr) {
	if q.Where == nil {
		q.Where = cond
		return
	}
	q.Where = &BinaryExpr{Operator: "and", Left: q.Where, Right: cond}
}
