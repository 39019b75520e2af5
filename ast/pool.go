package ast

import "sync"

// Node pools for reducing allocations during parsing, adapted from the
// teacher's slice/struct pool pairs (one pool per hot node type, Get/Release
// functions that reset state on return). Parsers that build large trees
// (SELECT lists, JOIN chains, function argument lists) may use these
// instead of plain make() to cut GC pressure on repeated small parses.

var (
	selectItemSlicePool = sync.Pool{
		New: func() any {
			s := make([]*SelectItem, 0, 8)
			return &s
		},
	}
	valueExprSlicePool = sync.Pool{
		New: func() any {
			s := make([]ValueExpr, 0, 4)
			return &s
		},
	}
	joinClauseSlicePool = sync.Pool{
		New: func() any {
			s := make([]*JoinClause, 0, 4)
			return &s
		},
	}
	orderByItemSlicePool = sync.Pool{
		New: func() any {
			s := make([]*OrderByItem, 0, 4)
			return &s
		},
	}
)

// GetSelectItemSlice returns a []*SelectItem from the pool.
func GetSelectItemSlice() *[]*SelectItem { return selectItemSlicePool.Get().(*[]*SelectItem) }

// ReleaseSelectItemSlice returns s to the pool.
func ReleaseSelectItemSlice(s *[]*SelectItem) {
	*s = (*s)[:0]
	selectItemSlicePool.Put(s)
}

// GetValueExprSlice returns a []ValueExpr from the pool.
func GetValueExprSlice() *[]ValueExpr { return valueExprSlicePool.Get().(*[]ValueExpr) }

// ReleaseValueExprSlice returns s to the pool.
func ReleaseValueExprSlice(s *[]ValueExpr) {
	*s = (*s)[:0]
	valueExprSlicePool.Put(s)
}

// GetJoinClauseSlice returns a []*JoinClause from the pool.
func GetJoinClauseSlice() *[]*JoinClause { return joinClauseSlicePool.Get().(*[]*JoinClause) }

// ReleaseJoinClauseSlice returns s to the pool.
func ReleaseJoinClauseSlice(s *[]*JoinClause) {
	*s = (*s)[:0]
	joinClauseSlicePool.Put(s)
}

// GetOrderByItemSlice returns a []*OrderByItem from the pool.
func GetOrderByItemSlice() *[]*OrderByItem { return orderByItemSlicePool.Get().(*[]*OrderByItem) }

// ReleaseOrderByItemSlice returns s to the pool.
func ReleaseOrderByItemSlice(s *[]*OrderByItem) {
	*s = (*s)[:0]
	orderByItemSlicePool.Put(s)
}

var (
	binaryExprPool = sync.Pool{New: func() any { return &BinaryExpr{} }}
	literalPool    = sync.Pool{New: func() any { return &Literal{} }}
	columnRefPool  = sync.Pool{New: func() any { return &ColumnRef{} }}
)

// GetBinaryExpr returns a *BinaryExpr from the pool.
func GetBinaryExpr() *BinaryExpr { return binaryExprPool.Get().(*BinaryExpr) }

// ReleaseBinaryExpr resets b and returns it to the pool.
func ReleaseBinaryExpr(b *BinaryExpr) {
	*b = BinaryExpr{}
	binaryExprPool.Put(b)
}

// GetLiteral returns a *Literal from the pool.
func GetLiteral() *Literal { return literalPool.Get().(*Literal) }

// ReleaseLiteral resets l and returns it to the pool.
func ReleaseLiteral(l *Literal) {
	*l = Literal{}
	literalPool.Put(l)
}

// GetColumnRef returns a *ColumnRef from the pool.
func GetColumnRef() *ColumnRef { return columnRefPool.Get().(*ColumnRef) }

// ReleaseColumnRef resets c and returns it to the pool.
func ReleaseColumnRef(c *ColumnRef) {
	*c = ColumnRef{}
	columnRefPool.Put(c)
}
