package token

// The keyword tries below are process-wide immutable constants, built once
// at package init (spec §5, §9) — never mutated after construction. The
// readers, the join parser and the printer's keyword-quoting check each look
// up the tries they need; WindowBoundaryTrie is not used by any of them.

// CommandTrie recognizes structural clause keywords (spec §4.3 reader 6).
var CommandTrie = NewTrie(
	"select", "from", "where", "group by", "having", "window",
	"order by", "limit", "offset", "fetch", "with", "with recursive",
	"insert", "into", "values", "update", "set", "delete", "returning",
	"distinct", "distinct on",
	"union", "union all", "intersect", "intersect all", "except", "except all",
	"as", "lateral", "materialized", "not materialized",
	"partition by", "rows", "range", "groups",
	"asc", "desc", "nulls first", "nulls last", "first", "next",
	"rows only", "percent", "percent with ties",
	"for update", "for share", "for key share", "for no key update",
	"case", "when", "then", "else", "end", "cast", "over", "filter",
	"on", "using", "all", "recursive", "only", "nulls", "ties", "current",
	"current row", "preceding", "following", "unbounded preceding", "unbounded following",
	"grouping sets", "rollup", "cube",
)

// OperatorTrie recognizes the logical/comparison operator keywords (spec
// §4.3 reader 7, and the precedence table in spec §4.4.2).
var OperatorTrie = NewTrie(
	"not", "is", "is not", "and", "or", "xor",
	"like", "not like", "ilike", "not ilike",
	"in", "not in", "exists", "not exists",
	"between", "not between",
	"is distinct from", "is not distinct from",
)

// LiteralTrie recognizes keyword literals (spec §4.3 reader 4). "unbounded"
// is deliberately absent so the command reader (tried right after this one)
// gets first refusal and matches the whole two-word "unbounded preceding" /
// "unbounded following" window-frame bound instead of just "unbounded".
var LiteralTrie = NewTrie(
	"null", "true", "false",
	"current_date", "current_timestamp", "current_time",
)

// JoinTrie recognizes join-type phrases (spec §4.4.3).
var JoinTrie = NewTrie(
	"join", "inner join",
	"left join", "left outer join",
	"right join", "right outer join",
	"full join", "full outer join",
	"cross join",
	"natural join", "natural inner join",
	"natural left join", "natural left outer join",
	"natural right join", "natural right outer join",
	"natural full join", "natural full outer join",
)

// GroupingSetsTrie recognizes the GROUPING SETS / ROLLUP / CUBE keywords
// that may appear inside a GROUP BY list.
var GroupingSetsTrie = NewTrie("grouping sets", "rollup", "cube")

// WindowBoundaryTrie recognizes window-frame boundary keywords (spec §4.4.4).
var WindowBoundaryTrie = NewTrie(
	"unbounded preceding", "unbounded following", "current row",
	"preceding", "following", "rows", "range", "groups", "between", "and",
)

// TypeTrie recognizes built-in type names (spec §4.3 reader 8). Registered
// ahead of the function reader so "numeric(10,2)" lexes as a Type, never a
// Function call.
var TypeTrie = NewTrie(
	"int", "integer", "smallint", "bigint",
	"decimal", "numeric", "real", "double precision", "float",
	"varchar", "character varying", "char", "character",
	"text", "boolean", "bool",
	"date", "time", "timestamp",
	"timestamp with time zone", "timestamp without time zone",
	"time with time zone", "time without time zone",
	"interval", "json", "jsonb", "uuid", "bytea", "money",
	"point", "inet", "cidr", "macaddr", "xml",
	"bit", "bit varying", "serial", "bigserial", "smallserial",
	"name", "oid", "array",
)
