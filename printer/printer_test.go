package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/parser"
	"github.com/sqlcraft/sqlcraft/printer"
)

func TestPrintDefaultsProduceExactSingleLineText(t *testing.T) {
	q, err := parser.ParseSelect("select 1 + 2 * 3 as x from t")
	require.NoError(t, err)
	assert.Equal(t, "select 1 + 2 * 3 as x from t", printer.Print(q, printer.Default()))
}

func TestPrintCommaBreakBeforeProducesOneItemPerLine(t *testing.T) {
	q, err := parser.ParseSelect("select a,b,c from t")
	require.NoError(t, err)
	opts := printer.Default()
	opts.Newline = "\n"
	opts.IndentChar = " "
	opts.IndentSize = 2
	opts.CommaBreak = printer.BreakBefore
	want := "select\n  a\n  , b\n  , c\nfrom\n  t"
	assert.Equal(t, want, printer.Print(q, opts))
}

func TestPrintIsIdempotent(t *testing.T) {
	q, err := parser.ParseSelect("select a, b from t where a > 1 and b < 2 order by a desc")
	require.NoError(t, err)
	opts := printer.Default()
	first := printer.Print(q, opts)

	reparsed, err := parser.ParseSelect(first)
	require.NoError(t, err)
	second := printer.Print(reparsed, opts)

	assert.Equal(t, first, second)
}

func TestPrintUppercaseKeywordCase(t *testing.T) {
	q, err := parser.ParseSelect("select a from t")
	require.NoError(t, err)
	opts := printer.Default()
	opts.KeywordCase = printer.KeywordUpper
	assert.Equal(t, "SELECT a FROM t", printer.Print(q, opts))
}

func TestPrintQuotesReservedIdentifier(t *testing.T) {
	q, err := parser.ParseSelect(`select "select" from t`)
	require.NoError(t, err)
	assert.Equal(t, `select "select" from t`, printer.Print(q, printer.Default()))
}

func TestPrintRoundTripsJoinAndGroupBy(t *testing.T) {
	sql := "select a, count(*) from t inner join u on t.id = u.id group by a having count(*) > 1"
	q, err := parser.ParseSelect(sql)
	require.NoError(t, err)
	printed := printer.Print(q, printer.Default())
	assert.Equal(t, sql, printed)
}
