package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/parser"
	"github.com/sqlcraft/sqlcraft/printer"
)

// TestSemanticRoundTrip checks spec §8's "round-trip (semantic)" property:
// parsing printer.Print's output must yield an AST equal to the one that
// produced it, compared structurally with go-cmp rather than
// reflect.DeepEqual so a future pooled/cached field doesn't need a custom
// Equal method to keep this test meaningful.
func TestSemanticRoundTrip(t *testing.T) {
	queries := []string{
		"select 1 + 2 * 3 as x from t",
		"select a, b from t where a > 1 and b < 2 order by a desc",
		"select a, count(*) from t inner join u on t.id = u.id group by a having count(*) > 1",
		"select a from t limit 10 offset 5",
		"select * from t where a between 1 and 10",
		"with c as (select a from t) select a from c",
	}

	for _, sql := range queries {
		t.Run(sql, func(t *testing.T) {
			original, err := parser.ParseSelect(sql)
			require.NoError(t, err)

			printed := printer.Print(original, printer.Default())
			reparsed, err := parser.ParseSelect(printed)
			require.NoError(t, err)

			if diff := cmp.Diff(original, reparsed); diff != "" {
				t.Errorf("round-trip AST mismatch (-original +reparsed):\n%s", diff)
			}
		})
	}
}
