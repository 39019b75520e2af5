package reader

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/token"
)

// ReadFunction recognizes a regular identifier whose next non-whitespace,
// non-comment character is `(` (spec §4.3 reader 9). Only the name is
// consumed; the `(` itself is left for the symbol reader on the next
// tokenizer iteration.
func ReadFunction(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) || !charutil.IsLetter(text[pos]) {
		return Result{}, false, nil
	}
	name, end := charutil.ReadIdentifier(text, pos)
	if name == "" {
		return Result{}, false, nil
	}
	next, err := charutil.SkipWhitespaceAndComments(text, end)
	if err != nil || next >= len(text) || text[next] != '(' {
		return Result{}, false, nil
	}
	return Result{
		Lexeme: token.Lexeme{Kind: token.Function, Value: strings.ToLower(name)},
		End:    end,
	}, true, nil
}
