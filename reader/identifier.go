package reader

import (
	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/token"
)

// ReadIdentifier recognizes any remaining regular identifier, plus the bare
// `*` wildcard (spec §4.3 reader 10, the lowest-priority catch-all).
func ReadIdentifier(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) {
		return Result{}, false, nil
	}
	if text[pos] == '*' {
		return Result{
			Lexeme: token.Lexeme{Kind: token.Identifier, Value: "*"},
			End:    pos + 1,
		}, true, nil
	}
	if !charutil.IsLetter(text[pos]) {
		return Result{}, false, nil
	}
	name, end := charutil.ReadIdentifier(text, pos)
	if name == "" {
		return Result{}, false, nil
	}
	return Result{
		Lexeme: token.Lexeme{Kind: token.Identifier, Value: name},
		End:    end,
	}, true, nil
}
