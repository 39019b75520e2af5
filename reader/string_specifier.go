package reader

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/token"
)

// specifierPrefixes are tried longest-first so "u&'" is not shadowed by a
// shorter accidental match.
var specifierPrefixes = []string{"u&'", "e'", "x'", "b'"}

// ReadStringSpecifier recognizes the e'/x'/b'/u&' string prefixes (spec
// §4.3 reader 3), emitting a StringSpecifier lexeme that holds just the
// prefix text and leaving the quoted literal itself for the literal reader
// to consume on the next tokenizer iteration (spec §9 open question,
// resolved in SPEC_FULL.md: the two lexemes stay adjacent rather than being
// merged into one).
func ReadStringSpecifier(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	rest := text[pos:]
	for _, p := range specifierPrefixes {
		if len(rest) >= len(p) && strings.EqualFold(rest[:len(p)], p) {
			prefix := strings.ToLower(p[:len(p)-1]) // drop the trailing quote
			return Result{
				Lexeme: token.Lexeme{Kind: token.StringSpecifier, Value: prefix},
				End:    pos + len(prefix),
			}, true, nil
		}
	}
	return Result{}, false, nil
}
