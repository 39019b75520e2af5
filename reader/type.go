package reader

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/token"
)

// ReadType recognizes built-in type names via the type trie (spec §4.3
// reader 8). Registered ahead of the function reader so "numeric(10,2)"
// lexes as a Type rather than a function call.
func ReadType(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) || !charutil.IsLetter(text[pos]) {
		return Result{}, false, nil
	}
	words := charutil.PeekWords(text, pos, 4)
	if len(words) == 0 {
		return Result{}, false, nil
	}
	wordTexts := make([]string, len(words))
	for i, w := range words {
		wordTexts[i] = w.Text
	}
	n, ok := token.TypeTrie.LongestMatch(wordTexts)
	if !ok {
		return Result{}, false, nil
	}
	return Result{
		Lexeme: token.Lexeme{Kind: token.Type, Value: strings.ToLower(joinWords(wordTexts[:n]))},
		End:    words[n-1].End,
	}, true, nil
}
