package reader

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/token"
)

// ReadOperator recognizes either a run of operator symbol characters or a
// logical-operator keyword via the operator trie (spec §4.3 reader 7).
func ReadOperator(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) {
		return Result{}, false, nil
	}
	if charutil.IsOperatorChar(text[pos]) {
		start := pos
		for pos < len(text) && charutil.IsOperatorChar(text[pos]) {
			pos++
		}
		if text[start:pos] == "*" && !prevEndsValue(prev) {
			// A lone '*' that does not follow a value is the wildcard,
			// left for ReadIdentifier.
			return Result{}, false, nil
		}
		return Result{
			Lexeme: token.Lexeme{Kind: token.Operator, Value: strings.ToLower(text[start:pos])},
			End:    pos,
		}, true, nil
	}
	if charutil.IsLetter(text[pos]) {
		words := charutil.PeekWords(text, pos, 4)
		if len(words) == 0 {
			return Result{}, false, nil
		}
		wordTexts := make([]string, len(words))
		for i, w := range words {
			wordTexts[i] = w.Text
		}
		n, ok := token.OperatorTrie.LongestMatch(wordTexts)
		if !ok {
			return Result{}, false, nil
		}
		return Result{
			Lexeme: token.Lexeme{Kind: token.Operator, Value: strings.ToLower(joinWords(wordTexts[:n]))},
			End:    words[n-1].End,
		}, true, nil
	}
	return Result{}, false, nil
}
