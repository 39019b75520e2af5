package reader

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/token"
)

// ReadCommand recognizes structural clause keywords via the command trie,
// greedily taking the longest multi-word match (spec §4.3 reader 6), e.g.
// "group by" or "with recursive" become one Command lexeme.
func ReadCommand(text string, pos int, prev token.Lexeme) (Result, bool, error) {
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
	n, ok := token.CommandTrie.LongestMatch(wordTexts)
	if !ok {
		return Result{}, false, nil
	}
	return Result{
		Lexeme: token.Lexeme{Kind: token.Command, Value: strings.ToLower(joinWords(wordTexts[:n]))},
		End:    words[n-1].End,
	}, true, nil
}
