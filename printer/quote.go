package printer

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/token"
)

// quoteIdent double-quotes id when it needs it: empty, starting with
// something other than a letter/underscore, containing a character outside
// [A-Za-z0-9_$], or colliding with a reserved keyword. Grounded on the
// teacher's needsQuoting/writeIdent pair, adapted to this project's
// trie-based keyword tables instead of a single token.IsKeyword lookup.
func quoteIdent(id string) string {
	if needsQuoting(id, true) {
		return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
	}
	return id
}

// quoteFuncName is quoteIdent without the keyword check, since many builtin
// function names (ANY, ALL, COUNT, ...) are also reserved words (mirrors the
// teacher's writeFuncName/needsQuotingNonKeyword pair).
func quoteFuncName(name string) string {
	if needsQuoting(name, false) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

func needsQuoting(id string, checkKeyword bool) bool {
	if len(id) == 0 {
		return true
	}
	ch := id[0]
	if !isIdentStart(ch) {
		return true
	}
	for i := 1; i < len(id); i++ {
		if !isIdentCont(id[i]) {
			return true
		}
	}
	if checkKeyword && isKeywordWord(id) {
		return true
	}
	return false
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9') || ch == '$'
}

// isKeywordWord reports whether id, taken alone, is a complete reserved
// keyword in any of the project's trie tables.
func isKeywordWord(id string) bool {
	words := []string{id}
	for _, trie := range []*token.Trie{
		token.CommandTrie, token.OperatorTrie, token.LiteralTrie,
		token.JoinTrie, token.TypeTrie, token.GroupingSetsTrie,
	} {
		switch trie.Match(words) {
		case token.Final, token.PartialOrFinal:
			return true
		}
	}
	return false
}

// escapeStringLiteral re-adds the quotes the lexer stripped, escaping
// embedded backslashes then single quotes (mirrors the teacher's
// formatStringLiteral).
func escapeStringLiteral(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `''`)
	return "'" + escaped + "'"
}

func applyKeywordCase(s string, kc KeywordCase) string {
	switch kc {
	case KeywordUpper:
		return strings.ToUpper(s)
	case KeywordLower:
		return strings.ToLower(s)
	default:
		return s
	}
}
