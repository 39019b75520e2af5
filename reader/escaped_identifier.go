package reader

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/token"
)

// ReadEscapedIdentifier recognizes `"..."`, `` `...` ``, and `[...]`
// quoted identifiers (spec §4.3 reader 1). The SQL-Server bracket form is
// disabled right after the keyword ARRAY, so `ARRAY[1,2,3]` lexes its `[` as
// a plain OpenBracket rather than the start of a quoted identifier.
func ReadEscapedIdentifier(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) {
		return Result{}, false, nil
	}
	switch text[pos] {
	case '"':
		return readDelimited(text, pos, '"')
	case '`':
		return readDelimited(text, pos, '`')
	case '[':
		if prev.Kind.Is(token.Command|token.Type) && prev.Value == "array" {
			return Result{}, false, nil
		}
		return readDelimited(text, pos, ']')
	}
	return Result{}, false, nil
}

// readDelimited scans an identifier opened at pos and closed by close,
// where a doubled close character is an escaped literal close character
// inside the identifier (standard SQL quoting rule, shared by ", `, and []).
func readDelimited(text string, pos int, close byte) (Result, bool, error) {
	start := pos
	pos++ // past opening delimiter
	var b strings.Builder
	for {
		if pos >= len(text) {
			return Result{}, false, &MalformedInputError{Offset: start, Reason: "unterminated quoted identifier"}
		}
		if text[pos] == close {
			if pos+1 < len(text) && text[pos+1] == close {
				b.WriteByte(close)
				pos += 2
				continue
			}
			pos++
			break
		}
		b.WriteByte(text[pos])
		pos++
	}
	return Result{
		Lexeme: token.Lexeme{Kind: token.Identifier, Value: b.String()},
		End:    pos,
	}, true, nil
}
