package reader

import (
	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/token"
)

// ReadParameter recognizes `${name}` (braced), `:name`/`@name`/`$name`
// (sigil), and bare `?` (anonymous) parameter references (spec §4.3 reader
// 2). The sigil form is suppressed when the following character is itself
// an operator symbol, so `::` lexes as the cast operator rather than a
// zero-length `:` parameter.
func ReadParameter(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) {
		return Result{}, false, nil
	}
	switch text[pos] {
	case '$':
		if pos+1 < len(text) && text[pos+1] == '{' {
			return readBracedParam(text, pos)
		}
		return readSigilParam(text, pos)
	case ':':
		if pos+1 < len(text) && text[pos+1] == ':' {
			return Result{}, false, nil // `::` cast operator, not a parameter
		}
		return readSigilParam(text, pos)
	case '@':
		return readSigilParam(text, pos)
	case '?':
		if pos+1 < len(text) && charutil.IsOperatorChar(text[pos+1]) {
			return Result{}, false, nil // jsonb ?| / ?& style operator, not a parameter
		}
		return Result{
			Lexeme: token.Lexeme{Kind: token.Parameter, Value: ""},
			End:    pos + 1,
		}, true, nil
	}
	return Result{}, false, nil
}

func readBracedParam(text string, pos int) (Result, bool, error) {
	start := pos
	nameStart := pos + 2
	end := nameStart
	for end < len(text) && text[end] != '}' {
		end++
	}
	if end >= len(text) {
		return Result{}, false, &MalformedInputError{Offset: start, Reason: "unterminated ${...} parameter"}
	}
	name := text[nameStart:end]
	if name == "" {
		return Result{}, false, &MalformedInputError{Offset: start, Reason: "empty ${} parameter name"}
	}
	return Result{
		Lexeme: token.Lexeme{Kind: token.Parameter, Value: name},
		End:    end + 1,
	}, true, nil
}

func readSigilParam(text string, pos int) (Result, bool, error) {
	nameStart := pos + 1
	if nameStart >= len(text) || !(charutil.IsLetter(text[nameStart]) || charutil.IsDigit(text[nameStart])) {
		return Result{}, false, nil
	}
	name, end := charutil.ReadIdentifier(text, nameStart)
	return Result{
		Lexeme: token.Lexeme{Kind: token.Parameter, Value: name},
		End:    end,
	}, true, nil
}
