package reader

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/token"
)

// ReadLiteral recognizes keyword literals (null, true, false,
// current_date, ...), numbers in decimal/hex/octal/binary/scientific
// notation, and single-quoted strings (spec §4.3 reader 4).
func ReadLiteral(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) {
		return Result{}, false, nil
	}
	if text[pos] == '\'' {
		return readQuotedString(text, pos)
	}
	if charutil.IsDigit(text[pos]) {
		return readNumber(text, pos)
	}
	if text[pos] == '.' && pos+1 < len(text) && charutil.IsDigit(text[pos+1]) {
		return readNumber(text, pos)
	}
	if (text[pos] == '+' || text[pos] == '-') && !prevEndsValue(prev) &&
		pos+1 < len(text) && (charutil.IsDigit(text[pos+1]) || (text[pos+1] == '.' && pos+2 < len(text) && charutil.IsDigit(text[pos+2]))) {
		return readNumber(text, pos)
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
		n, ok := token.LiteralTrie.LongestMatch(wordTexts)
		if !ok {
			return Result{}, false, nil
		}
		return Result{
			Lexeme: token.Lexeme{Kind: token.Literal, Value: strings.ToLower(joinWords(wordTexts[:n]))},
			End:    words[n-1].End,
		}, true, nil
	}
	return Result{}, false, nil
}

// prevEndsValue reports whether prev could itself be the end of a value
// expression, meaning a following +/- must be a binary operator rather than
// a literal's sign (spec §4.3 reader 4: "optional sign when the previous
// lexeme is not another literal/identifier").
func prevEndsValue(prev token.Lexeme) bool {
	return prev.Kind.Is(token.Literal|token.Identifier|token.Parameter|token.Type) ||
		prev.Kind.Is(token.CloseParen | token.CloseBracket)
}

func joinWords(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}

func readQuotedString(text string, pos int) (Result, bool, error) {
	start := pos
	pos++ // past opening quote
	var b strings.Builder
	for {
		if pos >= len(text) {
			return Result{}, false, &MalformedInputError{Offset: start, Reason: "unterminated string literal"}
		}
		c := text[pos]
		if c == '\\' && pos+1 < len(text) {
			switch e := text[pos+1]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(e)
			}
			pos += 2
			continue
		}
		if c == '\'' {
			if pos+1 < len(text) && text[pos+1] == '\'' {
				b.WriteByte('\'')
				pos += 2
				continue
			}
			pos++
			break
		}
		b.WriteByte(c)
		pos++
	}
	return Result{
		Lexeme: token.Lexeme{Kind: token.Literal, Value: b.String()},
		End:    pos,
	}, true, nil
}

func readNumber(text string, pos int) (Result, bool, error) {
	start := pos
	if text[pos] == '+' || text[pos] == '-' {
		pos++
	}
	if text[pos] == '0' && pos+1 < len(text) && (text[pos+1] == 'x' || text[pos+1] == 'X') {
		pos += 2
		for pos < len(text) && isHexDigit(text[pos]) {
			pos++
		}
		return Result{Lexeme: token.Lexeme{Kind: token.Literal, Value: text[start:pos]}, End: pos}, true, nil
	}
	if text[pos] == '0' && pos+1 < len(text) && (text[pos+1] == 'b' || text[pos+1] == 'B') {
		pos += 2
		for pos < len(text) && (text[pos] == '0' || text[pos] == '1') {
			pos++
		}
		return Result{Lexeme: token.Lexeme{Kind: token.Literal, Value: text[start:pos]}, End: pos}, true, nil
	}
	if text[pos] == '0' && pos+1 < len(text) && (text[pos+1] == 'o' || text[pos+1] == 'O') {
		pos += 2
		for pos < len(text) && text[pos] >= '0' && text[pos] <= '7' {
			pos++
		}
		return Result{Lexeme: token.Lexeme{Kind: token.Literal, Value: text[start:pos]}, End: pos}, true, nil
	}

	leadingDot := text[pos] == '.'
	for pos < len(text) && charutil.IsDigit(text[pos]) {
		pos++
	}
	if pos < len(text) && text[pos] == '.' {
		pos++
		for pos < len(text) && charutil.IsDigit(text[pos]) {
			pos++
		}
	}
	if pos < len(text) && (text[pos] == 'e' || text[pos] == 'E') {
		save := pos
		pos++
		if pos < len(text) && (text[pos] == '+' || text[pos] == '-') {
			pos++
		}
		if pos < len(text) && charutil.IsDigit(text[pos]) {
			for pos < len(text) && charutil.IsDigit(text[pos]) {
				pos++
			}
		} else {
			pos = save
		}
	}
	value := text[start:pos]
	if leadingDot {
		// Normalize a leading-dot form (".5") to "0.5".
		sign := ""
		body := value
		if body[0] == '+' || body[0] == '-' {
			sign, body = body[:1], body[1:]
		}
		value = sign + "0" + body
	}
	return Result{Lexeme: token.Lexeme{Kind: token.Literal, Value: value}, End: pos}, true, nil
}

func isHexDigit(b byte) bool {
	return charutil.IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
