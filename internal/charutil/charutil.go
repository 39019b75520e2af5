// Package charutil provides the character-level scanning primitives shared
// by the keyword trie matcher and the token readers: whitespace/comment
// skipping, regular-identifier scanning, and delimiter classification
// (spec §4.1). Grounded on the character classifiers in the teacher
// (freeeve/machparse) lexer, pulled out of the monolithic scanner so more
// than one caller can reuse them without sharing lexer state.
package charutil

import "strings"

// MalformedInputError is returned by ReadComments when a block comment is
// never closed. It is deliberately untyped-by-package here (charutil has no
// dependency on sqlerr) and wrapped by callers into sqlerr.Error.
type MalformedInputError struct {
	Offset int
	Reason string
}

func (e *MalformedInputError) Error() string { return e.Reason }

// IsSpace reports whether b is SQL whitespace.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsLetter reports whether b can start or continue a regular identifier.
func IsLetter(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentChar reports whether b can continue (not necessarily start) a
// regular identifier.
func IsIdentChar(b byte) bool {
	return IsLetter(b) || IsDigit(b) || b == '$'
}

// operatorChars is the set of characters that may form a run of operator
// symbols (spec §4.3 reader 7).
const operatorChars = "+-*/%~@#^&:!<>=|"

// IsOperatorChar reports whether b may appear in an operator run.
func IsOperatorChar(b byte) bool { return strings.IndexByte(operatorChars, b) >= 0 }

// IsDelimiter reports whether b terminates a regular identifier: whitespace,
// operator characters, dot, comma, or any paren/bracket.
func IsDelimiter(b byte) bool {
	if IsSpace(b) {
		return true
	}
	switch b {
	case '.', ',', '(', ')', '[', ']':
		return true
	}
	return IsOperatorChar(b)
}

// SkipWhitespace advances pos past any run of whitespace characters.
func SkipWhitespace(text string, pos int) int {
	for pos < len(text) && IsSpace(text[pos]) {
		pos++
	}
	return pos
}

// SkipWhitespaceAndComments advances pos past interleaved whitespace and
// comments, discarding comment text. Used where comment content does not
// matter (e.g. between words of a multi-word keyword match).
func SkipWhitespaceAndComments(text string, pos int) (int, error) {
	for {
		next := SkipWhitespace(text, pos)
		if next < len(text) && text[next] == '-' && next+1 < len(text) && text[next+1] == '-' {
			end := strings.IndexByte(text[next:], '\n')
			if end < 0 {
				pos = len(text)
			} else {
				pos = next + end
			}
			continue
		}
		if next+1 < len(text) && text[next] == '/' && text[next+1] == '*' {
			end := strings.Index(text[next+2:], "*/")
			if end < 0 {
				return pos, &MalformedInputError{Offset: next, Reason: "unterminated block comment"}
			}
			pos = next + 2 + end + 2
			continue
		}
		pos = next
		return pos, nil
	}
}

// ReadComments skips and collects leading comments starting at pos,
// returning the new position and the trimmed comment texts in source order.
// Blank lines inside a comment body are preserved; leading/trailing blank
// lines are trimmed. A hint-style block comment ("/*+...*/") keeps its
// leading '+' marker so callers can distinguish optimizer hints from plain
// commentary.
func ReadComments(text string, pos int) (int, []string, error) {
	var comments []string
	for {
		next := SkipWhitespace(text, pos)
		if next+1 < len(text) && text[next] == '-' && text[next+1] == '-' {
			end := strings.IndexByte(text[next:], '\n')
			var body string
			if end < 0 {
				body = text[next+2:]
				pos = len(text)
			} else {
				body = text[next+2 : next+end]
				pos = next + end
			}
			comments = append(comments, strings.TrimSpace(body))
			continue
		}
		if next+1 < len(text) && text[next] == '/' && text[next+1] == '*' {
			end := strings.Index(text[next+2:], "*/")
			if end < 0 {
				return pos, comments, &MalformedInputError{Offset: next, Reason: "unterminated block comment"}
			}
			body := text[next+2 : next+2+end]
			comments = append(comments, trimBlockComment(body))
			pos = next + 2 + end + 2
			continue
		}
		return next, comments, nil
	}
}

func trimBlockComment(body string) string {
	lines := strings.Split(body, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ReadIdentifier reads one contiguous run of non-delimiter characters
// starting at pos (assumed to not be whitespace). Returns the identifier
// text and the position just past it. If pos is already at a delimiter,
// returns ("", pos).
func ReadIdentifier(text string, pos int) (string, int) {
	start := pos
	for pos < len(text) && !IsDelimiter(text[pos]) {
		pos++
	}
	return text[start:pos], pos
}

// Word is one regular-identifier token discovered by PeekWords, used by the
// keyword tries to look ahead without committing to a lexer position.
type Word struct {
	Text string // original-case text
	End  int    // offset immediately after this word
}

// PeekWords returns up to max consecutive regular-identifier words starting
// at pos, skipping whitespace and comments between them. It does not mutate
// any caller state; the caller advances its own cursor using the End field
// of however many words it decides to consume.
func PeekWords(text string, pos int, max int) []Word {
	words := make([]Word, 0, max)
	p := pos
	for len(words) < max {
		next, err := SkipWhitespaceAndComments(text, p)
		if err != nil {
			break
		}
		word, end := ReadIdentifier(text, next)
		if word == "" {
			break
		}
		words = append(words, Word{Text: word, End: end})
		p = end
	}
	return words
}
