// Package lexer drives the token readers (spec §4.3) into a flat slice of
// lexemes. Grounded on the teacher's (freeeve/machparse) Lexer.scan loop and
// its sync.Pool reuse of the result slice, adapted to call out to the
// reader.Priority list instead of a single monolithic character switch.
package lexer

import (
	"strings"
	"sync"

	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/reader"
	"github.com/sqlcraft/sqlcraft/sqlerr"
	"github.com/sqlcraft/sqlcraft/token"
)

// estimateCapacity guesses a starting lexeme-slice capacity from input
// length, avoiding most growth reallocations for typical statements
// (spec §5: one lexeme roughly every 4-5 bytes of source).
func estimateCapacity(textLen int) int {
	n := textLen / 4
	if n < 16 {
		n = 16
	}
	return n
}

var lexemesPool = sync.Pool{
	New: func() any {
		s := make([]token.Lexeme, 0, 64)
		return &s
	},
}

// Tokenize scans text into a slice of lexemes, attaching leading comments to
// the lexeme they precede and forwarding a comma's or operator's trailing
// same-line comment to the lexeme that follows it (spec §4.3). Tokenization
// stops at a top-level semicolon (paren/bracket depth zero); the text after
// it is not tokenized, and the result does not report the semicolon's
// offset.
func Tokenize(text string) ([]token.Lexeme, error) {
	lexemesPtr := lexemesPool.Get().(*[]token.Lexeme)
	lexemes := (*lexemesPtr)[:0]
	defer func() {
		*lexemesPtr = lexemes[:0]
		lexemesPool.Put(lexemesPtr)
	}()
	if cap(lexemes) < estimateCapacity(len(text)) {
		lexemes = make([]token.Lexeme, 0, estimateCapacity(len(text)))
	}

	var prev token.Lexeme
	pos := 0
	depth := 0
	var pendingComments []string
	cursor := newPosCursor(text)

	for {
		next, comments, err := charutil.ReadComments(text, pos)
		if err != nil {
			return nil, wrapErr(text, pos, cursor, err)
		}
		pendingComments = append(pendingComments, comments...)
		pos = next

		if pos >= len(text) {
			break
		}
		if depth == 0 && text[pos] == ';' {
			break
		}

		lex, end, err := readOne(text, pos, prev)
		if err != nil {
			return nil, wrapErr(text, pos, cursor, err)
		}
		if lex == nil {
			return nil, sqlerr.New(sqlerr.MalformedInput, cursor.at(pos),
				"unrecognized input %q", excerpt(text, pos)).
				WithContext(sqlerr.ByteContext(text, pos))
		}

		lex.Pos = cursor.at(pos)
		if len(pendingComments) > 0 {
			lex.Comments = pendingComments
			pendingComments = nil
		}

		switch lex.Kind {
		case token.OpenParen, token.OpenBracket:
			depth++
		case token.CloseParen, token.CloseBracket:
			depth--
		}

		lexemes = append(lexemes, *lex)
		prev = *lex
		pos = end

		if lex.Kind == token.Comma || lex.Kind == token.Operator {
			trailing, after := readTrailingSameLineComment(text, pos)
			if trailing != "" {
				pendingComments = append(pendingComments, trailing)
				pos = after
			}
		}
	}

	out := make([]token.Lexeme, len(lexemes))
	copy(out, lexemes)
	return out, nil
}

// readOne tries every reader in priority order and returns the first match.
func readOne(text string, pos int, prev token.Lexeme) (*token.Lexeme, int, error) {
	for _, r := range reader.Priority {
		res, ok, err := r(text, pos, prev)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			lex := res.Lexeme
			return &lex, res.End, nil
		}
	}
	return nil, 0, nil
}

// readTrailingSameLineComment returns a single-line "--" comment appearing
// on the same line as pos, immediately after skipping horizontal whitespace,
// together with the offset just past it (the newline itself, or end of
// text), or ("", pos) if none is there. It never crosses a newline and never
// consumes a block comment (those are always treated as leading comments of
// whatever follows them).
func readTrailingSameLineComment(text string, pos int) (string, int) {
	p := pos
	for p < len(text) && (text[p] == ' ' || text[p] == '\t') {
		p++
	}
	if p+1 < len(text) && text[p] == '-' && text[p+1] == '-' {
		end := strings.IndexByte(text[p:], '\n')
		if end < 0 {
			return strings.TrimSpace(text[p+2:]), len(text)
		}
		return strings.TrimSpace(text[p+2 : p+end]), p + end
	}
	return "", pos
}

// posCursor tracks line/column incrementally as the tokenizer's position
// only ever advances, so a whole Tokenize call stays linear in input length
// instead of recomputing line/column from the start of text on every
// lexeme (which would make lexing a large statement quadratic).
type posCursor struct {
	text string
	pos  int
	line int
	col  int
}

func newPosCursor(text string) *posCursor {
	return &posCursor{text: text, line: 1, col: 1}
}

// at returns the position for offset, which must be >= the offset of the
// previous call (and >= 0 on the first call).
func (c *posCursor) at(offset int) token.Pos {
	for c.pos < offset && c.pos < len(c.text) {
		if c.text[c.pos] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
		c.pos++
	}
	return token.Pos{Offset: offset, Line: c.line, Column: c.col}
}

func excerpt(text string, pos int) string {
	end := pos + 1
	if end > len(text) {
		end = len(text)
	}
	return text[pos:end]
}

func wrapErr(text string, pos int, cursor *posCursor, err error) error {
	reason := err.Error()
	return sqlerr.New(sqlerr.MalformedInput, cursor.at(pos), "%s", reason).
		WithContext(sqlerr.ByteContext(text, pos))
}
