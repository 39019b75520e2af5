// Package sqlerr defines the structured error taxonomy every parse/print
// entry point returns (spec §7). Grounded on the teacher's
// (freeeve/machparse) parser.ParseError shape, generalized from a single
// flat error type into the five-kind taxonomy spec.md §7 requires.
package sqlerr

import (
	"fmt"
	"strings"

	"github.com/sqlcraft/sqlcraft/token"
)

// Kind is the closed set of failure categories (spec §7).
type Kind int

const (
	// MalformedInput: the tokenizer could not read a lexeme at all, or a
	// string/comment/parameter was left unterminated or empty.
	MalformedInput Kind = iota
	// UnexpectedToken: a parser found a lexeme whose kind or value is not
	// accepted in the current state.
	UnexpectedToken
	// MissingClauseElement: a required sub-clause is absent.
	MissingClauseElement
	// UnbalancedDelimiter: a closing paren/bracket never arrived.
	UnbalancedDelimiter
	// InvalidConfiguration: a programmatic AST mutation violated an
	// invariant.
	InvalidConfiguration
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "MalformedInput"
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingClauseElement:
		return "MissingClauseElement"
	case UnbalancedDelimiter:
		return "UnbalancedDelimiter"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	default:
		return "Unknown"
	}
}

// Error is the structured failure record every entry point returns
// (spec §6.4). It is a struct rather than a bare string so callers can
// switch on Kind and Position without parsing the message.
type Error struct {
	Kind     Kind
	Message  string
	Position token.Pos
	Context  string // ±5 bytes or ±2 lexemes, with a caret pointer
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Position.IsValid() {
		fmt.Fprintf(&b, " (line %d, column %d)", e.Position.Line, e.Position.Column)
	}
	if e.Context != "" {
		b.WriteString("\n")
		b.WriteString(e.Context)
	}
	return b.String()
}

// New builds an Error with no context excerpt attached yet.
func New(kind Kind, pos token.Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Position: pos}
}

// WithContext returns a copy of e with its Context excerpt set.
func (e *Error) WithContext(ctx string) *Error {
	cp := *e
	cp.Context = ctx
	return &cp
}

// LexemeContext renders a ±2-lexeme window around index i with a caret
// under the lexeme at i, the format parser errors use (spec §4.4/§6.4).
func LexemeContext(lexemes []token.Lexeme, i int) string {
	lo := i - 2
	if lo < 0 {
		lo = 0
	}
	hi := i + 3
	if hi > len(lexemes) {
		hi = len(lexemes)
	}
	var before, marker strings.Builder
	for j := lo; j < hi; j++ {
		if j > lo {
			before.WriteByte(' ')
		}
		text := lexemes[j].Value
		if text == "" {
			text = "<eof>"
		}
		before.WriteString(text)
		if j == i {
			marker.WriteString(strings.Repeat(" ", before.Len()-len(text)))
			marker.WriteString(strings.Repeat("^", len(text)))
		}
	}
	return before.String() + "\n" + marker.String()
}

// ByteContext renders a ±5-byte window around offset with a caret, for
// failures reported directly against raw source text (spec §4.1/§6.4).
func ByteContext(text string, offset int) string {
	lo := offset - 5
	if lo < 0 {
		lo = 0
	}
	hi := offset + 5
	if hi > len(text) {
		hi = len(text)
	}
	excerpt := text[lo:hi]
	caret := strings.Repeat(" ", offset-lo) + "^"
	return excerpt + "\n" + caret
}
