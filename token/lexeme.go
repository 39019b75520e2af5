package token

// Lexeme is a single token with a kind tag, canonical text, and attached
// comments (spec §3.1, glossary). Command/Operator/Function/Type values are
// canonicalized to lower case at lex time (spec §9); Identifier values
// preserve the original spelling. Literal values are canonical too: keyword
// literals are lower-cased, strings lose their quotes and have escapes
// resolved, and a leading-dot number such as ".5" becomes "0.5".
type Lexeme struct {
	Kind     Kind
	Value    string
	Pos      Pos
	Comments []string
}

// Is reports whether the lexeme's kind is a member of set.
func (l Lexeme) Is(set Kind) bool { return l.Kind.Is(set) }

// IsCommand reports whether the lexeme is the given canonical command text,
// e.g. l.IsCommand("group by").
func (l Lexeme) IsCommand(value string) bool {
	return l.Kind == Command && l.Value == value
}

// IsOperator reports whether the lexeme is the given canonical operator
// text, e.g. l.IsOperator("is not").
func (l Lexeme) IsOperator(value string) bool {
	return l.Kind == Operator && l.Value == value
}

// IsSymbol reports whether the lexeme is a fixed single-character symbol
// kind (comma, dot, parens, brackets).
func (l Lexeme) IsSymbol() bool {
	return l.Kind.Is(OpenParen | CloseParen | OpenBracket | CloseBracket | Comma | Dot)
}

// EOF is the sentinel lexeme returned by the parser cursor past the end of
// input; it carries no kind bit so every Is/IsCommand/IsOperator check on it
// is false.
var EOF = Lexeme{Value: "<eof>"}

// IsEOF reports whether l is the end-of-input sentinel.
func (l Lexeme) IsEOF() bool { return l.Kind == 0 && l.Value == "<eof>" }
