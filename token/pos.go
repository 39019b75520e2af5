// Package token defines SQL lexeme kinds, source positions, and the
// multi-word keyword tries used by the lexer.
package token

// Pos represents a position in the source text.
type Pos struct {
	Offset int // byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// IsValid returns true if the position was ever set.
func (p Pos) IsValid() bool {
	return p.Line > 0
}
