// Package reader implements the token readers of spec §4.3: one small
// module per lexeme class, each given first refusal at the current
// position before the next reader in the priority list is tried. Grounded
// on the per-character scan branches of the teacher (freeeve/machparse)
// lexer, split one class per file and reordered to the fixed priority list
// spec §4.3 and §9 require.
package reader

import "github.com/sqlcraft/sqlcraft/token"

// Result is what a reader returns when it successfully recognizes a lexeme
// starting at the position it was given. End is the offset immediately
// after the consumed text (not including any trailing whitespace/comments,
// which the tokenizer handles separately).
type Result struct {
	Lexeme token.Lexeme
	End    int
}

// MalformedInputError reports a lexical error local to one reader (an
// unterminated string, an empty braced parameter name, ...). The lexer
// wraps these into sqlerr.Error with full position context.
type MalformedInputError struct {
	Offset int
	Reason string
}

func (e *MalformedInputError) Error() string { return e.Reason }

// Reader attempts to recognize a lexeme at text[pos:]. prev is the most
// recently emitted lexeme (zero value at the start of input), used for
// context-sensitive decisions (e.g. disabling the SQL-Server bracket form
// right after ARRAY, or only treating a leading +/- as a sign when the
// previous lexeme was not itself a value). It returns ok=false, err=nil
// when this reader simply does not apply at pos, so the manager can try the
// next one.
type Reader func(text string, pos int, prev token.Lexeme) (Result, bool, error)

// Priority is the fixed reader order spec §4.3 mandates. Each entry's
// position in this slice IS the priority: earlier readers get first
// refusal.
var Priority = []Reader{
	ReadEscapedIdentifier,
	ReadParameter,
	ReadStringSpecifier,
	ReadLiteral,
	ReadSymbol,
	ReadCommand,
	ReadOperator,
	ReadType,
	ReadFunction,
	ReadIdentifier,
}
