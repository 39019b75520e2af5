package reader

import "github.com/sqlcraft/sqlcraft/token"

// ReadSymbol recognizes the fixed single-character symbols `. , ( ) [ ]`
// (spec §4.3 reader 5).
func ReadSymbol(text string, pos int, prev token.Lexeme) (Result, bool, error) {
	if pos >= len(text) {
		return Result{}, false, nil
	}
	var kind token.Kind
	switch text[pos] {
	case '.':
		kind = token.Dot
	case ',':
		kind = token.Comma
	case '(':
		kind = token.OpenParen
	case ')':
		kind = token.CloseParen
	case '[':
		kind = token.OpenBracket
	case ']':
		kind = token.CloseBracket
	default:
		return Result{}, false, nil
	}
	return Result{
		Lexeme: token.Lexeme{Kind: kind, Value: text[pos : pos+1]},
		End:    pos + 1,
	}, true, nil
}
