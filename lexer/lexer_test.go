package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/token"
)

func values(lexemes []token.Lexeme) []string {
	out := make([]string, len(lexemes))
	for i, l := range lexemes {
		out[i] = l.Value
	}
	return out
}

func kinds(lexemes []token.Lexeme) []token.Kind {
	out := make([]token.Kind, len(lexemes))
	for i, l := range lexemes {
		out[i] = l.Kind
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	lexemes, err := Tokenize("SELECT * FROM users")
	require.NoError(t, err)
	assert.Equal(t, []string{"select", "*", "from", "users"}, values(lexemes))
	assert.Equal(t, []token.Kind{token.Command, token.Identifier, token.Command, token.Identifier}, kinds(lexemes))
}

func TestTokenizeCommaAndOperators(t *testing.T) {
	lexemes, err := Tokenize("SELECT id, name FROM users WHERE id = 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"select", "id", ",", "name", "from", "users", "where", "id", "=", "1"}, values(lexemes))
}

func TestTokenizeKeywordCanonicalization(t *testing.T) {
	lexemes, err := Tokenize("SeLeCT Id FROM Users")
	require.NoError(t, err)
	require.Len(t, lexemes, 4)
	assert.Equal(t, "select", lexemes[0].Value)
	assert.Equal(t, "Id", lexemes[1].Value, "identifiers keep their original case")
	assert.Equal(t, "from", lexemes[2].Value)
	assert.Equal(t, "Users", lexemes[3].Value)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"123", "123"},
		{"123.456", "123.456"},
		{".456", "0.456"},
		{"1e10", "1e10"},
		{"1.5e+10", "1.5e+10"},
		{"0x1A2B", "0x1A2B"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexemes, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, lexemes, 1)
			assert.Equal(t, token.Literal, lexemes[0].Kind)
			assert.Equal(t, tt.value, lexemes[0].Value)
		})
	}
}

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"'hello'", "hello"},
		{"'it''s'", "it's"},
		{`'escaped\nchar'`, "escaped\nchar"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexemes, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, lexemes, 1)
			assert.Equal(t, token.Literal, lexemes[0].Kind)
			assert.Equal(t, tt.value, lexemes[0].Value)
		})
	}
}

func TestTokenizeQuotedIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`"column"`, "column"},
		{`"Column Name"`, "Column Name"},
		{`"escaped""quote"`, `escaped"quote`},
		{"`column`", "column"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexemes, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, lexemes, 1)
			assert.Equal(t, token.Identifier, lexemes[0].Kind)
			assert.Equal(t, tt.value, lexemes[0].Value)
		})
	}
}

func TestTokenizeParameters(t *testing.T) {
	tests := []string{"?", "$1", "$123", ":name", ":user_id", "@var"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lexemes, err := Tokenize(in)
			require.NoError(t, err)
			require.Len(t, lexemes, 1)
			assert.Equal(t, token.Parameter, lexemes[0].Kind)
		})
	}
}

func TestTokenizeLeadingComments(t *testing.T) {
	lexemes, err := Tokenize("SELECT -- comment\n1")
	require.NoError(t, err)
	require.Len(t, lexemes, 2)
	assert.Empty(t, lexemes[0].Comments)
	assert.Equal(t, []string{"comment"}, lexemes[1].Comments, "a leading line comment attaches to the lexeme it precedes")
}

func TestTokenizeBlockComments(t *testing.T) {
	lexemes, err := Tokenize("SELECT /* multi\nline\ncomment */ 1")
	require.NoError(t, err)
	require.Len(t, lexemes, 2)
	assert.Equal(t, []string{"multi\nline\ncomment"}, lexemes[1].Comments)
}

func TestTokenizeTrailingCommentForwarding(t *testing.T) {
	lexemes, err := Tokenize("select a, -- first column\nb from t")
	require.NoError(t, err)
	var names []string
	var forwarded []string
	for _, l := range lexemes {
		names = append(names, l.Value)
		if l.Value == "b" {
			forwarded = l.Comments
		}
	}
	assert.Equal(t, []string{"select", "a", ",", "b", "from", "t"}, names)
	assert.Equal(t, []string{"first column"}, forwarded, "a comment trailing a comma forwards to the next lexeme")
}

func TestTokenizePositions(t *testing.T) {
	lexemes, err := Tokenize("select\n  id\nfrom t")
	require.NoError(t, err)
	require.Len(t, lexemes, 4)
	assert.Equal(t, token.Pos{Offset: 0, Line: 1, Column: 1}, lexemes[0].Pos)
	assert.Equal(t, 2, lexemes[1].Pos.Line)
	assert.Equal(t, 3, lexemes[1].Pos.Column)
	assert.Equal(t, 3, lexemes[2].Pos.Line)
	assert.Equal(t, 1, lexemes[2].Pos.Column)
}

func TestTokenizeStopsAtTopLevelSemicolon(t *testing.T) {
	lexemes, err := Tokenize("select 1; select 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"select", "1"}, values(lexemes))
}

func TestTokenizeUnclosedParenIsNotAnError(t *testing.T) {
	// Not valid SQL, but exercises depth tracking: the tokenizer does not
	// check paren balance, so an unclosed '(' at end of input still lexes.
	lexemes, err := Tokenize("select (1")
	require.NoError(t, err)
	assert.Equal(t, []string{"select", "(", "1"}, values(lexemes))
}

func TestTokenizeUnterminatedStringIsMalformedInput(t *testing.T) {
	_, err := Tokenize("select 'unterminated")
	require.Error(t, err)
}

func TestTokenizeUnterminatedBlockCommentIsMalformedInput(t *testing.T) {
	_, err := Tokenize("select /* never closed")
	require.Error(t, err)
}

func BenchmarkTokenize(b *testing.B) {
	input := `SELECT u.id, u.name, COUNT(o.id) as order_count
FROM users u
LEFT JOIN orders o ON u.id = o.user_id
WHERE u.status = 'active'
  AND u.created_at BETWEEN '2024-01-01' AND '2024-12-31'
GROUP BY u.id, u.name
HAVING COUNT(o.id) > 5
ORDER BY order_count DESC
LIMIT 100`

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(input); err != nil {
			b.Fatal(err)
		}
	}
}
