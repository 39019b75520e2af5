package paramcompile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/paramcompile"
)

func TestCompileNamedPGIndexed(t *testing.T) {
	sql := "SELECT a, b FROM t WHERE a = :id AND b BETWEEN 1 AND 10"
	out, values, names, err := paramcompile.CompileNamed(sql, map[string]any{"id": 7}, paramcompile.StylePGIndexed)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t WHERE a = $1 AND b BETWEEN 1 AND 10", out)
	assert.Equal(t, []any{7}, values)
	assert.Equal(t, []string{"id"}, names)
}

func TestCompileNamedQuestionStyle(t *testing.T) {
	sql := "SELECT a FROM t WHERE a = :id"
	out, values, names, err := paramcompile.CompileNamed(sql, map[string]any{"id": 1}, paramcompile.StyleQuestion)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE a = ?", out)
	assert.Equal(t, []any{1}, values)
	assert.Equal(t, []string{"id"}, names)
}

func TestCompileNamedDuplicateNameGetsTwoBindings(t *testing.T) {
	sql := "SELECT :x + :x"
	out, values, names, err := paramcompile.CompileNamed(sql, map[string]any{"x": 5}, paramcompile.StylePGIndexed)
	require.NoError(t, err)
	assert.Equal(t, "SELECT $1 + $2", out)
	assert.Equal(t, []any{5, 5}, values)
	assert.Equal(t, []string{"x", "x"}, names)
}

func TestCompileNamedSkipsCastOperator(t *testing.T) {
	sql := "SELECT a::int FROM t WHERE a = :id"
	out, _, names, err := paramcompile.CompileNamed(sql, map[string]any{"id": 1}, paramcompile.StylePGIndexed)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a::int FROM t WHERE a = $1", out)
	assert.Equal(t, []string{"id"}, names)
}

func TestCompileNamedSkipsStringLiteral(t *testing.T) {
	sql := "SELECT * FROM t WHERE label = 'not :a param' AND id = :id"
	out, _, names, err := paramcompile.CompileNamed(sql, map[string]any{"id": 3}, paramcompile.StylePGIndexed)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE label = 'not :a param' AND id = $1", out)
	assert.Equal(t, []string{"id"}, names)
}

func TestCompileNamedSkipsQuotedIdentifier(t *testing.T) {
	sql := `SELECT "weird :name" FROM t WHERE id = :id`
	out, _, names, err := paramcompile.CompileNamed(sql, map[string]any{"id": 3}, paramcompile.StylePGIndexed)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "weird :name" FROM t WHERE id = $1`, out)
	assert.Equal(t, []string{"id"}, names)
}

func TestCompileNamedSkipsDollarQuotedString(t *testing.T) {
	sql := "SELECT $$not :a param$$ FROM t WHERE id = :id"
	out, _, names, err := paramcompile.CompileNamed(sql, map[string]any{"id": 3}, paramcompile.StylePGIndexed)
	require.NoError(t, err)
	assert.Equal(t, "SELECT $$not :a param$$ FROM t WHERE id = $1", out)
	assert.Equal(t, []string{"id"}, names)
}

func TestCompileNamedSkipsLineAndBlockComments(t *testing.T) {
	sql := "SELECT a -- :fake comment\n FROM t /* :also fake */ WHERE id = :id"
	out, _, names, err := paramcompile.CompileNamed(sql, map[string]any{"id": 3}, paramcompile.StylePGIndexed)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a -- :fake comment\n FROM t /* :also fake */ WHERE id = $1", out)
	assert.Equal(t, []string{"id"}, names)
}

func TestCompileNamedMissingValueErrors(t *testing.T) {
	_, _, _, err := paramcompile.CompileNamed("SELECT * FROM t WHERE id = :id", map[string]any{}, paramcompile.StylePGIndexed)
	require.Error(t, err)
}

func TestCompileNamedNoReferencesErrors(t *testing.T) {
	_, _, _, err := paramcompile.CompileNamed("SELECT * FROM t", map[string]any{}, paramcompile.StylePGIndexed)
	require.Error(t, err)
}
