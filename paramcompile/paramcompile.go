// Package paramcompile implements the named-parameter compiler spec §6.3
// describes as an "external collaborator": a small, self-contained string
// rewriter that turns `:name` placeholders into a driver's positional
// placeholder style. It is deliberately standalone — it does not import
// ast, parser, or printer — and reuses only the character-classification
// primitives from internal/charutil, the same utilities the lexer's own
// readers are built on (spec §4.1, SPEC_FULL §6).
package paramcompile

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/internal/charutil"
	"github.com/sqlcraft/sqlcraft/sqlerr"
	"github.com/sqlcraft/sqlcraft/token"
)

// Style selects the driver placeholder spelling CompileNamed rewrites into.
type Style int

const (
	// StylePGIndexed rewrites each `:name` into `$1`, `$2`, ... in
	// occurrence order (lib/pq, pgx, jackc/pgx, database/sql with "pg").
	StylePGIndexed Style = iota
	// StyleQuestion rewrites every `:name` into a bare `?` (database/sql
	// drivers that use positional question-mark placeholders).
	StyleQuestion
)

// CompileNamed rewrites every `:name` reference in sql into style's
// placeholder spelling, returning the rewritten SQL, the values bound to
// each occurrence in order (pulled from values by name; a name used twice
// produces two positional bindings), and the ordered list of names
// referenced. `:name` occurrences inside single-quoted strings,
// double-quoted identifiers, dollar-quoted strings, line comments, and
// block comments are left untouched and do not count as references; `::`
// is always the cast operator, never a parameter sigil (spec §6.3).
func CompileNamed(sql string, values map[string]any, style Style) (string, []any, []string, error) {
	var out strings.Builder
	var bound []any
	var names []string

	i := 0
	for i < len(sql) {
		c := sql[i]
		switch {
		case c == '\'':
			end, err := skipSingleQuoted(sql, i)
			if err != nil {
				return "", nil, nil, err
			}
			out.WriteString(sql[i:end])
			i = end

		case c == '"':
			end, err := skipDelimited(sql, i, '"')
			if err != nil {
				return "", nil, nil, err
			}
			out.WriteString(sql[i:end])
			i = end

		case c == '-' && i+1 < len(sql) && sql[i+1] == '-':
			end := strings.IndexByte(sql[i:], '\n')
			if end < 0 {
				out.WriteString(sql[i:])
				i = len(sql)
			} else {
				out.WriteString(sql[i : i+end])
				i += end
			}

		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			end := strings.Index(sql[i+2:], "*/")
			if end < 0 {
				return "", nil, nil, sqlerr.New(sqlerr.MalformedInput, posAt(sql, i),
					"unterminated block comment").WithContext(sqlerr.ByteContext(sql, i))
			}
			stop := i + 2 + end + 2
			out.WriteString(sql[i:stop])
			i = stop

		case c == '$':
			if stop, ok := skipDollarQuoted(sql, i); ok {
				out.WriteString(sql[i:stop])
				i = stop
				continue
			}
			out.WriteByte(c)
			i++

		case c == ':' && i+1 < len(sql) && sql[i+1] == ':':
			// the cast operator, never a parameter sigil
			out.WriteString("::")
			i += 2

		case c == ':' && i+1 < len(sql) && isNameStart(sql[i+1]):
			name, end := readName(sql, i+1)
			value, ok := values[name]
			if !ok {
				return "", nil, nil, sqlerr.New(sqlerr.MalformedInput, posAt(sql, i),
					"no value supplied for parameter %q", name).WithContext(sqlerr.ByteContext(sql, i))
			}
			names = append(names, name)
			bound = append(bound, value)
			out.WriteString(placeholder(style, len(names)))
			i = end

		default:
			out.WriteByte(c)
			i++
		}
	}

	if len(names) == 0 {
		return "", nil, nil, sqlerr.New(sqlerr.MalformedInput, token.Pos{Line: 1, Column: 1},
			"no named parameters found in input")
	}

	return out.String(), bound, names, nil
}

func placeholder(style Style, occurrence int) string {
	if style == StyleQuestion {
		return "?"
	}
	return "$" + itoa(occurrence)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits [20]byte
	p := len(digits)
	for n > 0 {
		p--
		digits[p] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[p:])
}

func isNameStart(b byte) bool { return charutil.IsLetter(b) }

func isNameCont(b byte) bool { return charutil.IsLetter(b) || charutil.IsDigit(b) }

func readName(sql string, pos int) (string, int) {
	start := pos
	for pos < len(sql) && isNameCont(sql[pos]) {
		pos++
	}
	return sql[start:pos], pos
}

// skipSingleQuoted returns the position just past the closing quote of the
// string literal starting at pos, honoring backslash escapes and doubled
// quotes exactly as reader.ReadLiteral's readQuotedString does.
func skipSingleQuoted(sql string, pos int) (int, error) {
	start := pos
	pos++
	for {
		if pos >= len(sql) {
			return 0, sqlerr.New(sqlerr.MalformedInput, posAt(sql, start),
				"unterminated string literal").WithContext(sqlerr.ByteContext(sql, start))
		}
		switch sql[pos] {
		case '\\':
			pos += 2
		case '\'':
			if pos+1 < len(sql) && sql[pos+1] == '\'' {
				pos += 2
				continue
			}
			return pos + 1, nil
		default:
			pos++
		}
	}
}

// skipDelimited returns the position just past the closing delimiter of a
// double-quoted identifier starting at pos, honoring a doubled delimiter as
// an escaped literal character (reader.readDelimited's rule).
func skipDelimited(sql string, pos int, closeCh byte) (int, error) {
	start := pos
	pos++
	for {
		if pos >= len(sql) {
			return 0, sqlerr.New(sqlerr.MalformedInput, posAt(sql, start),
				"unterminated quoted identifier").WithContext(sqlerr.ByteContext(sql, start))
		}
		if sql[pos] == closeCh {
			if pos+1 < len(sql) && sql[pos+1] == closeCh {
				pos += 2
				continue
			}
			return pos + 1, nil
		}
		pos++
	}
}

// skipDollarQuoted recognizes `$$...$$` and `$tag$...$tag$`. pos must point
// at the opening '$'. Returns ok=false (and leaves pos untouched by the
// caller) if what follows isn't a valid dollar-quote opener.
func skipDollarQuoted(sql string, pos int) (int, bool) {
	tagEnd := pos + 1
	for tagEnd < len(sql) && isNameCont(sql[tagEnd]) {
		tagEnd++
	}
	if tagEnd >= len(sql) || sql[tagEnd] != '$' {
		return 0, false
	}
	opener := sql[pos : tagEnd+1] // "$$" or "$tag$"
	close := strings.Index(sql[tagEnd+1:], opener)
	if close < 0 {
		return 0, false
	}
	return tagEnd + 1 + close + len(opener), true
}

func posAt(sql string, offset int) token.Pos {
	line, col := 1, 1
	for i := 0; i < offset && i < len(sql); i++ {
		if sql[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return token.Pos{Offset: offset, Line: line, Column: col}
}
