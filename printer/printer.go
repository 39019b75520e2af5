package printer

import (
	"strings"

	"github.com/sqlcraft/sqlcraft/ast"
)

// Print renders node back to SQL text under opts (spec §6.2:
// `print(ast, options) → string`). It runs the two-stage pipeline spec §4.5
// requires: toPrintTokens walks the AST into a flat, container-tagged token
// stream, then renderLines turns that stream into text by applying opts.
func Print(node ast.Node, opts Options) string {
	b := &printTokenBuilder{}
	toPrintTokens(b, node)
	return renderLines(b.tokens, opts)
}

// String renders node using Default(), the package-level convenience the
// teacher's format.String(node) offers for callers that don't need a
// custom house style.
func String(node ast.Node) string {
	return Print(node, Default())
}

type breakState struct {
	level int
}

// renderLines consumes a []printToken and produces the final formatted
// string, applying Options.IndentChar/IndentSize/Newline/CommaBreak/
// AndBreak/KeywordCase/IndentIncrementContainers. It is the only place line
// breaks, indentation, and keyword casing are decided — toPrintTokens never
// makes those calls itself.
func renderLines(tokens []printToken, opts Options) string {
	var sb strings.Builder
	st := breakState{}
	wrote := false
	needSpace := false

	breakAt := func(level int) {
		sb.WriteString(opts.Newline)
		sb.WriteString(opts.indentUnit(level))
		wrote = true
		needSpace = false
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokEnter:
			if tok.container == "" {
				if wrote {
					breakAt(st.level)
				}
				continue
			}
			if opts.IndentIncrementContainers[tok.container] {
				st.level++
				if wrote {
					breakAt(st.level)
				}
			}
		case tokExit:
			if tok.container == "" {
				continue
			}
			if opts.IndentIncrementContainers[tok.container] {
				st.level--
			}
		case tokSpace:
			if wrote {
				needSpace = true
			}
		case tokComma:
			switch opts.CommaBreak {
			case BreakBefore:
				if wrote {
					breakAt(st.level)
				}
				sb.WriteString(",")
				needSpace = true
			case BreakAfter:
				sb.WriteString(",")
				breakAt(st.level)
			default:
				sb.WriteString(",")
				needSpace = true
			}
			wrote = true
		case tokAnd:
			word := applyKeywordCase("and", opts.KeywordCase)
			switch opts.AndBreak {
			case BreakBefore:
				if wrote {
					breakAt(st.level)
				}
				sb.WriteString(word)
				needSpace = true
			case BreakAfter:
				if needSpace {
					sb.WriteString(" ")
				}
				sb.WriteString(word)
				breakAt(st.level)
			default:
				if needSpace {
					sb.WriteString(" ")
				}
				sb.WriteString(word)
				needSpace = true
			}
			wrote = true
		default:
			text := tok.text
			if tok.kind == tokKeyword {
				text = applyKeywordCase(text, opts.KeywordCase)
			}
			if text == "" {
				continue
			}
			if needSpace {
				sb.WriteString(" ")
				needSpace = false
			}
			sb.WriteString(text)
			wrote = true
		}
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}
