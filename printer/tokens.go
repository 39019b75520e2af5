package printer

// tokenKind classifies a printToken for keyword-casing and spacing purposes
// (spec §4.5: "each token carries text, a semantic type, and a container
// tag naming the enclosing clause").
type tokenKind int

const (
	tokKeyword tokenKind = iota
	tokIdent
	tokLiteral
	tokOperator
	tokPunct // parens, brackets, dot, colon
	tokComma
	tokAnd
	tokRaw // pre-rendered text (placeholders, already-quoted identifiers)
	tokSpace
	tokEnter
	tokExit
)

// printToken is one unit of the flat stream toPrintTokens produces. Container
// is set only on tokEnter/tokExit events, so renderLines knows which
// IndentIncrementContainers entry governs a given break.
type printToken struct {
	kind      tokenKind
	text      string
	container Container
}

// printTokenBuilder accumulates a []printToken for one AST subtree. Its
// emit* methods mirror the shape of the teacher's Formatter.write/writeKeyword
// helpers, except each call appends a token instead of writing bytes, so the
// styling decision (case, spacing, line breaks) can be deferred to
// renderLines and driven by Options.
type printTokenBuilder struct {
	tokens []printToken
}

func (b *printTokenBuilder) kw(text string) {
	b.tokens = append(b.tokens, printToken{kind: tokKeyword, text: text})
}

func (b *printTokenBuilder) ident(text string) {
	b.tokens = append(b.tokens, printToken{kind: tokIdent, text: quoteIdent(text)})
}

func (b *printTokenBuilder) funcName(text string) {
	b.tokens = append(b.tokens, printToken{kind: tokIdent, text: quoteFuncName(text)})
}

func (b *printTokenBuilder) lit(text string) {
	b.tokens = append(b.tokens, printToken{kind: tokLiteral, text: text})
}

func (b *printTokenBuilder) op(text string) {
	b.tokens = append(b.tokens, printToken{kind: tokOperator, text: text})
}

func (b *printTokenBuilder) punct(text string) {
	b.tokens = append(b.tokens, printToken{kind: tokPunct, text: text})
}

func (b *printTokenBuilder) raw(text string) {
	b.tokens = append(b.tokens, printToken{kind: tokRaw, text: text})
}

func (b *printTokenBuilder) space() {
	b.tokens = append(b.tokens, printToken{kind: tokSpace})
}

// comma emits a structural list separator; renderLines decides whether it
// becomes ", ", ",\n<indent>" or "\n<indent>, " per Options.CommaBreak.
func (b *printTokenBuilder) comma() {
	b.tokens = append(b.tokens, printToken{kind: tokComma})
}

// and_ emits a structural "and" conjunction; renderLines applies
// Options.AndBreak the same way comma applies Options.CommaBreak.
func (b *printTokenBuilder) and_() {
	b.tokens = append(b.tokens, printToken{kind: tokAnd})
}

// enter marks the start of c's body: renderLines bumps the indent level and
// inserts a line break before the next token when c is one of
// Options.IndentIncrementContainers.
func (b *printTokenBuilder) enter(c Container) {
	b.tokens = append(b.tokens, printToken{kind: tokEnter, container: c})
}

// exit marks the end of c's body, undoing the level bump enter(c) made.
func (b *printTokenBuilder) exit(c Container) {
	b.tokens = append(b.tokens, printToken{kind: tokExit, container: c})
}

// clauseBreak marks an unconditional line break at the current indent level,
// used ahead of each top-level clause keyword (SELECT/FROM/WHERE/...) and
// ahead of every JOIN, independent of which containers Options elects to
// indent (spec §4.5: "JOIN clauses always preceded by a newline").
func (b *printTokenBuilder) clauseBreak() {
	b.tokens = append(b.tokens, printToken{kind: tokEnter, container: ""})
	b.tokens = append(b.tokens, printToken{kind: tokExit, container: ""})
}
