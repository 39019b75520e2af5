// Package printer implements the pretty-printer half of the pipeline: AST
// in, formatted SQL text out, shaped by an Options policy (spec §4.5, §6.2).
// Grounded on the teacher's (freeeve/machparse) format/formatter.go, but
// rebuilt as a two-stage pipeline — toPrintTokens walks the AST into a flat
// []printToken stream tagged with the enclosing clause container, and
// renderLines turns that stream into text by applying Options — instead of
// the teacher's single pass that wrote styled bytes straight to a buffer.
package printer

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Container names the clause a print token belongs to, so renderLines can
// decide where indentation and newlines go (spec §4.5).
type Container string

const (
	SelectClause              Container = "selectClause"
	FromClause                Container = "fromClause"
	WhereClause               Container = "whereClause"
	JoinClause                Container = "joinClause"
	OrderByClause             Container = "orderByClause"
	WindowClause              Container = "windowClause"
	LimitClause               Container = "limitClause"
	OffsetClause              Container = "offsetClause"
	Values                    Container = "values"
	CommonTable               Container = "commonTable"
	SubQuerySource            Container = "subQuerySource"
	WindowFrameExpression     Container = "windowFrameExpression"
	PartitionByClause         Container = "partitionByClause"
	HavingClause              Container = "havingClause"
	GroupByClause             Container = "groupByClause"
	BinarySelectQueryOperator Container = "binarySelectQueryOperator"
)

// BreakMode is the closed set of comma/and line-break policies (spec §4.5).
type BreakMode string

const (
	BreakNone   BreakMode = "none"
	BreakBefore BreakMode = "before"
	BreakAfter  BreakMode = "after"
)

// KeywordCase controls how keyword text is cased on output (spec §4.5).
type KeywordCase string

const (
	KeywordAsWritten KeywordCase = "none"
	KeywordUpper     KeywordCase = "upper"
	KeywordLower     KeywordCase = "lower"
)

// Options is the formatting policy passed to Print (spec §4.5, §6.2). It is
// the yaml-serializable equivalent of the teacher's Options{Uppercase,
// Indent}, generalized from one boolean and an indent string into the full
// policy enum spec.md names.
type Options struct {
	IndentChar  string      `yaml:"indentChar"`
	IndentSize  int         `yaml:"indentSize"`
	Newline     string      `yaml:"newline"`
	CommaBreak  BreakMode   `yaml:"commaBreak"`
	AndBreak    BreakMode   `yaml:"andBreak"`
	KeywordCase KeywordCase `yaml:"keywordCase"`

	// IndentIncrementContainers is the set of container tags that bump the
	// indent level and insert a newline when printing enters them.
	IndentIncrementContainers map[Container]bool `yaml:"indentIncrementContainers"`
}

// Default returns the baseline policy used when no team style is loaded:
// single-line output with lower-cased keywords (spec §8 scenario 1 fixes
// this exact shape — `print(parse("select 1 + 2 * 3 as x from t"),
// default_options)` must yield back that exact text). This is a deliberate
// departure from the teacher's own DefaultOptions{Uppercase: true}: the
// spec's scenario pins lower-case as the default, so Default() here diverges
// from freeeve/machparse's default on that one axis.
func Default() Options {
	return Options{
		IndentChar:  " ",
		IndentSize:  2,
		Newline:     " ",
		CommaBreak:  BreakNone,
		AndBreak:    BreakNone,
		KeywordCase: KeywordLower,
		IndentIncrementContainers: map[Container]bool{
			SelectClause:          true,
			FromClause:            true,
			WhereClause:           true,
			JoinClause:            true,
			GroupByClause:         true,
			HavingClause:          true,
			OrderByClause:         true,
			WindowClause:          true,
			LimitClause:           true,
			OffsetClause:          true,
			Values:                true,
			CommonTable:           true,
			SubQuerySource:        true,
			PartitionByClause:     true,
			WindowFrameExpression: true,
		},
	}
}

// multiline reports whether o.Newline actually breaks a line, as opposed to
// Default()'s single-space stand-in for "no line break here".
func (o Options) multiline() bool {
	return o.Newline != "" && o.Newline != " "
}

func (o Options) indentUnit(level int) string {
	if !o.multiline() || level <= 0 {
		return ""
	}
	unit := o.IndentChar
	if unit == "" {
		return ""
	}
	out := ""
	for i := 0; i < o.IndentSize*level; i++ {
		out += unit
	}
	return out
}

// LoadOptions reads a yaml-encoded house style (e.g. a team's checked-in
// .sqlcraft.yml) and overlays it onto Default(), so a config file only has
// to name the fields it wants to change. Grounded on Chahine-tech-sqlens's
// yaml-backed config loader pattern, retargeted at printer.Options.
func LoadOptions(r io.Reader) (Options, error) {
	opts := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("printer: decoding options: %w", err)
	}
	return opts, nil
}

// LoadOptionsFile opens path and delegates to LoadOptions.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("printer: opening options file: %w", err)
	}
	defer f.Close()
	return LoadOptions(f)
}

// SaveOptions encodes opts as yaml, the inverse of LoadOptions, so a house
// style derived at runtime (or Default() itself) can be checked in.
func SaveOptions(w io.Writer, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("printer: encoding options: %w", err)
	}
	return nil
}

// SaveOptionsFile writes opts to path as yaml.
func SaveOptionsFile(path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("printer: creating options file: %w", err)
	}
	defer f.Close()
	return SaveOptions(f, opts)
}
