// Package dsl implements a small text format for describing a paragraph as
// an explicit sequence of boxes, glue, and penalties, for use in tests,
// debug dumps, and the linebreak CLI's --script mode. The grammar is kept
// deliberately close to the item model itself rather than to natural-text
// input; see package tokenize for turning prose into items.
//
// Example:
//
//	box 20
//	glue 5 3 1
//	box 30
//	penalty 0 -inf      # forced break
package dsl

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"seehuhn.de/go/linebreak"
)

// Number captures a numeric literal, with "inf", "-inf", and "fill" accepted
// as named values so that infinite stretch/shrink and forced/forbidden
// penalties can be written without the usual floating point spelling.
type Number struct {
	Value float64
}

func (n *Number) Capture(values []string) error {
	switch values[0] {
	case "inf":
		n.Value = math.Inf(1)
	case "-inf":
		n.Value = math.Inf(-1)
	case "fill":
		n.Value = math.Inf(1)
	default:
		v, err := strconv.ParseFloat(values[0], 64)
		if err != nil {
			return fmt.Errorf("dsl: invalid number %q: %w", values[0], err)
		}
		n.Value = v
	}
	return nil
}

// BoxStmt is a fixed-width, unbreakable run of content.
type BoxStmt struct {
	Width Number `parser:"'box' @Number"`
}

// GlueStmt is a breakable, stretchable/shrinkable space.
type GlueStmt struct {
	Width   Number `parser:"'glue' @Number"`
	Stretch Number `parser:"@Number"`
	Shrink  Number `parser:"@Number"`
}

// PenaltyStmt marks a point where a break may, must, or must not occur.
// The trailing "flagged" keyword marks the break as one that should be
// avoided in consecutive lines (the hyphenation case).
type PenaltyStmt struct {
	Width   Number `parser:"'penalty' @Number"`
	Value   Number `parser:"@Number"`
	Flagged bool   `parser:"@'flagged'?"`
}

// Stmt is one line of the script: exactly one of the three item kinds.
type Stmt struct {
	Box     *BoxStmt     `parser:"  @@"`
	Glue    *GlueStmt    `parser:"| @@"`
	Penalty *PenaltyStmt `parser:"| @@"`
}

// Document is a full script: a sequence of item statements, blank lines and
// comments elided by the lexer.
type Document struct {
	Stmts []*Stmt `parser:"@@*"`
}

var itemLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `-?(?:\d+(?:\.\d+)?|inf)|fill`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[Document](
	participle.Lexer(itemLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse reads a script from r and returns its parsed form.
func Parse(r io.Reader) (*Document, error) {
	doc, err := parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("dsl: %w", err)
	}
	return doc, nil
}

// ParseString parses a script held entirely in memory.
func ParseString(input string) (*Document, error) {
	doc, err := parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("dsl: %w", err)
	}
	return doc, nil
}

// Items converts a parsed document into the item sequence Break expects.
func Items(doc *Document) []linebreak.Item {
	items := make([]linebreak.Item, 0, len(doc.Stmts))
	for _, stmt := range doc.Stmts {
		switch {
		case stmt.Box != nil:
			items = append(items, linebreak.Box(stmt.Box.Width.Value))
		case stmt.Glue != nil:
			items = append(items, linebreak.Glue(stmt.Glue.Width.Value, stmt.Glue.Stretch.Value, stmt.Glue.Shrink.Value))
		case stmt.Penalty != nil:
			items = append(items, linebreak.Penalty(stmt.Penalty.Width.Value, stmt.Penalty.Value.Value, stmt.Penalty.Flagged))
		}
	}
	return items
}

// Compile parses a script and converts it directly to items.
func Compile(input string) ([]linebreak.Item, error) {
	doc, err := ParseString(input)
	if err != nil {
		return nil, err
	}
	return Items(doc), nil
}
