// Package linebreak implements Donald Knuth and Michael Plass's algorithm
// for breaking a paragraph into lines of (near-)optimal total cost.
//
// The package receives a sequence of already-measured [Item] values — boxes,
// glue, and penalties — and a target line width, and returns the sequence of
// breakpoints that minimizes the paragraph's total demerits. Measuring the
// width of a word in a particular font, shaping glyphs, and inserting
// hyphenation penalties are all the caller's responsibility; this package
// only ever sees numbers.
//
// # Basic use
//
//	items := []linebreak.Item{
//		linebreak.Box(30),
//		linebreak.Glue(10, 6, 3),
//		linebreak.Box(40),
//		linebreak.Glue(0, linebreak.Fill, 0),
//		linebreak.Penalty(0, linebreak.ForcedBreak, false),
//	}
//	lines, err := linebreak.Break(items, 80, linebreak.Options{})
//
// See Knuth & Plass, "Breaking Paragraphs into Lines", Software—Practice and
// Experience 11 (1981).
package linebreak
