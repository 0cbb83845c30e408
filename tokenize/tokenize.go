// Package tokenize turns plain text into the box/glue/penalty item stream
// linebreak.Break expects. It is a convenience front end for the CLI's
// --text mode, not a typesetting engine: width is measured in grapheme
// cells (one unit per display column), suitable for a monospace terminal
// or for feeding through a caller-supplied scale factor. A production
// embedding with real glyph metrics would build its own item stream using
// the Box/Glue/Penalty constructors directly instead.
package tokenize

import (
	"github.com/scalecode-solutions/runeseg"

	"seehuhn.de/go/linebreak"
)

// Options controls how Text converts prose into items.
type Options struct {
	// UnitWidth scales the per-grapheme cell width reported by runeseg.
	// Zero defaults to 1.
	UnitWidth float64

	// SpaceStretch and SpaceShrink control how much an interword space may
	// grow or shrink. Zero defaults to UnitWidth/2 and UnitWidth/3, TeX's
	// usual ratios for a normal interword space.
	SpaceStretch float64
	SpaceShrink  float64

	// HyphenWidth and HyphenPenalty control the Penalty item inserted at
	// a soft hyphen (U+00AD) in the input. Zero HyphenPenalty defaults to
	// linebreak.HyphenPenalty.
	HyphenWidth   float64
	HyphenPenalty float64
}

func (o Options) withDefaults() Options {
	if o.UnitWidth == 0 {
		o.UnitWidth = 1
	}
	if o.SpaceStretch == 0 {
		o.SpaceStretch = o.UnitWidth / 2
	}
	if o.SpaceShrink == 0 {
		o.SpaceShrink = o.UnitWidth / 3
	}
	if o.HyphenWidth == 0 {
		o.HyphenWidth = o.UnitWidth
	}
	if o.HyphenPenalty == 0 {
		o.HyphenPenalty = linebreak.HyphenPenalty
	}
	return o
}

// softHyphen is U+00AD, the conventional marker for an optional
// hyphenation point that is invisible unless chosen.
const softHyphen = "­"

// Text converts a single paragraph of prose into an item stream terminated
// by a forced break, ready for linebreak.Break. Runs of non-blank grapheme
// clusters (as split by runeseg) become boxes; each space or tab cluster
// becomes its own glue item; a soft hyphen becomes a flagged Penalty.
func Text(s string, opts Options) []linebreak.Item {
	opts = opts.withDefaults()

	var items []linebreak.Item
	var boxWidth float64
	haveBox := false

	flushBox := func() {
		if haveBox {
			items = append(items, linebreak.Box(boxWidth))
			haveBox = false
			boxWidth = 0
		}
	}

	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = runeseg.StepString(rest, state)
		if cluster == "" {
			break
		}

		width := float64(boundaries>>runeseg.ShiftWidth) * opts.UnitWidth

		switch {
		case cluster == softHyphen:
			flushBox()
			items = append(items, linebreak.Penalty(opts.HyphenWidth, opts.HyphenPenalty, true))

		case isBlank(cluster):
			flushBox()
			items = append(items, linebreak.Glue(width, opts.SpaceStretch, opts.SpaceShrink))

		default:
			boxWidth += width
			haveBox = true
		}
	}
	flushBox()

	items = append(items,
		linebreak.Glue(0, linebreak.Fill, 0),
		linebreak.Penalty(0, linebreak.ForcedBreak, false),
	)
	return items
}

func isBlank(cluster string) bool {
	for _, r := range cluster {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return len(cluster) > 0
}
