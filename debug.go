package linebreak

import (
	"fmt"
	"strings"
)

// Dump renders lines as a plain-text breakpoint report: one row per line
// giving its item range, adjustment ratio, and fitness class. It has no
// rendering backend and no layout of its own — it exists purely to let a
// caller inspect the chosen breaks without depending on anything that can
// draw glyphs.
func Dump(lines []Line) string {
	var b strings.Builder
	for i, ln := range lines {
		fmt.Fprintf(&b, "line %3d: items[%d:%d)  r=%+.3f  fitness=%s\n",
			i+1, ln.Start, ln.End, ln.Ratio, fitness(ln.Fitness))
	}
	return b.String()
}

// DumpItems renders the raw item stream, one item per line, for side by
// side comparison against a Dump of the chosen breakpoints.
func DumpItems(items []Item) string {
	var b strings.Builder
	for i, it := range items {
		switch it.Kind {
		case KindBox:
			fmt.Fprintf(&b, "%4d  box     w=%.2f\n", i, it.Width)
		case KindGlue:
			fmt.Fprintf(&b, "%4d  glue    w=%.2f y=%.2f z=%.2f\n", i, it.Width, it.Stretch, it.Shrink)
		case KindPenalty:
			fmt.Fprintf(&b, "%4d  penalty w=%.2f p=%.2f flagged=%v\n", i, it.Width, it.Penalty, it.Flagged)
		}
	}
	return b.String()
}

func (f fitness) String() string {
	switch f {
	case fitnessTight:
		return "tight"
	case fitnessNormal:
		return "normal"
	case fitnessLoose:
		return "loose"
	case fitnessVeryLoose:
		return "very-loose"
	default:
		return "unknown"
	}
}
