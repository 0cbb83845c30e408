package linebreak

import "math"

// Break finds the sequence of line breaks for items that minimizes total
// demerits at the given targetWidth, per §4. items must be non-empty, must
// begin with a Box (a paragraph cannot open mid-word), and must end with a
// Penalty that forces a break (the caller is responsible for appending one,
// typically linebreak.Penalty(0, linebreak.ForcedBreak, false)).
//
// Passing targetWidth = math.Inf(1) degenerates the search to "one line per
// forced break": no line is ever tight enough to need stretching or
// shrinking, so every line gets adjustment ratio 0 and the active-list
// search is skipped entirely.
func Break(items []Item, targetWidth float64, opts Options) ([]Line, error) {
	if err := validate(items); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	if math.IsInf(targetWidth, 1) {
		return breakForcedOnly(items), nil
	}

	p := newPrefixSums(items)
	arena, best, err := search(items, p, targetWidth, opts)
	if err != nil {
		return nil, err
	}
	return reconstruct(arena, best), nil
}

func validate(items []Item) error {
	if len(items) == 0 {
		return newError(CodeInvalidInput, "items is empty")
	}
	if items[0].Kind != KindBox {
		return newError(CodeInvalidInput, "items must begin with a Box, got %s", items[0].Kind)
	}
	last := items[len(items)-1]
	if last.Kind != KindPenalty || last.Penalty != ForcedBreak {
		return newError(CodeInvalidInput, "items must end with a forced Penalty")
	}
	return nil
}

// breakForcedOnly produces one line per forced break, for the
// math.Inf(1)-width degenerate case: every line has ratio 0 since no
// stretching or shrinking is ever required to "fill" an infinitely wide
// line.
func breakForcedOnly(items []Item) []Line {
	var lines []Line
	start := 0
	for i := range items {
		if !isForcedBreak(items, i) {
			continue
		}
		lines = append(lines, Line{Start: start, End: i, Ratio: 0, Fitness: int(fitnessNormal)})
		start = after(items, i)
	}
	return lines
}
