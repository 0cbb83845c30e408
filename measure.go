package linebreak

// trailingGlueStart returns the start of the maximal glue run that touches
// the break point b: the run ends at b itself if b is Glue, or at b-1 if b
// is a Penalty directly preceded by glue. A line never renders this
// trailing whitespace — cutting a line at a glue (or just before a
// penalty) discards it the same way after() discards the glue that opens
// the next line — but the run's stretch and shrink remain available to the
// adjustment ratio (see lineStretch/lineShrink): it is exactly the
// elasticity being spent to justify this line before the cut.
func trailingGlueStart(items []Item, a, b int) int {
	end := b - 1
	if items[b].Kind == KindGlue {
		end = b
	}
	for end >= a && items[end].Kind == KindGlue {
		end--
	}
	return end + 1
}

// lineLength returns the actual length L(a,b): the sum of widths over
// items[a:b) up to, but excluding, the glue run trailing into the break,
// plus the width of item b if it is the Penalty the line breaks at (a
// hyphen's width, typically).
func lineLength(items []Item, p *prefixSums, a, b int) float64 {
	l := p.width(a, trailingGlueStart(items, a, b))
	if b < len(items) && items[b].Kind == KindPenalty {
		l += items[b].Width
	}
	return l
}

// lineStretch returns Y(a,b): the sum of glue stretch over items[a:b],
// including the break item's own stretch when b is Glue.
func lineStretch(items []Item, p *prefixSums, a, b int) float64 {
	end := b
	if b < len(items) && items[b].Kind == KindGlue {
		end = b + 1
	}
	return p.stretch(a, end)
}

// lineShrink returns Z(a,b), with the same inclusive treatment as lineStretch.
func lineShrink(items []Item, p *prefixSums, a, b int) float64 {
	end := b
	if b < len(items) && items[b].Kind == KindGlue {
		end = b + 1
	}
	return p.shrinkSum(a, end)
}
