package linebreak

// Line describes one line of the finished paragraph: the half-open item
// range [Start, End) it covers, and the adjustment ratio r for its glue: a
// caller rendering the paragraph gives each glue its natural width plus
// r·stretch (r ≥ 0) or r·shrink (r < 0). r is computed from a length that
// leaves out the glue run trailing into the break but from stretch and
// shrink that include it (see lineLength and lineStretch), so when glue
// touches the break, applying r to the glue inside [Start, End) does not
// give exactly the target width.
type Line struct {
	Start   int
	End     int
	Ratio   float64
	Fitness int
}

// reconstruct walks the winning node back through its previous links to the
// sentinel and returns the lines in reading order, per §4.9.
func reconstruct(arena *nodeArena, best int) []Line {
	var lines []Line
	for idx := best; arena.get(idx).previous != -1; idx = arena.get(idx).previous {
		n := arena.get(idx)
		parent := arena.get(n.previous)
		lines = append(lines, Line{
			Start:   parent.after,
			End:     n.position,
			Ratio:   n.adjratio,
			Fitness: int(n.fitness),
		})
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines
}
