package linebreak

// prefixSums holds running totals of width, stretch, and shrink so that the
// total of any range [i, j) of items can be had in O(1) instead of rescanning
// the item list on every adjustment-ratio query. Sw[i] is the sum of widths
// over items[0:i]; Sy and Sz are the same but only Glue items contribute
// (box and penalty widths never count toward stretch or shrink).
type prefixSums struct {
	Sw []float64
	Sy []float64
	Sz []float64
}

func newPrefixSums(items []Item) *prefixSums {
	n := len(items)
	p := &prefixSums{
		Sw: make([]float64, n+1),
		Sy: make([]float64, n+1),
		Sz: make([]float64, n+1),
	}
	for i, it := range items {
		p.Sw[i+1] = p.Sw[i] + it.Width
		if it.Kind == KindGlue {
			p.Sy[i+1] = p.Sy[i] + it.Stretch
			p.Sz[i+1] = p.Sz[i] + it.Shrink
		} else {
			p.Sy[i+1] = p.Sy[i]
			p.Sz[i+1] = p.Sz[i]
		}
	}
	return p
}

// width returns the sum of item widths over [i, j).
func (p *prefixSums) width(i, j int) float64 { return p.Sw[j] - p.Sw[i] }

// stretch returns the sum of glue stretch over [i, j).
func (p *prefixSums) stretch(i, j int) float64 { return p.Sy[j] - p.Sy[i] }

// shrinkSum returns the sum of glue shrink over [i, j).
func (p *prefixSums) shrinkSum(i, j int) float64 { return p.Sz[j] - p.Sz[i] }
