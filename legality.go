package linebreak

// isLegalBreak reports whether a break is permitted at items[i]: either a
// penalty that does not forbid breaking, or a glue immediately preceded by a
// box (glue at the very start of the list, or preceded by glue/penalty, is
// not a legal break — it is interior whitespace, not a word boundary).
func isLegalBreak(items []Item, i int) bool {
	switch items[i].Kind {
	case KindPenalty:
		return items[i].Penalty < NoBreak
	case KindGlue:
		return i > 0 && items[i-1].Kind == KindBox
	default:
		return false
	}
}

// isForcedBreak reports whether items[i] is a penalty that mandates a break.
func isForcedBreak(items []Item, i int) bool {
	return items[i].Kind == KindPenalty && items[i].Penalty == ForcedBreak
}

// after returns the index of the first item of the line following a break
// at a: the smallest j > a such that items[j] is a box, a forced penalty, or
// j == len(items). Glue and non-forced penalties immediately following a
// break belong to the inter-line whitespace and are skipped.
func after(items []Item, a int) int {
	n := len(items)
	for j := a + 1; j < n; j++ {
		if items[j].Kind == KindBox || isForcedBreak(items, j) {
			return j
		}
	}
	return n
}
