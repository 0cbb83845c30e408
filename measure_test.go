package linebreak

import "testing"

// TestTrailingGlueExclusion checks the convention that a break discards the
// glue run touching it from the line's rendered length, while that same
// run's stretch/shrink still counts toward the adjustment ratio — see S1
// and S3 in the design notes for the worked numbers this mirrors.
func TestTrailingGlueExclusion(t *testing.T) {
	items := []Item{
		Box(10),                        // 0
		Glue(5, 5, 0),                   // 1
		Penalty(0, ForcedBreak, false),  // 2
	}
	p := newPrefixSums(items)

	if got := lineLength(items, p, 0, 2); got != 10 {
		t.Errorf("lineLength(0,2) = %v, want 10 (trailing glue excluded)", got)
	}
	if got := lineStretch(items, p, 0, 2); got != 5 {
		t.Errorf("lineStretch(0,2) = %v, want 5 (trailing glue's stretch still counts)", got)
	}
}

func TestTrailingGlueExclusionAtGlueBreak(t *testing.T) {
	items := []Item{
		Box(40),          // 0
		Glue(10, 5, 2),    // 1 - break occurs here
		Box(40),          // 2
	}
	p := newPrefixSums(items)

	if got := lineLength(items, p, 0, 1); got != 40 {
		t.Errorf("lineLength(0,1) = %v, want 40", got)
	}
	if got := lineStretch(items, p, 0, 1); got != 5 {
		t.Errorf("lineStretch(0,1) = %v, want 5 (breaking glue's own stretch included)", got)
	}
	if got := lineShrink(items, p, 0, 1); got != 2 {
		t.Errorf("lineShrink(0,1) = %v, want 2", got)
	}
}

func TestLineLengthIncludesHyphenWidth(t *testing.T) {
	items := []Item{
		Box(10),
		Penalty(3, 50, true), // hyphen: 3 units wide if chosen
	}
	p := newPrefixSums(items)

	if got := lineLength(items, p, 0, 1); got != 13 {
		t.Errorf("lineLength(0,1) = %v, want 13 (box width plus the hyphen's own width)", got)
	}
}

func TestInteriorGlueStillCounts(t *testing.T) {
	// Interior glue (not touching the break) must still contribute its
	// width normally; only the run immediately touching b is excluded.
	items := []Item{
		Box(20),
		Glue(5, 3, 1),
		Box(30),
		Glue(0, 0, 0),
		Penalty(0, ForcedBreak, false),
	}
	p := newPrefixSums(items)

	if got := lineLength(items, p, 0, 4); got != 55 {
		t.Errorf("lineLength(0,4) = %v, want 55", got)
	}
}
