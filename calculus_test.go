package linebreak

import (
	"math"
	"testing"
)

func TestBadness(t *testing.T) {
	tests := []struct {
		r    float64
		want float64
	}{
		{0, 0},
		{1, 100},
		{-1, 100},
		{-1.5, math.Inf(1)},
		{0.5, 100 * 0.125},
	}
	for _, tt := range tests {
		if got := badness(tt.r); got != tt.want {
			t.Errorf("badness(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    float64
		want fitness
	}{
		{-2, fitnessTight},
		{-0.5, fitnessNormal},
		{0, fitnessNormal},
		{0.5, fitnessLoose},
		{0.999, fitnessLoose},
		{1.0, fitnessVeryLoose},
		{math.Inf(1), fitnessVeryLoose},
	}
	for _, tt := range tests {
		if got := classify(tt.r); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestFitnessJump(t *testing.T) {
	if fitnessJump(fitnessNormal, fitnessLoose) {
		t.Errorf("adjacent classes should not count as a jump")
	}
	if !fitnessJump(fitnessTight, fitnessVeryLoose) {
		t.Errorf("tight vs very-loose should count as a jump")
	}
}

// TestDemeritsFlaggedAdjacency is S4: two consecutive flagged (hyphen-like)
// breaks must cost exactly Alpha more than the same line pair without the
// flag, all else equal.
func TestDemeritsFlaggedAdjacency(t *testing.T) {
	opts := Options{}.withDefaults()

	plain := demerits(opts, 0, 0, 0, fitnessNormal, fitnessNormal, false, false)
	flaggedBoth := demerits(opts, 0, 0, 0, fitnessNormal, fitnessNormal, true, true)
	oneFlagged := demerits(opts, 0, 0, 0, fitnessNormal, fitnessNormal, true, false)

	if diff := flaggedBoth - plain; diff != opts.Alpha {
		t.Errorf("flagged-flagged adjacency added %v demerits, want %v", diff, opts.Alpha)
	}
	if oneFlagged != plain {
		t.Errorf("a single flagged break must not incur Alpha: got %v, want %v", oneFlagged, plain)
	}
}

// TestDemeritsFitnessJump is S5: a fitness-class jump of more than one band
// costs exactly Gamma more, independent of badness or line penalty.
func TestDemeritsFitnessJump(t *testing.T) {
	opts := Options{}.withDefaults()

	noJump := demerits(opts, 0, 0, 0, fitnessNormal, fitnessLoose, false, false)
	jump := demerits(opts, 0, 0, 0, fitnessTight, fitnessVeryLoose, false, false)

	if diff := jump - noJump; diff != opts.Gamma {
		t.Errorf("fitness jump added %v demerits relative to baseline, want exactly Gamma=%v more structurally", diff, opts.Gamma)
	}
}

func TestDemeritsParentTotalAccumulates(t *testing.T) {
	opts := Options{}.withDefaults()

	base := demerits(opts, 0, 0, 0, fitnessNormal, fitnessNormal, false, false)
	withParent := demerits(opts, 0, 0, 500, fitnessNormal, fitnessNormal, false, false)

	if withParent-base != 500 {
		t.Errorf("demerits must add parentTotal verbatim: got diff %v, want 500", withParent-base)
	}
}

func TestDemeritsForcedPenaltyDoesNotSubtractInfinity(t *testing.T) {
	opts := Options{}.withDefaults()
	d := demerits(opts, 0, ForcedBreak, 0, fitnessNormal, fitnessNormal, false, false)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Errorf("a forced break at r=0 should produce a finite demerit value, got %v", d)
	}
}

func TestAdjustmentRatioExactFit(t *testing.T) {
	items := []Item{Box(20), Glue(0, 0, 0), Penalty(0, ForcedBreak, false)}
	p := newPrefixSums(items)
	if r := adjustmentRatio(items, p, 0, 2, 20); r != 0 {
		t.Errorf("adjustmentRatio = %v, want 0 for an exact fit", r)
	}
}
