package ccm

import (
	"math"
	"testing"
)

func TestTargetTimingExact(t *testing.T) {
	tm := targetTiming(600000000)
	if tm.armHz != 600000000 {
		t.Errorf("ARM frequency incorrect, got: %d, want: 600000000", tm.armHz)
	}
	if tm.ipgHz() != 150000000 {
		t.Errorf("IPG frequency incorrect, got: %d, want: 150000000", tm.ipgHz())
	}
	if tm.pllDivSel < 54 || tm.pllDivSel > 108 {
		t.Errorf("PLL divider out of range, got: %d, want: [54,108]", tm.pllDivSel)
	}
}

func TestTargetTimingSnapsToAchievable(t *testing.T) {
	// 100Hz above an exactly achievable target must round back to it, not
	// produce a wildly different divider combination.
	tm := targetTiming(600000100)
	if tm.armHz != 600000000 {
		t.Errorf("ARM frequency incorrect, got: %d, want: 600000000", tm.armHz)
	}
}

func TestTargetTimingDeterministic(t *testing.T) {
	for _, hz := range []uint32{0, 1, 24000000, 396000000, 600000000, math.MaxUint32} {
		a := targetTiming(hz)
		b := targetTiming(hz)
		if a != b {
			t.Errorf("timing for %d not deterministic, got: %+v and %+v", hz, a, b)
		}
	}
}

func TestTargetTimingRanges(t *testing.T) {
	targets := []uint32{
		0, 1, 100, 9600, 1000000, 16200000, 24000000, 100000000,
		150000001, 216000000, 300000000, 396000000, 450000000,
		528000000, 600000000, 600000100, 648000000, 912000000,
		1296000000, 2000000000, math.MaxUint32,
	}
	for _, hz := range targets {
		tm := targetTiming(hz)
		if tm.pllDivSel < 54 || tm.pllDivSel > 108 {
			t.Errorf("target %d: PLL divider out of range, got: %d", hz, tm.pllDivSel)
		}
		if tm.divARM < 1 || tm.divARM > 8 {
			t.Errorf("target %d: ARM divider out of range, got: %d", hz, tm.divARM)
		}
		if tm.divAHB < 1 || tm.divAHB > 5 {
			t.Errorf("target %d: AHB divider out of range, got: %d", hz, tm.divAHB)
		}
		if tm.divIPG < 1 || tm.divIPG > 4 {
			t.Errorf("target %d: IPG divider out of range, got: %d", hz, tm.divIPG)
		}
		want := computeARMHz(tm.divARM, tm.divAHB, tm.pllDivSel)
		if tm.armHz != want {
			t.Errorf("target %d: inconsistent ARM frequency, got: %d, want: %d", hz, tm.armHz, want)
		}
	}
}

func TestTargetTimingClampsExtremes(t *testing.T) {
	low := targetTiming(0)
	if low.pllDivSel != 54 {
		t.Errorf("PLL divider for target 0 incorrect, got: %d, want: 54", low.pllDivSel)
	}
	if low.divARM != 8 || low.divAHB != 5 {
		t.Errorf("dividers for target 0 not at maximum, got: %d/%d, want: 8/5", low.divARM, low.divAHB)
	}

	high := targetTiming(math.MaxUint32)
	if high.pllDivSel != 108 {
		t.Errorf("PLL divider for max target incorrect, got: %d, want: 108", high.pllDivSel)
	}
	if high.divARM != 1 || high.divAHB != 1 {
		t.Errorf("dividers for max target not at minimum, got: %d/%d, want: 1/1", high.divARM, high.divAHB)
	}
	if high.armHz != 108*halfOscFreq {
		t.Errorf("max ARM frequency incorrect, got: %d, want: %d", high.armHz, 108*halfOscFreq)
	}
}

func TestIPGDividerBoundary(t *testing.T) {
	// 450MHz sits exactly on 3*150MHz; 456MHz is just above it and must
	// take one more divider step, never overshoot.
	at := targetTiming(450000000)
	if at.armHz != 450000000 {
		t.Errorf("ARM frequency incorrect, got: %d, want: 450000000", at.armHz)
	}
	if at.divIPG != 3 {
		t.Errorf("IPG divider at boundary incorrect, got: %d, want: 3", at.divIPG)
	}

	above := targetTiming(456000000)
	if above.armHz != 456000000 {
		t.Errorf("ARM frequency incorrect, got: %d, want: 456000000", above.armHz)
	}
	if above.divIPG != 4 {
		t.Errorf("IPG divider above boundary incorrect, got: %d, want: 4", above.divIPG)
	}
}
