package ccm

import (
	"testing"

	"github.com/imx-rt/ccm/sim"
)

func TestPerClockDividerBounds(t *testing.T) {
	tests := []struct {
		divider uint32
		want    uint32
	}{
		{0, OSC_FREQ},
		{1, OSC_FREQ},
		{7, OSC_FREQ / 7},
		{65, OSC_FREQ / 64},
	}
	for _, tc := range tests {
		c := New(sim.New())
		c.ConfigurePerClock(PerClockSourceOscillator, tc.divider)
		if got := c.PerClockFrequency(); got != tc.want {
			t.Errorf("divider %d: frequency incorrect, got: %d, want: %d", tc.divider, got, tc.want)
		}
	}
}

func TestPerClockDefaultDivider(t *testing.T) {
	c := New(sim.New())
	c.ConfigurePerClock(PerClockSourceOscillator, DefaultPerClockDivider)
	if got := c.PerClockFrequency(); got != 1000000 {
		t.Errorf("default periodic clock incorrect, got: %d, want: 1000000", got)
	}
}

func TestPerClockFromIPG(t *testing.T) {
	c := New(sim.New())
	c.SetFrequencyARM(600000000) // IPG at 150MHz
	c.ConfigurePerClock(PerClockSourceIPG, 2)
	if got := c.PerClockSelection(); got != PerClockSourceIPG {
		t.Errorf("selection incorrect, got: %v, want: %v", got, PerClockSourceIPG)
	}
	if got := c.PerClockFrequency(); got != 75000000 {
		t.Errorf("IPG-sourced frequency incorrect, got: %d, want: 75000000", got)
	}
}

func TestPerClockGatesOffTimers(t *testing.T) {
	c := New(sim.New())
	c.SetClockGate(GPT1, ClockGateOn)
	c.SetClockGate(PIT{}, ClockGateOn)
	c.ConfigurePerClock(PerClockSourceOscillator, DefaultPerClockDivider)
	for _, p := range []Peripheral{GPT1, GPT2, PIT{}} {
		if got, _ := c.ClockGate(p); got != ClockGateOff {
			t.Errorf("timer gate not off after configure, got: %v", got)
		}
	}
}
