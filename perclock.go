package ccm

// The periodic clock root feeds the GPT and PIT timers.

// PerClockSource selects the input of the periodic clock root.
type PerClockSource int

const (
	// PerClockSourceIPG derives the periodic clock from the IPG clock.
	// The IPG frequency must have been configured elsewhere.
	PerClockSourceIPG PerClockSource = iota
	// PerClockSourceOscillator derives it from the crystal oscillator.
	PerClockSourceOscillator
)

// DefaultPerClockDivider yields a 1MHz periodic clock from the oscillator.
const DefaultPerClockDivider = 24

var perClkRoot = rootReg{
	div:  newField(0, 0x3F),
	sel:  newField(6, 0x1),
	addr: CCM_CSCMR1,
}

// ConfigurePerClock programs the periodic clock root. The divider is clamped
// to [1, 64]. All GPT and PIT clock gates are switched off first; re-enable
// them with SetClockGate once their drivers are ready for the new rate.
func (c *CCM) ConfigurePerClock(source PerClockSource, divider uint32) {
	c.SetClockGate(GPT1, ClockGateOff)
	c.SetClockGate(GPT2, ClockGateOff)
	c.SetClockGate(PIT{}, ClockGateOff)

	sel := uint32(0)
	if source == PerClockSourceOscillator {
		sel = 1
	}
	perClkRoot.set(c.mem, sub1(clampDivider(divider, 64)), sel)
}

// PerClockSelection returns the currently selected periodic clock source.
func (c *CCM) PerClockSelection() PerClockSource {
	if perClkRoot.selection(c.mem) == 1 {
		return PerClockSourceOscillator
	}
	return PerClockSourceIPG
}

// PerClockFrequency returns the periodic clock frequency. When the root runs
// on the IPG clock this reads the ARM timing registers, so the same PLL1
// precondition as FrequencyARM applies.
func (c *CCM) PerClockFrequency() uint32 {
	divider := perClkRoot.divider(c.mem) + 1
	if c.PerClockSelection() == PerClockSourceOscillator {
		return OSC_FREQ / divider
	}
	return c.readTimings().ipgHz() / divider
}
