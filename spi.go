package ccm

// The SPI clock root runs from PLL2 (528MHz).

// DefaultSPIClockDivider gives a 105.6MHz SPI root.
const DefaultSPIClockDivider = 5

var spiClkRoot = rootReg{
	div:  newField(26, 0x7),
	sel:  newField(4, 0x3),
	addr: CCM_CBCMR,
}

// ConfigureSPIClock programs the SPI clock root. The divider is clamped to
// [1, 8]. All SPI clock gates are switched off first; re-enable them with
// SetClockGate.
func (c *CCM) ConfigureSPIClock(divider uint32) {
	c.SetClockGate(SPI1, ClockGateOff)
	c.SetClockGate(SPI2, ClockGateOff)
	c.SetClockGate(SPI3, ClockGateOff)
	c.SetClockGate(SPI4, ClockGateOff)

	const pll2 = 2
	spiClkRoot.set(c.mem, sub1(clampDivider(divider, 8)), pll2)
}

// SPIClockFrequency returns the SPI clock root frequency.
func (c *CCM) SPIClockFrequency() uint32 {
	return PLL2_FREQ / (spiClkRoot.divider(c.mem) + 1)
}
