package ccm

// The I2C clock root runs from the crystal oscillator.

// DefaultI2CClockDivider gives an 8MHz root, fast enough for both 100KHz
// and 400KHz bus speeds.
const DefaultI2CClockDivider = 3

var i2cClkRoot = rootReg{
	div:  newField(19, 0x3F),
	sel:  newField(18, 0x1),
	addr: CCM_CSCDR2,
}

// ConfigureI2CClock programs the I2C clock root. The divider is clamped to
// [1, 64]. All I2C clock gates are switched off first; re-enable them with
// SetClockGate.
func (c *CCM) ConfigureI2CClock(divider uint32) {
	c.SetClockGate(I2C1, ClockGateOff)
	c.SetClockGate(I2C2, ClockGateOff)
	c.SetClockGate(I2C3, ClockGateOff)
	c.SetClockGate(I2C4, ClockGateOff)

	const oscillator = 1
	i2cClkRoot.set(c.mem, sub1(clampDivider(divider, 64)), oscillator)
}

// I2CClockFrequency returns the I2C clock root frequency.
func (c *CCM) I2CClockFrequency() uint32 {
	return OSC_FREQ / (i2cClkRoot.divider(c.mem) + 1)
}
