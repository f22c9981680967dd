package ccm

// The UART clock root runs from the crystal oscillator.

// DefaultUARTClockDivider keeps the full 24MHz at the UART root.
const DefaultUARTClockDivider = 1

var uartClkRoot = rootReg{
	div: newField(0, 0x3F),
	// The select field is one bit wide on this chip; the adjacent bit is
	// reserved and kept cleared.
	sel:  newField(6, 0x3),
	addr: CCM_CSCDR1,
}

// ConfigureUARTClock programs the UART clock root. The divider is clamped to
// [1, 64]. All UART clock gates are switched off first; re-enable them with
// SetClockGate.
func (c *CCM) ConfigureUARTClock(divider uint32) {
	c.SetClockGate(UART1, ClockGateOff)
	c.SetClockGate(UART2, ClockGateOff)
	c.SetClockGate(UART3, ClockGateOff)
	c.SetClockGate(UART4, ClockGateOff)
	c.SetClockGate(UART5, ClockGateOff)
	c.SetClockGate(UART6, ClockGateOff)
	c.SetClockGate(UART7, ClockGateOff)
	c.SetClockGate(UART8, ClockGateOff)

	const oscillator = 1
	uartClkRoot.set(c.mem, sub1(clampDivider(divider, 64)), oscillator)
}

// UARTClockFrequency returns the UART clock root frequency.
func (c *CCM) UARTClockFrequency() uint32 {
	return OSC_FREQ / (uartClkRoot.divider(c.mem) + 1)
}
