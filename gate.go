package ccm

// ClockGate is the tri-state setting of a peripheral clock gate. Each gate
// is a two-bit field in one of the CCGR registers.
type ClockGate uint32

const (
	// ClockGateOff turns the clock off in all modes.
	ClockGateOff ClockGate = 0b00
	// ClockGateRunOnly keeps the clock on in run mode, off in wait and
	// stop modes.
	ClockGateRunOnly ClockGate = 0b01
	// ClockGateOn keeps the clock on in all modes except stop mode.
	ClockGateOn ClockGate = 0b11
)

func (g ClockGate) String() string {
	switch g {
	case ClockGateOff:
		return "off"
	case ClockGateRunOnly:
		return "run-only"
	case ClockGateOn:
		return "on"
	}
	return "reserved"
}

// gateLocation names a clock gate: the CCGR register index and the two-bit
// field indices within it. Peripherals with separate serial and bus gates
// list more than one field.
type gateLocation struct {
	ccgr  uint32
	gates []uint32
}

func (l gateLocation) address() uint32 {
	return CCM_CCGR_BASE + 4*l.ccgr
}

// SetClockGate sets the clock gate for a peripheral instance. Invalid
// instances are ignored. Setting a gate to its current value rewrites the
// identical bit pattern, so repeated calls are harmless.
func (c *CCM) SetClockGate(p Peripheral, gate ClockGate) {
	loc, ok := p.location()
	if !ok {
		return
	}
	addr := loc.address()
	reg := c.mem.Read32(addr)
	for _, g := range loc.gates {
		shift := g * 2
		reg &^= 0b11 << shift
		reg |= (uint32(gate) & 0b11) << shift
	}
	c.mem.Write32(addr, reg)
}

// ClockGate returns the gate setting for a peripheral instance, or false if
// the instance is invalid. Peripherals with several gate fields report the
// first; the driver always programs them together.
func (c *CCM) ClockGate(p Peripheral) (ClockGate, bool) {
	loc, ok := p.location()
	if !ok {
		return ClockGateOff, false
	}
	reg := c.mem.Read32(loc.address())
	shift := loc.gates[0] * 2
	return ClockGate((reg >> shift) & 0b11), true
}
