package ccm

// ARM clock retiming.
//
// The AHB clock root may only change its divider or source while the CPU
// executes from a glitch-free alternate source, and the ARM PLL must be
// stopped to change its loop divider. SetFrequencyARM therefore:
//
//  1. switches AHB_CLK_ROOT onto the 24MHz oscillator via peripheral
//     clock 2 (glitchless muxes, handshake after each switch),
//  2. restarts the PLL with the new loop divider and writes the new ARM,
//     AHB and IPG dividers,
//  3. switches AHB_CLK_ROOT back to the PLL1 path.
//
// Reference manual chapter 14: System Clocks, CCM Internal Clock Generation.

const pllLock = 1 << 31

var (
	pllDivSelField  = newField(0, 0x7F)
	pllPowerdownBit = newField(12, 0x1)
	pllEnableBit    = newField(13, 0x1)
	armPODF         = newField(0, 0x7)
	ipgPODF         = newField(8, 0x3)
	ahbPODF         = newField(10, 0x7)
	periphClkSel    = newField(25, 0x1)
	periphClk2PODF  = newField(27, 0x7)
	periphClk2Sel   = newField(12, 0x3)
	prePeriphClkSel = newField(18, 0x3)
)

// waitHandshake spins until every pending divider and mux switch has been
// acknowledged. There is no timeout: a stuck handshake has no safe recovery,
// so hanging here beats running on a half-switched clock tree.
func (c *CCM) waitHandshake() {
	for c.mem.Read32(CCM_CDHIPR) != 0 {
	}
}

// onAHBOscillator runs f while AHB_CLK_ROOT is powered by the crystal
// oscillator. When it returns, AHB_CLK_ROOT is back on the PRE_PERIPH_CLK
// source, selected to PLL1.
func (c *CCM) onAHBOscillator(f func()) {
	periphClk2PODF.modify(c.mem, CCM_CBCDR, 0) // divide by 1
	periphClk2Sel.modify(c.mem, CCM_CBCMR, 1)  // derive from oscillator
	c.waitHandshake()

	// Move the main peripheral clock onto PERIPH_CLK2.
	periphClkSel.modify(c.mem, CCM_CBCDR, 1)
	c.waitHandshake()

	f()

	prePeriphClkSel.modify(c.mem, CCM_CBCMR, 3) // select PLL1
	periphClkSel.modify(c.mem, CCM_CBCDR, 0)
	c.waitHandshake()
}

// restartPLLARM powers the ARM PLL down, programs the new loop divider,
// re-enables it and spins until it reports lock.
func (c *CCM) restartPLLARM(divSel uint32) {
	// Clear all bits except POWERDOWN, then clear POWERDOWN with the
	// divider write.
	pllPowerdownBit.writeZero(c.mem, CCM_ANALOG_PLL_ARM, 1)
	pllDivSelField.writeZero(c.mem, CCM_ANALOG_PLL_ARM, divSel)
	pllEnableBit.modify(c.mem, CCM_ANALOG_PLL_ARM, 1)

	for c.mem.Read32(CCM_ANALOG_PLL_ARM)&pllLock == 0 {
	}
}

// setTimings commits the divider values. The IPG divider is downstream of
// the AHB divider and needs no handshake.
func (c *CCM) setTimings(t timing) {
	armPODF.modify(c.mem, CCM_CACRR, sub1(t.divARM))
	c.waitHandshake()

	ahbPODF.modify(c.mem, CCM_CBCDR, sub1(t.divAHB))
	c.waitHandshake()

	ipgPODF.modify(c.mem, CCM_CBCDR, sub1(t.divIPG))
}

// readTimings reconstructs the committed timing from the registers. The
// result is only meaningful while the ARM clock runs on PLL1.
func (c *CCM) readTimings() timing {
	divARM := armPODF.read(c.mem, CCM_CACRR) + 1
	divAHB := ahbPODF.read(c.mem, CCM_CBCDR) + 1
	divIPG := ipgPODF.read(c.mem, CCM_CBCDR) + 1
	pllDivSel := pllDivSelField.read(c.mem, CCM_ANALOG_PLL_ARM)
	return timing{
		pllDivSel: pllDivSel,
		divARM:    divARM,
		divAHB:    divAHB,
		divIPG:    divIPG,
		armHz:     computeARMHz(divARM, divAHB, pllDivSel),
	}
}

// SetFrequencyARM retimes the ARM core clock to approximate hz, returning
// the achieved ARM and IPG clock frequencies. Unreachable targets clamp to
// the nearest achievable frequency; the call cannot fail.
//
// While the switch is in progress the CPU runs from the 24MHz oscillator,
// so instructions execute much slower than usual. Consider retiming early in
// startup, or inside a critical section. Peripherals driven by the IPG clock
// are not told about the new frequency; updating them is the caller's job.
//
// The returned frequencies are read back from the committed register state,
// so they always agree with a subsequent FrequencyARM call.
func (c *CCM) SetFrequencyARM(hz uint32) (armHz, ipgHz uint32) {
	var applied timing
	c.onAHBOscillator(func() {
		t := targetTiming(hz)
		c.restartPLLARM(t.pllDivSel)
		c.setTimings(t)
		applied = c.readTimings()
	})
	return applied.armHz, applied.ipgHz()
}

// FrequencyARM returns the current ARM and IPG clock frequencies.
//
// It assumes the ARM clock runs on PLL1. If another agent rerouted the clock
// tree through a different path, the returned values are meaningless.
func (c *CCM) FrequencyARM() (armHz, ipgHz uint32) {
	t := c.readTimings()
	return t.armHz, t.ipgHz()
}
