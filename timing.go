package ccm

const (
	// The ARM PLL doubles the crystal frequency before applying its loop
	// divider, so each divider step is worth 12MHz.
	halfOscFreq = OSC_FREQ / 2

	// Minimum stable ARM PLL output. Targets below this push division
	// downstream instead of slowing the PLL.
	minPLLFreq = 648000000

	// Ceiling for the IPG (peripheral bus) clock.
	maxIPGFreq = 150000000
)

// timing is a consistent set of ARM clock divider and multiplier values.
// Computed fresh for every retiming request and never mutated.
type timing struct {
	// ARM PLL loop divider, range [54,108]. Fout = 12MHz * pllDivSel.
	pllDivSel uint32
	// CACRR[ARM_PODF] divider between the PLL and the pre-peripheral mux.
	// Off-by-one: subtract 1 before writing the field.
	divARM uint32
	// CBCDR[AHB_PODF] divider feeding the ARM core clock. Off-by-one.
	divAHB uint32
	// CBCDR[IPG_PODF] divider from AHB to the IPG clock. Off-by-one.
	divIPG uint32
	// The ARM clock frequency these values produce.
	armHz uint32
}

func computeARMHz(divARM, divAHB, pllDivSel uint32) uint32 {
	return pllDivSel * halfOscFreq / divARM / divAHB
}

// targetTiming returns the timing that best approximates the requested ARM
// clock frequency. It is total: unreachable targets clamp to the nearest
// achievable frequency and never fail.
func targetTiming(armHz uint32) timing {
	divARM, divAHB := uint32(1), uint32(1)
	for uint64(armHz)*uint64(divARM)*uint64(divAHB) < minPLLFreq {
		if divARM < 8 {
			divARM++
		} else if divAHB < 5 {
			divAHB++
			divARM = 1
		} else {
			break
		}
	}

	// Round half up. The 64-bit product keeps targets near the top of the
	// u32 range from wrapping before the clamp takes hold.
	pllDivSel := (uint64(armHz)*uint64(divARM)*uint64(divAHB) + halfOscFreq/2) / halfOscFreq
	if pllDivSel > 108 {
		pllDivSel = 108
	}
	if pllDivSel < 54 {
		pllDivSel = 54
	}

	hz := computeARMHz(divARM, divAHB, uint32(pllDivSel))

	divIPG := (hz + maxIPGFreq - 1) / maxIPGFreq
	if divIPG > 4 {
		divIPG = 4
	}

	return timing{
		pllDivSel: uint32(pllDivSel),
		divARM:    divARM,
		divAHB:    divAHB,
		divIPG:    divIPG,
		armHz:     hz,
	}
}

// ipgHz returns the IPG clock frequency described by this timing.
func (t timing) ipgHz() uint32 {
	return t.armHz / t.divIPG
}

// sub1 converts a divider value to its off-by-one register encoding.
func sub1(v uint32) uint32 {
	if v == 0 {
		return 0
	}
	return v - 1
}
