// Package ccm drives the Clock Control Module (CCM) of i.MX RT 1060-family
// processors. It retimes the ARM core clock via the ARM PLL, controls
// per-peripheral clock gates, and configures the I2C, UART, SPI and periodic
// timer clock roots.
//
// All register traffic goes through a Space, so the same driver runs against
// real hardware (see the mmio package) or an in-memory register file (see the
// sim package).
//
// The CCM registers are global mutable state with no bus-level atomicity for
// read-modify-write sequences. Construct exactly one CCM per register space
// and never call its mutating methods from two execution contexts at once.
// The driver performs no internal locking; it trusts this single-writer
// discipline.
package ccm

// Space is a 32-bit register space. Addresses are physical addresses on the
// reference platform, see the CCM_* constants.
type Space interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// CCM register addresses. The field layouts within these registers are part
// of the hardware contract and must be bit-exact; see the i.MX RT 1060
// reference manual, chapter 14 (CCM).
const (
	CCM_ANALOG_PLL_ARM = 0x400D8000
	CCM_CACRR          = 0x400FC010
	CCM_CBCDR          = 0x400FC014
	CCM_CBCMR          = 0x400FC018
	CCM_CSCMR1         = 0x400FC01C
	CCM_CSCDR1         = 0x400FC024
	CCM_CSCDR2         = 0x400FC038
	CCM_CDHIPR         = 0x400FC048
	CCM_CCGR_BASE      = 0x400FC068
)

const (
	OSC_FREQ  = 24000000  // crystal frequency
	PLL2_FREQ = 528000000 // system PLL, input to the SPI clock root
)

// CCM is the handle to the clock control module. At most one CCM may exist
// per register space; callers that need the single-writer rule enforced
// should do so at construction time by never handing out a second handle.
type CCM struct {
	mem Space
}

// New returns the CCM handle backed by mem.
func New(mem Space) *CCM {
	return &CCM{mem: mem}
}
