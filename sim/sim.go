// Package sim is an in-memory stand-in for the CCM register space, for host
// tests and dry runs. It models just enough hardware behavior for the driver
// to run to completion: divider/mux handshakes acknowledge instantly and the
// ARM PLL locks as soon as it is enabled. Everything else is plain storage.
package sim

// Chip behavior the model needs to know about.
const (
	pllARMAddr = 0x400D8000
	cdhiprAddr = 0x400FC048

	pllPowerdown = 1 << 12
	pllEnable    = 1 << 13
	pllLock      = 1 << 31
)

// Reset values for the registers the driver reads before writing, roughly
// the chip's boot state: 600MHz ARM clock (PLL at 1.2GHz, ARM divider 2),
// IPG divider 4.
var resetValues = map[uint32]uint32{
	pllARMAddr: pllEnable | 100, // DIV_SEL 100
	0x400FC010: 0x1,             // CACRR: ARM_PODF 1 (divide by 2)
	0x400FC014: 0x3 << 8,        // CBCDR: IPG_PODF 3 (divide by 4)
	0x400FC018: 0x3 << 18,       // CBCMR: PRE_PERIPH_CLK_SEL on PLL1
}

// Space is the simulated register file. Not safe for concurrent use, same as
// the hardware it stands in for.
type Space struct {
	regs   map[uint32]uint32
	reads  int
	writes int
}

func New() *Space {
	s := &Space{regs: make(map[uint32]uint32)}
	for addr, v := range resetValues {
		s.regs[addr] = v
	}
	return s
}

func (s *Space) Read32(addr uint32) uint32 {
	s.reads++
	switch addr {
	case cdhiprAddr:
		// All handshakes complete instantly.
		return 0
	case pllARMAddr:
		v := s.regs[addr]
		if v&pllEnable != 0 && v&pllPowerdown == 0 {
			v |= pllLock
		}
		return v
	}
	return s.regs[addr]
}

func (s *Space) Write32(addr uint32, v uint32) {
	s.writes++
	s.regs[addr] = v
}

// Reads returns the number of register reads so far.
func (s *Space) Reads() int { return s.reads }

// Writes returns the number of register writes so far.
func (s *Space) Writes() int { return s.writes }
