package ccm

// Peripheral is a peripheral instance with a clock gate. The set of
// implementations is closed: these are the 1060-family instances and their
// CCGR locations, straight from the reference manual's CCGR tables.
type Peripheral interface {
	location() (gateLocation, bool)
}

// ADC instances.
type ADC int

const (
	ADC1 ADC = 1 + iota
	ADC2
)

func (a ADC) location() (gateLocation, bool) {
	switch a {
	case ADC1:
		return gateLocation{ccgr: 1, gates: []uint32{8}}, true
	case ADC2:
		return gateLocation{ccgr: 1, gates: []uint32{4}}, true
	}
	return gateLocation{}, false
}

// PWM instances.
type PWM int

const (
	PWM1 PWM = 1 + iota
	PWM2
	PWM3
	PWM4
)

func (p PWM) location() (gateLocation, bool) {
	if p < PWM1 || p > PWM4 {
		return gateLocation{}, false
	}
	return gateLocation{ccgr: 4, gates: []uint32{8 + uint32(p-PWM1)}}, true
}

// DCDC is the DCDC buck converter.
type DCDC struct{}

func (DCDC) location() (gateLocation, bool) {
	return gateLocation{ccgr: 6, gates: []uint32{3}}, true
}

// DMA is the DMA controller.
type DMA struct{}

func (DMA) location() (gateLocation, bool) {
	return gateLocation{ccgr: 5, gates: []uint32{3}}, true
}

// GPT instances. Each GPT has a bus gate and a serial gate; the driver
// switches them together.
type GPT int

const (
	GPT1 GPT = 1 + iota
	GPT2
)

func (g GPT) location() (gateLocation, bool) {
	switch g {
	case GPT1:
		return gateLocation{ccgr: 1, gates: []uint32{10, 11}}, true
	case GPT2:
		return gateLocation{ccgr: 0, gates: []uint32{12, 13}}, true
	}
	return gateLocation{}, false
}

// PIT is the periodic interrupt timer.
type PIT struct{}

func (PIT) location() (gateLocation, bool) {
	return gateLocation{ccgr: 1, gates: []uint32{6}}, true
}

// I2C instances.
type I2C int

const (
	I2C1 I2C = 1 + iota
	I2C2
	I2C3
	I2C4
)

func (i I2C) location() (gateLocation, bool) {
	switch i {
	case I2C1:
		return gateLocation{ccgr: 2, gates: []uint32{3}}, true
	case I2C2:
		return gateLocation{ccgr: 2, gates: []uint32{4}}, true
	case I2C3:
		return gateLocation{ccgr: 2, gates: []uint32{5}}, true
	case I2C4:
		return gateLocation{ccgr: 6, gates: []uint32{12}}, true
	}
	return gateLocation{}, false
}

// UART instances.
type UART int

const (
	UART1 UART = 1 + iota
	UART2
	UART3
	UART4
	UART5
	UART6
	UART7
	UART8
)

func (u UART) location() (gateLocation, bool) {
	switch u {
	case UART1:
		return gateLocation{ccgr: 5, gates: []uint32{12}}, true
	case UART2:
		return gateLocation{ccgr: 0, gates: []uint32{14}}, true
	case UART3:
		return gateLocation{ccgr: 0, gates: []uint32{6}}, true
	case UART4:
		return gateLocation{ccgr: 1, gates: []uint32{12}}, true
	case UART5:
		return gateLocation{ccgr: 3, gates: []uint32{1}}, true
	case UART6:
		return gateLocation{ccgr: 3, gates: []uint32{3}}, true
	case UART7:
		return gateLocation{ccgr: 5, gates: []uint32{13}}, true
	case UART8:
		return gateLocation{ccgr: 6, gates: []uint32{7}}, true
	}
	return gateLocation{}, false
}

// SPI instances.
type SPI int

const (
	SPI1 SPI = 1 + iota
	SPI2
	SPI3
	SPI4
)

func (s SPI) location() (gateLocation, bool) {
	if s < SPI1 || s > SPI4 {
		return gateLocation{}, false
	}
	return gateLocation{ccgr: 1, gates: []uint32{uint32(s - SPI1)}}, true
}
