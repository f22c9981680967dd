package ccm

// field is a bit-field within a 32-bit CCM register. The mask is stored
// pre-shifted; pass the unshifted mask to newField.
type field struct {
	offset uint32
	mask   uint32
}

func newField(offset, mask uint32) field {
	return field{offset: offset, mask: mask << offset}
}

// read returns the field value from the register at addr.
func (f field) read(mem Space, addr uint32) uint32 {
	return (mem.Read32(addr) & f.mask) >> f.offset
}

// modify clears the field in the register at addr and writes v in its place,
// preserving all other bits.
func (f field) modify(mem Space, addr uint32, v uint32) {
	r := mem.Read32(addr)
	r &^= f.mask
	r |= (v << f.offset) & f.mask
	mem.Write32(addr, r)
}

// writeZero writes v into the field, setting every other bit of the register
// to zero.
func (f field) writeZero(mem Space, addr uint32, v uint32) {
	mem.Write32(addr, (v<<f.offset)&f.mask)
}

// rootReg is a peripheral clock root: a divider field and a source-select
// field sharing one register. Every root (periodic, I2C, UART, SPI) has this
// shape.
type rootReg struct {
	div  field
	sel  field
	addr uint32
}

// set programs divider and source select in a single read-modify-write.
// divider is the raw field value, i.e. already off-by-one encoded.
func (r rootReg) set(mem Space, divider, selection uint32) {
	reg := mem.Read32(r.addr)
	reg &^= r.div.mask | r.sel.mask
	reg |= (divider << r.div.offset) & r.div.mask
	reg |= (selection << r.sel.offset) & r.sel.mask
	mem.Write32(r.addr, reg)
}

func (r rootReg) divider(mem Space) uint32 {
	return r.div.read(mem, r.addr)
}

func (r rootReg) selection(mem Space) uint32 {
	return r.sel.read(mem, r.addr)
}

// clampDivider resolves a requested clock divider to the closed range
// [1, max]. Out-of-range requests saturate rather than fail.
func clampDivider(divider, max uint32) uint32 {
	if divider < 1 {
		return 1
	}
	if divider > max {
		return max
	}
	return divider
}
