package ccm

import "testing"

// memSpace is a bare register file for bit-pattern tests.
type memSpace map[uint32]uint32

func (m memSpace) Read32(addr uint32) uint32     { return m[addr] }
func (m memSpace) Write32(addr uint32, v uint32) { m[addr] = v }

const testAddr = 0x400FC038

var (
	testPODF = newField(19, 0x3F)
	testSEL  = newField(18, 0x01)
)

func TestFieldModify(t *testing.T) {
	mem := memSpace{}
	testPODF.modify(mem, testAddr, 0xFFFFFFFF)
	if got := mem[testAddr]; got != 0x3F<<19 {
		t.Errorf("modify wrote wrong pattern, got: %08X, want: %08X", got, 0x3F<<19)
	}

	mem[testAddr] = 0
	testSEL.modify(mem, testAddr, 0xFFFFFFFF)
	if got := mem[testAddr]; got != 1<<18 {
		t.Errorf("modify wrote wrong pattern, got: %08X, want: %08X", got, 1<<18)
	}
}

func TestFieldModifyPreservesOtherBits(t *testing.T) {
	mem := memSpace{testAddr: 0xFFFFFFFF}
	testPODF.modify(mem, testAddr, 3)
	testSEL.modify(mem, testAddr, 1)
	if got := mem[testAddr]; got != 0xFE1FFFFF {
		t.Errorf("modify clobbered other bits, got: %08X, want: FE1FFFFF", got)
	}
}

func TestFieldWriteZero(t *testing.T) {
	mem := memSpace{testAddr: 0xFFFFFFFF}
	testSEL.writeZero(mem, testAddr, 1)
	if got := mem[testAddr]; got != 1<<18 {
		t.Errorf("writeZero left bits set, got: %08X, want: %08X", got, 1<<18)
	}
}

func TestRootRegSet(t *testing.T) {
	mem := memSpace{}
	reg := rootReg{div: testPODF, sel: testSEL, addr: testAddr}

	reg.set(mem, 0xFFFFFFFF, 0xFFFFFFFF)
	if got := mem[testAddr]; got != 0x01FC0000 {
		t.Errorf("set wrote wrong pattern, got: %08X, want: 01FC0000", got)
	}

	reg.set(mem, 0, 0)
	if got := mem[testAddr]; got != 0 {
		t.Errorf("set didn't clear fields, got: %08X, want: 0", got)
	}

	mem[testAddr] = 0xFFFFFFFF
	reg.set(mem, 3, 1)
	if got := mem[testAddr]; got != 0xFE1FFFFF {
		t.Errorf("set clobbered other bits, got: %08X, want: FE1FFFFF", got)
	}
	if got := reg.divider(mem); got != 3 {
		t.Errorf("divider read incorrect, got: %d, want: 3", got)
	}
	if got := reg.selection(mem); got != 1 {
		t.Errorf("selection read incorrect, got: %d, want: 1", got)
	}
}

func TestClampDivider(t *testing.T) {
	tests := []struct {
		in, max, want uint32
	}{
		{0, 64, 1},
		{1, 64, 1},
		{7, 64, 7},
		{64, 64, 64},
		{65, 64, 64},
		{9, 8, 8},
	}
	for _, tc := range tests {
		if got := clampDivider(tc.in, tc.max); got != tc.want {
			t.Errorf("clampDivider(%d, %d) got: %d, want: %d", tc.in, tc.max, got, tc.want)
		}
	}
}
