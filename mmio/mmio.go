// Package mmio backs a ccm.Space with real memory-mapped I/O, mapping the
// CCM register pages out of a memory device (normally /dev/mem).
package mmio

import (
	"fmt"
	"log"
	"os"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
)

const (
	MEM_FILE  = "/dev/mem"
	PAGE_SIZE = 4096 // Theoretically, we could get this via whatever getconf does
)

// DevMem is a register space over mapped pages of a memory device. Pages are
// mapped once and kept for the life of the process; register access after a
// successful Open/Map never fails.
type DevMem struct {
	file  string
	pages map[uint32]mmap.MMap
}

// Open opens the memory device and maps the page containing each of the
// given register addresses. Further pages are mapped on demand, but mapping
// everything up front keeps failures out of the register-access path.
func Open(file string, addrs ...uint32) (*DevMem, error) {
	if file == "" {
		file = MEM_FILE
	}
	d := &DevMem{
		file:  file,
		pages: make(map[uint32]mmap.MMap),
	}
	for _, addr := range addrs {
		if err := d.Map(addr); err != nil {
			d.Close() // Ignore error
			return nil, err
		}
	}
	return d, nil
}

// Map maps the page containing addr, if it isn't mapped already. The mapping
// has to start at a page boundary, so the address is rounded down to the
// nearest page.
func (d *DevMem) Map(addr uint32) error {
	base := addr &^ (PAGE_SIZE - 1)
	if _, ok := d.pages[base]; ok {
		return nil
	}

	f, err := os.OpenFile(d.file, os.O_RDWR|os.O_SYNC, os.ModePerm)
	if err != nil {
		return fmt.Errorf("couldn't open %s: %v", d.file, err)
	}
	mm, err := mmap.MapRegion(f, PAGE_SIZE, mmap.RDWR, 0, int64(base))
	f.Close() // Ignore error
	if err != nil {
		return fmt.Errorf("couldn't map page %08X: %v", base, err)
	}
	log.Printf("mapped %d bytes at %08X from %s\n", PAGE_SIZE, base, d.file)
	d.pages[base] = mm
	return nil
}

func (d *DevMem) reg(addr uint32) *uint32 {
	base := addr &^ (PAGE_SIZE - 1)
	mm, ok := d.pages[base]
	if !ok {
		if err := d.Map(addr); err != nil {
			// No safe way to continue without the register.
			panic(fmt.Sprintf("couldn't map register %08X: %v", addr, err))
		}
		mm = d.pages[base]
	}
	return (*uint32)(unsafe.Pointer(&mm[addr-base]))
}

func (d *DevMem) Read32(addr uint32) uint32 {
	return *d.reg(addr)
}

func (d *DevMem) Write32(addr uint32, v uint32) {
	*d.reg(addr) = v
}

// Close unmaps every page. The DevMem must not be used afterwards.
func (d *DevMem) Close() error {
	for base, mm := range d.pages {
		if err := mm.Unmap(); err != nil {
			return fmt.Errorf("couldn't unmap page %08X: %v", base, err)
		}
		delete(d.pages, base)
	}
	return nil
}
