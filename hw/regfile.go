// Package hw holds the hardware collaborators of the power-management
// core: register access and the opaque power-sequencing primitives,
// together with modeled implementations used for testing and bring-up.
package hw

// An Addr is a 32-bit control register address.
type Addr uint32

// A RegisterFile provides read-modify-write access to always-mapped
// control registers. Writes are single-bus-cycle and never fail.
type RegisterFile interface {
	Read32(addr Addr) uint32
	RMW32(addr Addr, mask, value uint32)
}

// A ModelRegisterFile is an in-memory register file. Unwritten registers
// read as zero.
type ModelRegisterFile struct {
	regs map[Addr]uint32
}

// NewModelRegisterFile creates a register file with all registers zeroed.
func NewModelRegisterFile() *ModelRegisterFile {
	return &ModelRegisterFile{
		regs: make(map[Addr]uint32),
	}
}

// Read32 returns the current value of the register at addr.
func (f *ModelRegisterFile) Read32(addr Addr) uint32 {
	return f.regs[addr]
}

// RMW32 replaces the bits selected by mask with the corresponding bits of
// value, leaving all other bits untouched.
func (f *ModelRegisterFile) RMW32(addr Addr, mask, value uint32) {
	f.regs[addr] = (f.regs[addr] &^ mask) | (value & mask)
}
