package cpu

import "github.com/go6502run/emu6502/memory"

// addrMode enumerates the 6502 addressing modes this emulator
// resolves. Every mode but accumulator and implied yields an effective
// address; accumulator and implied operate directly on registers and
// never call resolveAddr.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeIndirect // JMP (a) only
	modeRelative
)

// resolveAddr consumes whatever operand bytes mode requires (via
// fetch/fetch16) and returns the effective address the instruction
// should read or write. For modeImmediate the "effective address" is
// simply the operand byte's own location, so bus.Read(addr) yields the
// immediate value uniformly with every other mode.
//
// All intermediate address math is modulo 65536 (uint16 wraparound)
// except zero-page-relative math, which is modulo 256 (uint8
// wraparound) per spec.
func (c *Chip) resolveAddr(bus *memory.Bus, mode addrMode) uint16 {
	switch mode {
	case modeImmediate:
		addr := c.PC
		c.PC++
		return addr
	case modeZeroPage:
		return uint16(c.fetch(bus))
	case modeZeroPageX:
		return uint16(c.fetch(bus) + c.X)
	case modeZeroPageY:
		return uint16(c.fetch(bus) + c.Y)
	case modeAbsolute:
		return c.fetch16(bus)
	case modeAbsoluteX:
		return c.fetch16(bus) + uint16(c.X)
	case modeAbsoluteY:
		return c.fetch16(bus) + uint16(c.Y)
	case modeIndirectX:
		zp := c.fetch(bus) + c.X
		return c.readZPPointer(bus, zp)
	case modeIndirectY:
		zp := c.fetch(bus)
		base := c.readZPPointer(bus, zp)
		return base + uint16(c.Y)
	case modeIndirect:
		ptr := c.fetch16(bus)
		lo := bus.Read(ptr)
		hi := bus.Read(ptr + 1)
		return uint16(hi)<<8 | uint16(lo)
	case modeRelative:
		off := int8(c.fetch(bus))
		return uint16(int32(c.PC) + int32(off))
	default:
		return 0
	}
}

// readZPPointer reads a 16 bit little-endian pointer stored at zp and
// zp+1, both addresses wrapping within the zero page (zp+1 wraps mod
// 256, not into the stack page).
func (c *Chip) readZPPointer(bus *memory.Bus, zp uint8) uint16 {
	lo := bus.Read(uint16(zp))
	hi := bus.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}
