package memory

import (
	"github.com/go6502run/emu6502/diag"
	"github.com/go6502run/emu6502/io"
)

// Address space layout, per the emulator's memory map.
const (
	zeroPageStart = 0x0000
	stackStart    = 0x0100
	ramEnd        = 0x0800 // exclusive: zero page + stack + general RAM
	mirrorStart   = 0x0800
	mirrorEnd     = 0x2000 // exclusive
	ioStart       = 0x2000
	ioEnd         = 0x4000 // exclusive
	unmappedStart = 0x4000
	unmappedEnd   = 0x8000 // exclusive
	romStart      = 0x8000

	ramSize = ramEnd - zeroPageStart // 2048 bytes: zero page, stack, general RAM
	romSize = 0x10000 - romStart     // 32 KiB
)

// Bus is the flat 16 bit address space described by the emulator:
// zero page, stack, and general RAM share one bank; a mirrored band
// aliases into that same bank modulo its size; a middle band is
// unmapped; I/O is delegated to an external adapter; and the top half
// is ROM.
type Bus struct {
	ram      *ram
	rom      *rom
	io       *ioBank
	unmapped *unmapped
	sink     diag.Sink
}

// NewBus constructs a Bus with freshly zeroed RAM, an empty ROM image,
// an unmapped region that always reads 0xFF, and no I/O adapter
// installed (reads from the I/O band behave like unmapped until
// SetIOAdapter is called). A nil sink is legal and drops diagnostics.
func NewBus(sink diag.Sink) *Bus {
	if sink == nil {
		sink = diag.Discard{}
	}
	b := &Bus{
		ram:      newRAMBank(ramSize),
		rom:      newROMBank(romSize, sink),
		unmapped: &unmapped{fill: 0xFF, sink: sink},
		sink:     sink,
	}
	b.io = &ioBank{adapter: nullAdapter{}}
	return b
}

// SetIOAdapter installs the external handler for the 0x2000-0x3FFF
// band. Passing nil restores the default (reads 0xFF, writes ignored).
func (b *Bus) SetIOAdapter(a io.Adapter) {
	if a == nil {
		a = nullAdapter{}
	}
	b.io.adapter = a
}

// PowerOn resets RAM to its power-on content. ROM content (if loaded)
// and the I/O adapter are untouched.
func (b *Bus) PowerOn() {
	b.ram.PowerOn()
}

// Read resolves addr to a backing bank and returns the byte stored
// there. Mirrored addresses alias into RAM modulo the RAM bank size.
func (b *Bus) Read(addr uint16) uint8 {
	return b.bank(addr).Read(b.offset(addr))
}

// Write resolves addr to a backing bank and stores val there. Writes
// to ROM or the unmapped band are silently dropped (with a
// diagnostic); writes to a mirrored address update the aliased RAM
// cell.
func (b *Bus) Write(addr uint16, val uint8) {
	b.bank(addr).Write(b.offset(addr), val)
}

// bank returns the Bank backing addr.
func (b *Bus) bank(addr uint16) Bank {
	switch {
	case addr < ramEnd:
		return b.ram
	case addr < mirrorEnd:
		return b.ram
	case addr < ioEnd:
		return b.io
	case addr < unmappedEnd:
		return b.unmapped
	default:
		return b.rom
	}
}

// offset translates addr into the address its backing bank expects:
// the mirrored band is folded into RAM modulo the RAM bank size
// (ram.Read/Write further mask by length, so this is belt-and-braces
// for readability); every other band passes addr through unchanged
// since each bank masks to its own size already.
func (b *Bus) offset(addr uint16) uint16 {
	if addr >= mirrorStart && addr < mirrorEnd {
		return addr % ramSize
	}
	return addr
}

// LoadROM copies up to 32 KiB of image into ROM starting at base
// (default, and only sensible, base is 0x8000). Oversized images are
// truncated with a diagnostic.
func (b *Bus) LoadROM(image []uint8, base uint16) {
	if base < romStart {
		base = romStart
	}
	b.rom.load(image, base-romStart)
}

// LoadProgram copies image into RAM (or ROM, if base is 0x8000 or
// above) starting at base. Oversized images are truncated with a
// diagnostic.
func (b *Bus) LoadProgram(image []uint8, base uint16) {
	if base >= romStart {
		b.LoadROM(image, base)
		return
	}
	loadInto(b.ram.buf, image, base, b.sink, "ram")
}
