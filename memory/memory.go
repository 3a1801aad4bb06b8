// Package memory defines the basic interfaces for working with a 6502
// family memory map and implements the banked address space described
// for this emulator: zero page, stack and general RAM share one
// backing bank, a mirrored region aliases into it, I/O is routed to an
// external adapter, and ROM is read-only.
package memory

import (
	"github.com/go6502run/emu6502/diag"
	"github.com/go6502run/emu6502/io"
)

// Bank is a single addressable region of the larger address space.
// Each implementation is responsible for masking/clipping its own
// addresses; a parent Bus decides which Bank a given 16 bit address
// routes to.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. Implementations that are
	// read-only (ROM) or unbacked (unmapped) treat this as a no-op and
	// report a diagnostic rather than failing.
	Write(addr uint16, val uint8)
	// PowerOn resets the bank to its power-on content.
	PowerOn()
}

// ram implements a flat, fully read/write Bank of the given size.
// Size must be a power of two; addresses are masked (not range
// checked) so a ram bank used directly as a mirrored region is simply
// a matter of the caller masking the address before calling in.
type ram struct {
	buf []uint8
}

// newRAMBank allocates a RAM bank of the given size (must be a power
// of two) pre-filled with zero, matching this emulator's reset
// invariants (spec.md's reset calls for A=X=Y=0, and unwritten RAM is
// treated as zero here rather than randomized, unlike power-on noise
// on real silicon).
func newRAMBank(size int) *ram {
	return &ram{buf: make([]uint8, size)}
}

func (r *ram) Read(addr uint16) uint8 {
	return r.buf[addr&uint16(len(r.buf)-1)]
}

func (r *ram) Write(addr uint16, val uint8) {
	r.buf[addr&uint16(len(r.buf)-1)] = val
}

func (r *ram) PowerOn() {
	for i := range r.buf {
		r.buf[i] = 0
	}
}

// rom implements a read-only Bank backed by a fixed-size image. Writes
// are dropped with a diagnostic, per spec.md's "ROM writes are
// rejected (logged, no effect)".
type rom struct {
	buf  []uint8
	sink diag.Sink
}

func newROMBank(size int, sink diag.Sink) *rom {
	return &rom{buf: make([]uint8, size), sink: sink}
}

func (r *rom) Read(addr uint16) uint8 {
	return r.buf[addr&uint16(len(r.buf)-1)]
}

func (r *rom) Write(addr uint16, val uint8) {
	r.sink.Emit("rom: write to 0x%04X (val 0x%02X) ignored", addr, val)
}

func (r *rom) PowerOn() {}

// load copies up to len(r.buf) bytes of image into the ROM starting at
// offset, truncating (with a diagnostic) if image overruns the bank.
func (r *rom) load(image []uint8, offset uint16) {
	loadInto(r.buf, image, offset, r.sink, "rom")
}

// unmapped implements the Bank contract for an address range with no
// backing store: reads yield 0xFF, writes are dropped with a
// diagnostic. This promotes the teacher's test-only static-value
// memory stub into a real bank used for the 0x4000-0x7FFF hole.
type unmapped struct {
	fill uint8
	sink diag.Sink
}

func (u *unmapped) Read(addr uint16) uint8 { return u.fill }

func (u *unmapped) Write(addr uint16, val uint8) {
	u.sink.Emit("unmapped: write to 0x%04X (val 0x%02X) ignored", addr, val)
}

func (u *unmapped) PowerOn() {}

// ioBank routes reads and writes to an external io.Adapter. The
// adapter's methods are pure from the core's point of view: neither
// call can fail.
type ioBank struct {
	adapter io.Adapter
}

func (b *ioBank) Read(addr uint16) uint8       { return b.adapter.IORead(addr) }
func (b *ioBank) Write(addr uint16, val uint8) { b.adapter.IOWrite(addr, val) }
func (b *ioBank) PowerOn()                     {}

// nullAdapter is installed when no I/O adapter is configured: reads
// behave like the unmapped region and writes are dropped silently.
type nullAdapter struct{}

func (nullAdapter) IORead(addr uint16) uint8       { return 0xFF }
func (nullAdapter) IOWrite(addr uint16, val uint8) {}

// loadInto copies image into buf starting at offset, truncating (and
// reporting via sink) anything that would run past the end of buf.
func loadInto(buf, image []uint8, offset uint16, sink diag.Sink, what string) {
	start := int(offset)
	if start >= len(buf) {
		sink.Emit("%s: load base 0x%04X is outside the %d byte bank, nothing loaded", what, offset, len(buf))
		return
	}
	n := copy(buf[start:], image)
	if n < len(image) {
		sink.Emit("%s: image truncated, %d of %d bytes loaded at 0x%04X", what, n, len(image), offset)
	}
}
