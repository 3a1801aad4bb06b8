// Package disasm implements the textual status/disassembly dump that
// spec.md treats as an external collaborator to the core: given a
// memory range it renders mnemonic-annotated lines, the way the
// teacher's disassemble package renders a prg listing, but sourcing
// opcode names and lengths from cpu.Describe instead of keeping a
// second copy of the opcode table.
package disasm

import (
	"fmt"
	"strings"

	"github.com/go6502run/emu6502/cpu"
	"github.com/go6502run/emu6502/memory"
)

// Line is one disassembled instruction: its address, raw bytes, and
// rendered mnemonic text.
type Line struct {
	Addr  uint16
	Bytes []uint8
	Text  string
}

// Step disassembles the single instruction at pc and returns the
// rendered line; len(Line.Bytes) is how many bytes forward the PC
// should move to reach the next instruction. An unknown opcode renders
// as a raw ".byte" directive one byte long.
func Step(pc uint16, bus *memory.Bus) Line {
	name, length, known := cpu.Describe(bus.Read(pc))
	raw := make([]uint8, length)
	for i := range raw {
		raw[i] = bus.Read(pc + uint16(i))
	}
	if !known {
		return Line{Addr: pc, Bytes: raw, Text: fmt.Sprintf(".byte $%02X", raw[0])}
	}
	return Line{Addr: pc, Bytes: raw, Text: render(name, length, raw)}
}

// render renders the mnemonic text for an instruction whose opcode is
// raw[0] and whose remaining bytes are its operand. The operand is
// printed as a bare hex byte or little-endian word chosen by the
// instruction length alone; the addressing mode enum is unexported, so
// no mode syntax (#, ,X/,Y, parentheses) is rendered and, for example,
// LDA #$0A and LDA $0A both print as "LDA $0A".
func render(name string, length int, raw []uint8) string {
	switch length {
	case 1:
		return name
	case 2:
		return fmt.Sprintf("%s $%02X", name, raw[1])
	case 3:
		return fmt.Sprintf("%s $%02X%02X", name, raw[2], raw[1])
	default:
		return name
	}
}

// Dump renders count instructions starting at pc, one per line,
// joined with newlines - the minimal "textual status dump" spec.md
// calls out as an external collaborator rather than a core
// responsibility.
func Dump(pc uint16, bus *memory.Bus, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		line := Step(pc, bus)
		fmt.Fprintf(&b, "%04X: %s\n", line.Addr, line.Text)
		pc += uint16(len(line.Bytes))
	}
	return b.String()
}

// Registers renders a one-line register/flag dump in the style the
// source emulator's main.c variants print after a run.
func Registers(c *cpu.Chip) string {
	return c.String()
}
