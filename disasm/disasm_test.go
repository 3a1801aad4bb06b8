package disasm

import (
	"strings"
	"testing"

	"github.com/go6502run/emu6502/memory"
)

func TestStepRendersKnownAndUnknownOpcodes(t *testing.T) {
	bus := memory.NewBus(nil)
	bus.LoadProgram([]uint8{0xA9, 0x0A, 0x8D, 0x00, 0x80, 0x02}, 0x0600)

	lda := Step(0x0600, bus)
	if lda.Text != "LDA $0A" || len(lda.Bytes) != 2 {
		t.Errorf("LDA line = %+v, want text %q len 2", lda, "LDA $0A")
	}

	sta := Step(0x0602, bus)
	if sta.Text != "STA $8000" || len(sta.Bytes) != 3 {
		t.Errorf("STA line = %+v, want text %q len 3", sta, "STA $8000")
	}

	unknown := Step(0x0605, bus)
	if !strings.HasPrefix(unknown.Text, ".byte") {
		t.Errorf("unknown opcode line = %+v, want a .byte directive", unknown)
	}
}

func TestDumpAdvancesThroughMultipleInstructions(t *testing.T) {
	bus := memory.NewBus(nil)
	bus.LoadProgram([]uint8{0xA9, 0x0A, 0xAA, 0x00}, 0x0600)
	out := Dump(0x0600, bus, 3)
	for _, want := range []string{"0600: LDA $0A", "0602: TAX", "0603: BRK"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump = %q, want it to contain %q", out, want)
		}
	}
}
