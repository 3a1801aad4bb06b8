package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

func TestNewAndRunHaltsOnZeroBRKVector(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	program := []uint8{0xA9, 0x2A, 0x00} // LDA #$2A; BRK
	if err := os.WriteFile(path, program, 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := New(Config{ProgramImagePath: path, ProgramBase: 0x0600})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d.Run()

	if d.Chip.Running() {
		t.Fatalf("expected halt after BRK with zero vector, state: %s", spew.Sdump(d.Chip))
	}
	if d.Chip.A != 0x2A {
		t.Errorf("A = %#02x, want 0x2A", d.Chip.A)
	}
}

func TestNewUnreadableProgramImageFailsBeforeStart(t *testing.T) {
	_, err := New(Config{ProgramImagePath: filepath.Join(t.TempDir(), "missing.bin")})
	if err == nil {
		t.Fatal("expected an error for an unreadable program image")
	}
}

func TestRunForRespectsStepBudget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loop.bin")
	// An infinite loop: JMP $0600.
	if err := os.WriteFile(path, []uint8{0x4C, 0x00, 0x06}, 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := New(Config{ProgramImagePath: path, ProgramBase: 0x0600})
	if err != nil {
		t.Fatal(err)
	}
	n := d.RunFor(50)
	if n != 50 {
		t.Errorf("RunFor executed %d steps, want 50", n)
	}
	if !d.Chip.Running() {
		t.Error("expected the loop to still be running after a bounded step budget")
	}
}

type recordingIO struct {
	writes map[uint16]uint8
}

func (r *recordingIO) IORead(addr uint16) uint8 { return 0x00 }
func (r *recordingIO) IOWrite(addr uint16, val uint8) {
	if r.writes == nil {
		r.writes = map[uint16]uint8{}
	}
	r.writes[addr] = val
}

func TestIOAdapterReceivesWritesInIOBand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "io.bin")
	// STA $2001 with A=0x7E, then halt.
	program := []uint8{0xA9, 0x7E, 0x8D, 0x01, 0x20, 0x00}
	if err := os.WriteFile(path, program, 0o644); err != nil {
		t.Fatal(err)
	}
	io := &recordingIO{}
	d, err := New(Config{ProgramImagePath: path, ProgramBase: 0x0600, IO: io})
	if err != nil {
		t.Fatal(err)
	}
	d.Run()

	want := map[uint16]uint8{0x2001: 0x7E}
	if diff := deep.Equal(want, io.writes); diff != nil {
		t.Errorf("io writes mismatch: %v", diff)
	}
}

func TestResetFromVector(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.bin")
	rom := make([]uint8, 0x8000)
	rom[0x7FFC] = 0x00 // reset vector low byte, at address 0xFFFC
	rom[0x7FFD] = 0x90 // reset vector high byte, at address 0xFFFD
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := New(Config{ROMImagePath: path, UseResetVector: true})
	if err != nil {
		t.Fatal(err)
	}
	if d.Chip.PC != 0x9000 {
		t.Errorf("PC = %#04x, want 0x9000 from reset vector", d.Chip.PC)
	}
}
