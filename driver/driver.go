// Package driver implements the execution driver: the fetch/decode
// dispatch step belongs to cpu.Chip, but owning the run loop,
// program/ROM loading before it starts, and final state reporting
// after it stops is the driver's job, not the core's. The driver
// never interprets a flag or register itself.
package driver

import (
	"context"

	"github.com/go6502run/emu6502/cpu"
	"github.com/go6502run/emu6502/diag"
	"github.com/go6502run/emu6502/io"
	"github.com/go6502run/emu6502/loader"
	"github.com/go6502run/emu6502/memory"
)

// Config mirrors spec.md's configuration table: the initial PC after
// reset, an optional ROM image, and an optional program image plus
// where to load it.
type Config struct {
	// EntryPC is the PC value after reset, used unless UseResetVector
	// is set. Defaults to cpu.DefaultEntryPC (0x0600).
	EntryPC uint16
	// UseResetVector, if true, has New reset the chip with
	// ResetFromVector, pulling PC from 0xFFFC/0xFFFD
	// instead of using EntryPC - matching the source emulator's
	// vector-driven reset path (see SPEC_FULL.md's supplemented
	// features).
	UseResetVector bool

	// ROMImagePath, if non-empty, is loaded into 0x8000-0xFFFF before
	// the reset vector (if UseResetVector) is consulted.
	ROMImagePath string
	// ProgramImagePath, if non-empty, is loaded at ProgramBase.
	ProgramImagePath string
	ProgramBase      uint16

	// IO, if non-nil, is installed as the 0x2000-0x3FFF adapter.
	IO io.Adapter

	// Sink receives diagnostics from the bus and CPU. A nil Sink drops
	// them.
	Sink diag.Sink
}

// Driver owns one Chip and its Bus and drives Step until the run flag
// clears.
type Driver struct {
	Chip *cpu.Chip
	Bus  *memory.Bus
}

// New builds a Driver, loading any configured ROM/program images and
// performing the configured reset. Returns an error only if an image
// file couldn't be read; in that case the emulator is not started,
// per spec.md's error-handling design.
func New(cfg Config) (*Driver, error) {
	bus := memory.NewBus(cfg.Sink)
	bus.PowerOn()
	if cfg.IO != nil {
		bus.SetIOAdapter(cfg.IO)
	}

	if cfg.ROMImagePath != "" {
		image, err := loader.Load(cfg.ROMImagePath)
		if err != nil {
			return nil, err
		}
		bus.LoadROM(image, 0x8000)
	}
	if cfg.ProgramImagePath != "" {
		image, err := loader.Load(cfg.ProgramImagePath)
		if err != nil {
			return nil, err
		}
		bus.LoadProgram(image, cfg.ProgramBase)
	}

	c := cpu.New(cfg.Sink)
	if cfg.UseResetVector {
		c.ResetFromVector(bus)
	} else {
		entry := cfg.EntryPC
		if entry == 0 {
			entry = cpu.DefaultEntryPC
		}
		c.Reset(entry)
	}

	return &Driver{Chip: c, Bus: bus}, nil
}

// Run repeats Step while the Chip's run flag is true. There is no
// timeout: a misbehaving program may loop indefinitely, which is this
// driver's concern rather than the core's.
func (d *Driver) Run() {
	for d.Chip.Running() {
		d.Chip.Step(d.Bus)
	}
}

// RunContext behaves like Run but also stops (leaving the run flag
// set, since nothing inside a Step can be cancelled mid-instruction
// per spec.md's concurrency model) as soon as ctx is done, checking
// between steps rather than during one.
func (d *Driver) RunContext(ctx context.Context) error {
	for d.Chip.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		d.Chip.Step(d.Bus)
	}
	return nil
}

// RunFor steps at most maxSteps times, stopping early if the run flag
// clears. It returns the number of steps actually executed, useful for
// driving a fixed-length test or a "run until idle" UI loop without
// risking an infinite loop from a misbehaving program.
func (d *Driver) RunFor(maxSteps int) int {
	i := 0
	for ; i < maxSteps && d.Chip.Running(); i++ {
		d.Chip.Step(d.Bus)
	}
	return i
}

// Stop clears the run flag from outside the core, distinct from a
// BRK-triggered halt.
func (d *Driver) Stop() {
	d.Chip.Halt()
}
