// Package diag defines the diagnostic-reporting collaborator used by
// the emulator's core. Neither memory.Bus nor cpu.Chip ever fails or
// panics on an unknown opcode, a ROM/unmapped write, or an oversized
// image load; instead they emit a diagnostic through a Sink and carry
// on. An unreadable image file is not reported here: driver.New returns
// it as an error and no emulator is built. This matches the teacher's habit of keeping such
// collaborators to a single small interface rather than wiring a
// logging framework directly into the core.
package diag

import "log"

// Sink receives diagnostic messages. Emit follows fmt.Printf
// formatting rules.
type Sink interface {
	Emit(format string, args ...interface{})
}

// Discard is a Sink that drops every message. It is the default when
// no sink is configured, and is useful in tests that don't want
// diagnostic noise on stdout/stderr.
type Discard struct{}

// Emit implements Sink.
func (Discard) Emit(format string, args ...interface{}) {}

// StdLog is a Sink backed by the standard log package, writing through
// a *log.Logger. Passing nil uses log.Default().
type StdLog struct {
	L *log.Logger
}

// Emit implements Sink.
func (s StdLog) Emit(format string, args ...interface{}) {
	l := s.L
	if l == nil {
		l = log.Default()
	}
	l.Printf(format, args...)
}
