// Package loader implements the image-loader collaborator spec.md
// treats as external to the core: reading a flat program/ROM image
// off disk and returning its bytes; the caller places them on the bus.
// Nothing in this package interprets the bytes; it only moves them.
package loader

import (
	"fmt"
	"os"
)

// UnreadableImageError is returned when a program or ROM image can't
// be read. Per spec.md's error-handling design this is the one
// failure mode that keeps the emulator from starting at all, so
// unlike the core's diagnostics it's a real Go error.
type UnreadableImageError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e UnreadableImageError) Error() string {
	return fmt.Sprintf("loader: cannot read image %q: %v", e.Path, e.Err)
}

// Unwrap supports errors.Is/errors.As against the underlying OS error.
func (e UnreadableImageError) Unwrap() error { return e.Err }

// Load reads the entire contents of path as a flat byte image. There
// is no header and no checksum; truncation against the destination
// region is the caller's (bus's) concern.
func Load(path string) ([]uint8, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, UnreadableImageError{Path: path, Err: err}
	}
	return b, nil
}
