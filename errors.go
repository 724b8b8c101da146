// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

import (
	"errors"
	"fmt"
)

// Sentinel errors: three of the codec's four failure kinds (the fourth,
// UnknownError, is a type below), then the errors of the Go API surface.
var (
	// ErrNoCompressionPossible is returned when Compress cannot fit its
	// output within the len(input)-byte budget, or the input is shorter
	// than two bytes.
	ErrNoCompressionPossible = errors.New("lzf: no compression possible")
	// ErrDataCorrupted is returned when the decompressor finds an
	// impossible token: empty input, a truncated token, or a
	// back-reference pointing before the start of output.
	ErrDataCorrupted = errors.New("lzf: data corrupted")
	// ErrBufferTooSmall is returned when the decompressed length would
	// exceed the caller-supplied output capacity.
	ErrBufferTooSmall = errors.New("lzf: output buffer too small")

	// ErrOptionsRequired is returned when Decompress is called with nil
	// options (OutLen is required: the wire format carries no length).
	ErrOptionsRequired = errors.New("lzf: options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more
	// than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("lzf: input exceeds MaxInputSize")
)

// UnknownError wraps a foreign errno-style code surfaced by an interop
// wrapper (e.g. a cgo binding delegating to liblzf). The pure-Go kernels in
// this package never construct one; it exists so such a wrapper has a
// place to report a code this package doesn't recognize.
type UnknownError struct {
	Code int
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("lzf: unknown error, code %d", e.Code)
}
