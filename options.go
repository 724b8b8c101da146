// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// DecompressOptions configures decompression.
// OutLen is required: the LZF wire format carries no length prefix, so the
// caller must know the original decompressed size in advance.
// MaxInputSize limits how many bytes DecompressFromReader may read.
type DecompressOptions struct {
	// OutLen is the expected decompressed size, used as the output
	// buffer's capacity (and safety bound).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and
// no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
