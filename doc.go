// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

/*
Package lzf implements the LZF byte-stream compression format, byte-exact
compatible with Marc Lehmann's LibLZF (lzf_compress/lzf_decompress).

The format has no levels, no header, and no checksum: a token stream of
literal runs and back-references, decoded against a caller-supplied output
length. Compression is single-pass and uses a fixed budget of len(input)
output bytes; if the compressed form would not fit, Compress fails with
ErrNoCompressionPossible and the caller should store the input as-is.

# Compress

	out, err := lzf.Compress(data)

# Decompress

OutLen is required, since the wire format carries no length prefix:

	out, err := lzf.Decompress(compressed, lzf.DefaultDecompressOptions(expectedLen))

Into a caller-owned buffer:

	n, err := lzf.DecompressInto(compressed, dst)

From an io.Reader:

	out, err := lzf.DecompressFromReader(r, lzf.DefaultDecompressOptions(expectedLen))
*/
package lzf
