// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// LZF format constants, bit-for-bit compatible with LibLZF.

const (
	// hlog is the log2 of the hash table size.
	hlog = 16
	// hsize is the number of slots in the compressor's hash table.
	hsize = 1 << hlog

	// maxOff is the exclusive upper bound on the encoded offset
	// off = distance-1 (13 bits), so distances run from 1 to maxOff.
	maxOff = 1 << 13
	// maxRef is the largest representable match length.
	maxRef = (1 << 8) + (1 << 3)
	// maxLit is the largest literal run length (a run header byte encodes
	// run length minus 1 in 5 bits).
	maxLit = 1 << 5
)

// control-byte layout for back-reference tokens: the high 3 bits classify
// the token (ctrl>>5, 0 = literal run, 1..7 = back-reference length class).
const (
	backRefLenHiMax = 7 // len_hi == 7 signals an extended length byte follows
)
