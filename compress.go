// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// Compress compresses src into the LZF token stream.
//
// The output is allocated with capacity len(src); if the compressed form
// would not fit in that budget, or src is shorter than two bytes, Compress
// returns ErrNoCompressionPossible. On success the returned slice's length
// is always <= len(src).
func Compress(src []byte) ([]byte, error) {
	return compressCore(src)
}

// compressCore implements the single-pass LZF compressor described in the
// format's reference implementation: a direct-mapped hash table of recent
// 3-byte prefixes drives match search, and literal bytes accumulate into
// runs whose header is backpatched once the run closes.
func compressCore(in []byte) ([]byte, error) {
	inLen := len(in)
	if inLen < 2 {
		return nil, ErrNoCompressionPossible
	}

	out := make([]byte, inLen)
	outLen := 1 // out[0] reserved as the first run's header
	lit := 0

	var htab [hsize]int // zero-initialized; every use is gated by independent validity checks

	currentOffset := 0
	hval := lzfFirst(in, currentOffset)

	for currentOffset < inLen-2 {
		hval = lzfNext(hval, in, currentOffset)
		slot := lzfHashIdx(hval)

		ref := htab[slot]
		htab[slot] = currentOffset

		off := uint(currentOffset) - uint(ref) - 1
		matched := off < maxOff &&
			currentOffset+4 < inLen &&
			ref > 0 &&
			ref < inLen-2 &&
			in[ref] == in[currentOffset] &&
			in[ref+1] == in[currentOffset+1] &&
			in[ref+2] == in[currentOffset+2]

		if !matched {
			if outLen >= inLen {
				return nil, ErrNoCompressionPossible
			}

			lit++
			out[outLen] = in[currentOffset]
			outLen++
			currentOffset++

			if lit == maxLit {
				out[outLen-lit-1] = byte(lit - 1)
				lit = 0
				outLen++ // reserve next run's header
			}

			continue
		}

		length := 2
		maxLen := min(inLen-currentOffset-length, maxRef)

		// Close the active literal run.
		out[outLen-lit-1] = byte(lit - 1)
		if lit == 0 {
			outLen-- // undo the reservation; nothing to backpatch
		}

		if outLen+3+1 >= inLen {
			return nil, ErrNoCompressionPossible
		}

		for length < maxLen && in[ref+length] == in[currentOffset+length] {
			length++
		}

		length -= 2 // length is now the matched octet count minus 2, as encoded
		currentOffset++

		if length < 7 {
			out[outLen] = byte(off>>8) + byte(length<<5)
			outLen++
		} else {
			out[outLen] = byte(off>>8) + 7<<5
			out[outLen+1] = byte(length - 7)
			outLen += 2
		}

		out[outLen] = byte(off)
		outLen += 2 // start next run
		lit = 0

		currentOffset += length - 1
		if currentOffset >= inLen {
			break
		}

		// Catch-up: the format requires two further hash-table insertions
		// for the positions skipped by the match, for compatibility with
		// the reference encoder's byte-exact output.
		hval = lzfFirst(in, currentOffset)

		hval = lzfNext(hval, in, currentOffset)
		htab[lzfHashIdx(hval)] = currentOffset
		currentOffset++

		hval = lzfNext(hval, in, currentOffset)
		htab[lzfHashIdx(hval)] = currentOffset
		currentOffset++
	}

	// At most 2 bytes of input remain; budget for the tail run's worst case.
	if outLen+3 > inLen {
		return nil, ErrNoCompressionPossible
	}

	for currentOffset < inLen {
		lit++
		out[outLen] = in[currentOffset]
		outLen++
		currentOffset++

		if lit == maxLit {
			out[outLen-lit-1] = byte(lit - 1)
			lit = 0
			outLen++
		}
	}

	out[outLen-lit-1] = byte(lit - 1)
	if lit == 0 {
		outLen--
	}

	return out[:outLen], nil
}

// lzfFirst seeds the rolling 3-byte hash from the first two bytes at off.
func lzfFirst(p []byte, off int) uint32 {
	return uint32(p[off])<<8 | uint32(p[off+1])
}

// lzfNext rolls the hash forward by the byte at off+2.
func lzfNext(v uint32, p []byte, off int) uint32 {
	return v<<8 | uint32(p[off+2])
}

// lzfHashIdx maps a rolling hash value to a hash-table slot. The formula
// and its wrapping arithmetic reproduce LibLZF's slot function bit-for-bit,
// which is required for byte-exact output equivalence.
func lzfHashIdx(h uint32) int {
	v := uint64(h)
	return int((v>>8 - v*5) & (hsize - 1))
}
