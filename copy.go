// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// copyBackRef copies length bytes of a back-reference from dst[refPos:] to
// dst[outPos:outPos+length], where refPos = outPos-dist. The caller must
// have already validated refPos >= 0 (ErrDataCorrupted) and
// outPos+length <= len(dst) (ErrBufferTooSmall).
//
// When dist < length the source and destination ranges overlap (this is
// how LZF expresses run-length patterns: dist == 1 repeats the previous
// byte length times), so a plain non-overlapping copy is wrong. The spec
// describes this as a byte-by-byte loop; exponential doubling produces an
// identical result — each step only ever reads bytes the previous step
// already wrote — while avoiding a byte-at-a-time loop in the common case.
func copyBackRef(dst []byte, outPos, dist, length int) {
	refPos := outPos - dist

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[refPos:refPos+length])
		return
	}

	copy(dst[outPos:outPos+dist], dst[refPos:outPos])
	copied := dist

	for copied < length {
		n := copy(dst[outPos+copied:outPos+length], dst[outPos:outPos+copied])
		copied += n
	}
}
