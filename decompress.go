// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// Decompress decompresses LZF data from src into a freshly allocated buffer
// of length opts.OutLen. Returns ErrOptionsRequired if opts is nil;
// ErrDataCorrupted if src is empty. On success returns the decompressed
// slice, which may be shorter than OutLen if the caller over-allocated.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)
	n, err := DecompressInto(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses LZF data from src into dst, a caller-owned
// buffer. It returns the number of bytes written. dst's contents are
// unspecified on error and must not be consumed by the caller.
func DecompressInto(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrDataCorrupted
	}

	inLen := len(src)
	outCap := len(dst)
	currentOffset := 0
	outLen := 0

	for currentOffset < inLen {
		ctrl := int(src[currentOffset])
		currentOffset++

		if ctrl < 32 {
			// Literal run of ctrl+1 bytes copied verbatim from input.
			runLen := ctrl + 1

			if outLen+runLen > outCap {
				return 0, ErrBufferTooSmall
			}
			if currentOffset+runLen > inLen {
				return 0, ErrDataCorrupted
			}

			copy(dst[outLen:outLen+runLen], src[currentOffset:currentOffset+runLen])
			currentOffset += runLen
			outLen += runLen
			continue
		}

		// Back-reference: the high 3 bits of ctrl classify a short or
		// long match, and a trailing byte completes the offset.
		length := ctrl >> 5
		refOffset := ((ctrl & 0x1f) << 8) + 1

		if currentOffset >= inLen {
			return 0, ErrDataCorrupted
		}

		if length == backRefLenHiMax {
			length += int(src[currentOffset])
			currentOffset++

			if currentOffset >= inLen {
				return 0, ErrDataCorrupted
			}
		}

		refOffset += int(src[currentOffset])
		currentOffset++

		matchLen := length + 2
		if outLen+matchLen > outCap {
			return 0, ErrBufferTooSmall
		}

		refPos := outLen - refOffset
		if refPos < 0 {
			return 0, ErrDataCorrupted
		}

		copyBackRef(dst, outLen, refOffset, matchLen)
		outLen += matchLen
	}

	return outLen, nil
}
