// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

import (
	"bytes"
	"testing"
)

// FuzzRoundtrip tests that any input either round-trips exactly through
// Compress/Decompress or is rejected with ErrNoCompressionPossible.
func FuzzRoundtrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte("Hello, World!"))
	f.Add([]byte("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"))
	f.Add([]byte("ABCDABCDABCDABCDABCDABCDABCDABCDABCDABCD"))
	f.Add(bytes.Repeat([]byte{0xff}, 100))
	f.Add(bytes.Repeat([]byte("The quick brown fox. "), 10))

	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}
	f.Add(seq)

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > 64*1024 {
			return
		}

		compressed, err := Compress(input)
		if err != nil {
			if err != ErrNoCompressionPossible {
				t.Fatalf("Compress returned unexpected error: %v", err)
			}
			return
		}

		if len(compressed) > len(input) {
			t.Fatalf("compressed output exceeded input-length budget: %d > %d", len(compressed), len(input))
		}

		out, err := Decompress(compressed, DefaultDecompressOptions(len(input)))
		if err != nil {
			t.Fatalf("Decompress failed on our own output: %v", err)
		}

		if !bytes.Equal(input, out) {
			t.Fatalf("roundtrip mismatch: input len=%d, output len=%d", len(input), len(out))
		}
	})
}

// FuzzDecompressNoPanic feeds arbitrary bytes to the decoder and only
// requires that it never panics; errors on malformed input are expected.
func FuzzDecompressNoPanic(f *testing.F) {
	f.Add([]byte{1, 97, 97, 224, 187, 0, 1, 97, 97})
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xff, 0xff, 0xff})
	f.Add([]byte{0x20})
	f.Add([]byte{0x1f, 0x00})
	f.Add([]byte{0xe0, 0x00})
	f.Add([]byte{0xe0, 0xff, 0x00})

	f.Fuzz(func(t *testing.T, input []byte) {
		dst := make([]byte, 64*1024)
		_, _ = DecompressInto(input, dst)
	})
}
