// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

// Command lzf is a minimal stdin/stdout front end for the lzf codec: it
// compresses or decompresses a single buffer, or with -version reports the
// CPU feature set the process is running under.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/woozymasta/lzf"
)

func main() {
	var (
		decompress = flag.Bool("d", false, "decompress stdin instead of compressing it")
		outLen     = flag.Int("n", 0, "expected decompressed length in bytes (required with -d)")
		version    = flag.Bool("version", false, "print CPU feature diagnostics and exit")
	)
	flag.Parse()

	if *version {
		printDiagnostics()
		return
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("lzf: reading stdin: %v", err)
	}

	if *decompress {
		if *outLen <= 0 {
			log.Fatalf("lzf: -n must be a positive decompressed length when using -d")
		}

		out, err := lzf.Decompress(input, lzf.DefaultDecompressOptions(*outLen))
		if err != nil {
			log.Fatalf("lzf: decompress: %v", err)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("lzf: writing stdout: %v", err)
		}
		return
	}

	out, err := lzf.Compress(input)
	if err != nil {
		log.Fatalf("lzf: compress: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("lzf: writing stdout: %v", err)
	}
}

// printDiagnostics reports the CPU feature set detected on this machine.
// The codec itself never branches on these flags — its hashing and offset
// arithmetic must stay bit-exact with the reference implementation — this
// is informational only, the same "what can this machine do" line other
// codec CLIs in the ecosystem print before doing real work.
func printDiagnostics() {
	fmt.Printf("lzf CPU diagnostics\n")
	fmt.Printf("  arch:     %s\n", runtime.GOARCH)
	fmt.Printf("  SSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  SSE4.1:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  AVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  AVX512F:  %v\n", cpu.X86.HasAVX512F)
}
