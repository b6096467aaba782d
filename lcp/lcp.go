/*
Package lcp computes the length of the longest common prefix of two byte
sequences.

Two forms are provided: ByByte is the plain reference implementation, Chunked
compares machine words and is what the radix set uses. Both return identical
results for every input; a divergence between them is a bug.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lcp

import (
	"encoding/binary"
	"math/bits"
)

// ChunkSize is the number of bytes Chunked compares at once.
const ChunkSize = 8

// Len returns the length of the longest common prefix of a and b.
func Len(a, b []byte) int {
	return Chunked(a, b)
}

// ByByte returns the length of the longest common prefix of a and b,
// comparing one byte at a time.
func ByByte(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Chunked returns the length of the longest common prefix of a and b.
//
// Full 8-byte chunks are loaded as little-endian words. Within a mismatching
// word, the lowest set bit of the XOR belongs to the first differing byte.
// A trailing partial chunk is compared byte-wise.
func Chunked(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for ; i+ChunkSize <= n; i += ChunkSize {
		x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		if x != 0 {
			return i + bits.TrailingZeros64(x)/8
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
