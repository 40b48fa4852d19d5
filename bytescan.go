// Package bytescan provides a family of interchangeable routines that find
// the first occurrence of a fixed 1-byte or 2-byte pattern in a byte slice.
//
// Every routine implements the same contract: given a haystack and a pattern
// that is a constant from the caller's point of view, return the smallest
// offset of a complete match, or NotFound. The variants differ only in how
// they read memory:
//
//   - IndexByteScalar / IndexPairScalar step one byte at a time and define
//     the ground truth.
//   - The SWAR family (IndexByteSWAR32, IndexByteSWAR64, IndexPairSWAR64 and
//     their Aligned forms) reads 4 or 8 bytes per step and detects matching
//     byte lanes with bitwise arithmetic.
//   - The Vec128 family reads 16-byte blocks and reduces per-lane equality
//     to a 16-bit mask, one bit per lane.
//   - IndexByteHybrid chains scalar, SWAR32 and Vec128 strides to reach each
//     alignment level cheaply.
//
// The wide variants may read a few bytes outside the slice, but only inside
// the aligned 4/8/16-byte block that also contains a valid byte of the
// slice. Such a block never crosses a page boundary, so the reads cannot
// fault, and out-of-range lanes are masked or bounds-checked so they never
// produce a reported match. The "Aligned" forms issue only aligned loads and
// may read before the start of the slice under the same block argument; the
// others start with a scalar prologue and only over-read past the end.
//
// All variants return identical results for identical inputs; the tests
// enforce this against the scalar scanners, guard pages and randomized
// buffers.
package bytescan

import "golang.org/x/sys/cpu"

// NotFound is returned when the pattern does not occur in the haystack,
// including whenever the haystack is shorter than the pattern. It is
// negative and therefore distinguishable from every valid offset.
const NotFound = -127

// hasVec128 gates the 16-byte block family in the facade. The block
// scanners are pure Go, but their two-word loads and mask math only beat
// the 64-bit SWAR stride on machines with 128-bit vector units, where the
// compiler has wide registers to work with.
var hasVec128 = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

// IndexByte returns the offset of the first occurrence of needle in
// haystack, or NotFound. It picks the fastest variant for the input: short
// haystacks are scanned byte by byte (no setup cost to amortize), longer
// ones go to the hybrid block scanner when 128-bit SIMD is available and to
// the 64-bit SWAR scanner otherwise.
func IndexByte(haystack []byte, needle byte) int {
	if len(haystack) < 16 {
		return IndexByteScalar(haystack, needle)
	}
	if hasVec128 {
		return IndexByteHybrid(haystack, needle)
	}
	return IndexByteSWAR64(haystack, needle)
}

// IndexPair returns the offset of the first occurrence of the two
// consecutive bytes first, second in haystack, or NotFound. A trailing
// first byte with nothing after it does not match. Variant selection
// follows IndexByte.
func IndexPair(haystack []byte, first, second byte) int {
	if len(haystack) < 16 {
		return IndexPairScalar(haystack, first, second)
	}
	if hasVec128 {
		return IndexPairVec128(haystack, first, second)
	}
	return IndexPairSWAR64(haystack, first, second)
}
