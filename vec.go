package bytescan

import (
	"math/bits"
	"unsafe"
)

// 16-byte block scanners. The vector capability the family needs is small:
// broadcast a byte, compare 16 lanes for equality, extract one bit per lane
// into an integer mask with lane 0 in bit 0. eqMask128 provides exactly
// that on two 64-bit halves, so the scanners read like their SIMD
// counterparts (PCMPEQB + PMOVMSKB) and an assembly backend could replace
// eqMask128 without touching them.

// gatherHigh8 compresses the high bit of each of the 8 lanes of m into the
// low 8 bits of the result, lane 0 in bit 0. m must have only lane high
// bits set, as produced by zeroLanes64. The multiply sums each lane bit
// into the top byte: lane k's bit lands at position 56+k, with no carries
// in between because no two partial products collide there.
func gatherHigh8(m uint64) uint32 {
	const magic = 0x0102040810204080
	return uint32(((m >> 7) * magic) >> 56)
}

// eqMask128 compares the 16 bytes of the block at p+off against the
// replicated pattern byte and returns a 16-bit lane mask. The block is read
// as two 8-byte words; when off is 16-aligned both words sit inside one
// 16-byte block, which keeps the page-safety argument of load.go intact.
func eqMask128(p unsafe.Pointer, off int, pattern uint64) uint32 {
	lo := zeroLanes64(load64(p, off) ^ pattern)
	hi := zeroLanes64(load64(p, off+8) ^ pattern)
	return gatherHigh8(lo) | gatherHigh8(hi)<<8
}

// IndexByteVec128 returns the offset of the first occurrence of needle in
// haystack, or NotFound. Mixed access pattern: bytes one at a time to
// 16-byte alignment, then aligned 16-byte blocks. The final block may read
// past the slice but never past its own 16-byte block; out-of-range lanes
// are rejected by the bounds check.
func IndexByteVec128(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return NotFound
	}
	p := base(haystack)
	i := 0
	for {
		if haystack[i] == needle {
			return i
		}
		i++
		if i >= n {
			return NotFound
		}
		if misalign(p, i, 16) == 0 {
			break
		}
	}
	pattern := broadcast64(needle)
	for ; i < n; i += 16 {
		if m := eqMask128(p, i, pattern); m != 0 {
			if r := i + bits.TrailingZeros32(m); r < n {
				return r
			}
			return NotFound
		}
	}
	return NotFound
}

// IndexByteVec128Aligned returns the offset of the first occurrence of
// needle in haystack, or NotFound. Pure access pattern: only aligned
// 16-byte blocks, the first up to 15 bytes before the slice. The leading
// lanes are stripped from the first block's mask so they cannot match; a
// 16-byte aligned block fits inside any page containing one of its bytes,
// so neither end of the scan can fault.
func IndexByteVec128Aligned(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return NotFound
	}
	p := base(haystack)
	shift := misalign(p, 0, 16)
	pattern := broadcast64(needle)
	amask := uint32(0xffff) << shift
	for i := -shift; i < n; i += 16 {
		if m := eqMask128(p, i, pattern) & amask; m != 0 {
			if r := i + bits.TrailingZeros32(m); r < n {
				return r
			}
			return NotFound
		}
		amask = 0xffff
	}
	return NotFound
}
