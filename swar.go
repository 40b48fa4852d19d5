package bytescan

import "math/bits"

// SWAR (SIMD within a register) single-byte scanners. The trick, due to
// Alan Mycroft's zero-byte finder: XOR the word with the needle replicated
// into every byte lane, so matching lanes become zero, then detect zero
// lanes with bitwise arithmetic and convert the lowest set high bit back to
// a byte offset.
//
// Two zero-lane detectors are used. hasZero is the classic subtract form:
// cheap, but a borrow out of a zero lane can set spurious high bits in the
// lanes above it, so only its lowest set bit means anything. That is exactly
// the bit the mixed scanners consume, so they use it. The Aligned scanners
// mask lanes out of the first word, which would let a spurious bit become
// the lowest visible one, so they use zeroLanes, the carry-free exact form:
// slightly more expensive, but every bit of its result is trustworthy. The
// pair scanners in swar_pair.go combine bits from two words and need
// zeroLanes for the same reason.

const (
	lo32 = 0x01010101
	hi32 = 0x80808080
	lo64 = 0x0101010101010101
	hi64 = 0x8080808080808080
)

func broadcast32(c byte) uint32 { return uint32(c) * lo32 }
func broadcast64(c byte) uint64 { return uint64(c) * lo64 }

// hasZero32 is nonzero iff v has a zero byte lane. The lowest set bit is
// the high bit of the first zero lane; higher bits may be spurious.
func hasZero32(v uint32) uint32 { return (v - lo32) & ^v & hi32 }

// hasZero64 is the 8-lane form of hasZero32.
func hasZero64(v uint64) uint64 { return (v - lo64) & ^v & hi64 }

// zeroLanes32 sets the high bit of exactly the zero byte lanes of v.
// No false positives: the per-lane add (v&0x7f)+0x7f cannot carry into the
// next lane, unlike the subtraction in hasZero32.
func zeroLanes32(v uint32) uint32 {
	const lo7 = ^uint32(hi32)
	return ^(((v & lo7) + lo7) | v | lo7)
}

// zeroLanes64 is the 8-lane form of zeroLanes32.
func zeroLanes64(v uint64) uint64 {
	const lo7 = ^uint64(hi64)
	return ^(((v & lo7) + lo7) | v | lo7)
}

// IndexByteSWAR32 returns the offset of the first occurrence of needle in
// haystack, or NotFound. Mixed access pattern: bytes are scanned one at a
// time until the read pointer is 4-byte aligned, then whole aligned words.
// The last word may read up to 3 bytes past the slice; it starts at or
// before the last valid byte's aligned block, so it stays on a mapped page,
// and any lane at or past len(haystack) is rejected by the bounds check
// before returning.
func IndexByteSWAR32(haystack []byte, needle byte) int {
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
		if misalign(p, i, 4) == 0 {
			break
		}
	}
	pattern := broadcast32(needle)
	for ; i < n; i += 4 {
		if m := hasZero32(load32(p, i) ^ pattern); m != 0 {
			if r := i + bits.TrailingZeros32(m)/8; r < n {
				return r
			}
			return NotFound
		}
	}
	return NotFound
}

// IndexByteSWAR32Aligned returns the offset of the first occurrence of
// needle in haystack, or NotFound. Pure access pattern: every load is a
// 4-byte aligned word, including the first, which may begin up to 3 bytes
// before the slice. Those leading bytes share the slice's first aligned
// block, hence its page, so the read is safe; their lanes are masked out of
// the match bits so they can never produce a hit.
func IndexByteSWAR32Aligned(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return NotFound
	}
	p := base(haystack)
	shift := misalign(p, 0, 4)
	pattern := broadcast32(needle)
	highs := uint32(hi32) << (shift * 8)
	for i := -shift; i < n; i += 4 {
		if m := zeroLanes32(load32(p, i)^pattern) & highs; m != 0 {
			if r := i + bits.TrailingZeros32(m)/8; r < n {
				return r
			}
			return NotFound
		}
		highs = hi32
	}
	return NotFound
}

// IndexByteSWAR64 is IndexByteSWAR32 at 8-byte width: scalar prologue to
// 8-byte alignment, then aligned 8-byte words with the same tail bounds
// check.
func IndexByteSWAR64(haystack []byte, needle byte) int {
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
		if misalign(p, i, 8) == 0 {
			break
		}
	}
	pattern := broadcast64(needle)
	for ; i < n; i += 8 {
		if m := hasZero64(load64(p, i) ^ pattern); m != 0 {
			if r := i + bits.TrailingZeros64(m)/8; r < n {
				return r
			}
			return NotFound
		}
	}
	return NotFound
}

// IndexByteSWAR64Aligned is IndexByteSWAR32Aligned at 8-byte width: only
// aligned 8-byte loads, first word up to 7 bytes early with its leading
// lanes masked.
func IndexByteSWAR64Aligned(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return NotFound
	}
	p := base(haystack)
	shift := misalign(p, 0, 8)
	pattern := broadcast64(needle)
	highs := uint64(hi64) << (shift * 8)
	for i := -shift; i < n; i += 8 {
		if m := zeroLanes64(load64(p, i)^pattern) & highs; m != 0 {
			if r := i + bits.TrailingZeros64(m)/8; r < n {
				return r
			}
			return NotFound
		}
		highs = hi64
	}
	return NotFound
}
