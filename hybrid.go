package bytescan

import "math/bits"

// IndexByteHybrid returns the offset of the first occurrence of needle in
// haystack, or NotFound. A performance composition of the mixed scanners:
// bytes one at a time to 4-byte alignment, aligned 4-byte SWAR words to
// 16-byte alignment, then aligned 16-byte blocks. Each stage's loads stay
// inside the aligned block of a valid byte, so the safety argument is that
// of IndexByteSWAR32 followed by IndexByteVec128; results are identical to
// both.
func IndexByteHybrid(haystack []byte, needle byte) int {
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
	pattern32 := broadcast32(needle)
	for i < n {
		if m := hasZero32(load32(p, i) ^ pattern32); m != 0 {
			if r := i + bits.TrailingZeros32(m)/8; r < n {
				return r
			}
			return NotFound
		}
		i += 4
		if misalign(p, i, 16) == 0 {
			break
		}
	}
	if i >= n {
		return NotFound
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
