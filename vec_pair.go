package bytescan

import "math/bits"

// 16-byte block pair scanners. As in swar_pair.go, a pair match is the AND
// of a first-byte lane mask shifted up one lane and a second-byte lane
// mask; what differs is how a first-byte hit in the top lane of one block
// reaches lane 0 of the next. Two encodings are in use. IndexPairVec128
// keeps the previous block's raw mask and tests its top bit explicitly
// before combining. IndexPairVec128Carry accumulates the shifted mask into
// a running register whose bit 16 survives the shift-down between
// iterations. They are deliberately independent implementations of the same
// contract and the tests cross-check them against each other.

// IndexPairVec128 returns the offset of the first occurrence of the byte
// pair first, second in haystack, or NotFound. Mixed access pattern with a
// scalar prologue to 16-byte alignment; boundary matches are caught by
// looking back at the previous block's top lane.
func IndexPairVec128(haystack []byte, first, second byte) int {
	n := len(haystack)
	if n < 2 {
		return NotFound
	}
	p := base(haystack)
	i := 0
	for i < n-1 {
		if haystack[i] == first && haystack[i+1] == second {
			return i
		}
		i++
		if misalign(p, i, 16) == 0 {
			break
		}
	}
	if i >= n-1 {
		return NotFound
	}
	firstPat := broadcast64(first)
	secondPat := broadcast64(second)
	var prev uint32
	if haystack[i-1] == first {
		prev = 1 << 15
	}
	for ; i < n; i += 16 {
		firsts := eqMask128(p, i, firstPat)
		seconds := eqMask128(p, i, secondPat)
		if prev&(1<<15) != 0 && seconds&1 != 0 {
			return i - 1
		}
		if m := (firsts << 1) & seconds; m != 0 {
			if r := i - 1 + bits.TrailingZeros32(m); r < n-1 {
				return r
			}
			return NotFound
		}
		prev = firsts
	}
	return NotFound
}

// IndexPairVec128Carry returns the offset of the first occurrence of the
// byte pair first, second in haystack, or NotFound. Same access pattern as
// IndexPairVec128 but with the running-register carry encoding: the
// shifted first-byte mask is added into a register whose surviving bit
// after the end-of-iteration shift is the top-lane carry.
func IndexPairVec128Carry(haystack []byte, first, second byte) int {
	n := len(haystack)
	if n < 2 {
		return NotFound
	}
	p := base(haystack)
	i := 0
	for i < n-1 {
		if haystack[i] == first && haystack[i+1] == second {
			return i
		}
		i++
		if misalign(p, i, 16) == 0 {
			break
		}
	}
	if i >= n-1 {
		return NotFound
	}
	firstPat := broadcast64(first)
	secondPat := broadcast64(second)
	var carry uint32
	if haystack[i-1] == first {
		carry = 1
	}
	for ; i < n; i += 16 {
		carry += eqMask128(p, i, firstPat) << 1
		seconds := eqMask128(p, i, secondPat)
		if m := carry & seconds; m != 0 {
			if r := i - 1 + bits.TrailingZeros32(m); r < n-1 {
				return r
			}
			return NotFound
		}
		carry >>= 16
	}
	return NotFound
}

// IndexPairVec128Aligned returns the offset of the first occurrence of the
// byte pair first, second in haystack, or NotFound. Pure access pattern:
// only aligned 16-byte blocks, the first up to 15 bytes before the slice.
// Uses the running-register carry encoding; pre-slice lanes are stripped
// from the first-byte mask before it enters the register, so a match can
// neither start before the slice nor straddle its first byte.
func IndexPairVec128Aligned(haystack []byte, first, second byte) int {
	n := len(haystack)
	if n < 2 {
		return NotFound
	}
	p := base(haystack)
	shift := misalign(p, 0, 16)
	firstPat := broadcast64(first)
	secondPat := broadcast64(second)
	amask := uint32(0xffff) << shift
	var carry uint32
	for i := -shift; i < n; i += 16 {
		carry += (eqMask128(p, i, firstPat) & amask) << 1
		seconds := eqMask128(p, i, secondPat)
		if m := carry & seconds; m != 0 {
			if r := i - 1 + bits.TrailingZeros32(m); r < n-1 {
				return r
			}
			return NotFound
		}
		carry >>= 16
		amask = 0xffff
	}
	return NotFound
}
