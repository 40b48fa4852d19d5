package bytescan

import "math/bits"

// SWAR pair scanners. A pair match needs the first byte at offset r and the
// second at r+1, so each step derives two lane masks, one per pattern byte,
// offset by one lane, and ANDs them. Both masks come from zeroLanes64: with
// the subtract detector a spurious first-byte bit could line up with a real
// second-byte bit and report a pair that is not there.

// IndexPairSWAR64 returns the offset of the first occurrence of the byte
// pair first, second in haystack, or NotFound. Mixed access pattern: pairs
// are checked one at a time until the read pointer is 8-byte aligned, then
// each step loads the aligned word at i for the second byte and an
// unaligned word at i-1 for the first byte. The unaligned load never
// reaches past the aligned one, so every byte it touches is covered by the
// aligned load's block; note the margin is one byte narrower than in the
// fully aligned variants, which matters only on pages smaller than a word.
func IndexPairSWAR64(haystack []byte, first, second byte) int {
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
		if misalign(p, i, 8) == 0 {
			break
		}
	}
	if i >= n-1 {
		return NotFound
	}
	firstPat := broadcast64(first)
	secondPat := broadcast64(second)
	for ; i < n; i += 8 {
		firsts := zeroLanes64(load64(p, i-1) ^ firstPat)
		seconds := zeroLanes64(load64(p, i) ^ secondPat)
		if m := firsts & seconds; m != 0 {
			if r := i - 1 + bits.TrailingZeros64(m)/8; r < n-1 {
				return r
			}
			return NotFound
		}
	}
	return NotFound
}

// IndexPairSWAR64Aligned returns the offset of the first occurrence of the
// byte pair first, second in haystack, or NotFound. Pure access pattern:
// only aligned 8-byte loads, the first up to 7 bytes before the slice with
// its leading lanes masked. Both pattern bytes are matched against the same
// word; a first-byte hit in lane k pairs with a second-byte hit in lane k+1
// by shifting the first-byte mask up one lane, and a hit in the top lane is
// carried into lane 0 of the next iteration so matches straddling a word
// boundary are still seen.
func IndexPairSWAR64Aligned(haystack []byte, first, second byte) int {
	n := len(haystack)
	if n < 2 {
		return NotFound
	}
	p := base(haystack)
	shift := misalign(p, 0, 8)
	firstPat := broadcast64(first)
	secondPat := broadcast64(second)
	highs := uint64(hi64) << (shift * 8)
	var carry uint64
	for i := -shift; i < n; i += 8 {
		w := load64(p, i)
		firsts := zeroLanes64(w^firstPat) & highs
		seconds := zeroLanes64(w ^ secondPat)
		carry += firsts << 8
		if m := carry & seconds; m != 0 {
			if r := i - 1 + bits.TrailingZeros64(m)/8; r < n-1 {
				return r
			}
			return NotFound
		}
		carry = firsts >> 56
		highs = hi64
	}
	return NotFound
}
