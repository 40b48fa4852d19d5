package bytescan

// IndexByteScalar returns the offset of the first occurrence of needle in
// haystack, or NotFound. It reads one byte at a time and never touches
// memory outside the slice; the other variants are tested against it.
func IndexByteScalar(haystack []byte, needle byte) int {
	for i := 0; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return NotFound
}

// IndexPairScalar returns the offset of the first occurrence of the byte
// pair first, second in haystack, or NotFound. The reference scanner for
// the pair variants.
func IndexPairScalar(haystack []byte, first, second byte) int {
	for i := 0; i < len(haystack)-1; i++ {
		if haystack[i] == first && haystack[i+1] == second {
			return i
		}
	}
	return NotFound
}
