package bytescan

import (
	"encoding/binary"
	"unsafe"
)

// This file is the only place in the package that touches unsafe. The wide
// scanners are expressed in terms of these primitives: a raw base pointer,
// an alignment query, and little-endian word assembly at a signed offset
// from the base.
//
// Safety argument, stated once for every call site: a load of width w
// (4, 8 or 16 bytes) issued at a w-aligned address lies entirely inside one
// w-aligned block. Callers only issue such loads when at least one byte of
// the block is a valid byte of the haystack, so the whole block is on the
// same memory page as that byte (pages are w-aligned and larger than w),
// and the load cannot fault. The one unaligned load (IndexPairSWAR64's
// offset-by-one read) is paired with an aligned load one byte to its right
// and never reaches past it.
//
// Lane order: byte base+off+k occupies bits 8k..8k+7 of the result on every
// architecture, because assembly goes through binary.LittleEndian. On
// little-endian targets this compiles to a plain load.

// base returns the address of the first byte of b. The caller must have
// ruled out an empty slice first.
func base(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}

// misalign reports how many bytes p+off sits past the previous n-byte
// boundary. n must be a power of two.
func misalign(p unsafe.Pointer, off, n int) int {
	return int((uintptr(p) + uintptr(off)) & uintptr(n-1))
}

// load32 assembles the 4 bytes at p+off. off may be negative and the bytes
// need not belong to the slice p was derived from; see the block argument
// above.
//
//go:nocheckptr
func load32(p unsafe.Pointer, off int) uint32 {
	return binary.LittleEndian.Uint32(unsafe.Slice((*byte)(unsafe.Add(p, off)), 4))
}

// load64 assembles the 8 bytes at p+off. Same contract as load32.
//
//go:nocheckptr
func load64(p unsafe.Pointer, off int) uint64 {
	return binary.LittleEndian.Uint64(unsafe.Slice((*byte)(unsafe.Add(p, off)), 8))
}
