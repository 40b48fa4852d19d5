//go:build unix

// Package guard allocates buffers fenced by inaccessible pages, used by the
// scanner tests to turn any out-of-contract read into an immediate fault.
// Three anonymous pages are mapped and the outer two are stripped of all
// access rights; callers place test buffers against either edge of the
// middle page.
package guard

import "golang.org/x/sys/unix"

// Buffer is one readable, writable page with a PROT_NONE page on each side.
type Buffer struct {
	mem  []byte
	page int
}

// New maps the three pages and arms the guards.
func New() (*Buffer, error) {
	page := unix.Getpagesize()
	mem, err := unix.Mmap(-1, 0, 3*page, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	if err := unix.Mprotect(mem[:page], unix.PROT_NONE); err != nil {
		unix.Munmap(mem)
		return nil, err
	}
	if err := unix.Mprotect(mem[2*page:], unix.PROT_NONE); err != nil {
		unix.Munmap(mem)
		return nil, err
	}
	return &Buffer{mem: mem, page: page}, nil
}

// Page returns the accessible middle page.
func (b *Buffer) Page() []byte {
	return b.mem[b.page : 2*b.page]
}

// AtStart returns an n-byte window that begins immediately after the
// leading guard page, so a read even one byte before the window faults.
func (b *Buffer) AtStart(n int) []byte {
	return b.mem[b.page : b.page+n]
}

// AtEnd returns an n-byte window that ends immediately before the trailing
// guard page, so a read even one byte past the window faults.
func (b *Buffer) AtEnd(n int) []byte {
	return b.mem[2*b.page-n : 2*b.page]
}

// Close unmaps all three pages.
func (b *Buffer) Close() error {
	return unix.Munmap(b.mem)
}
