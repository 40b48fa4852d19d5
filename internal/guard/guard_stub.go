//go:build !unix

package guard

import "errors"

// ErrUnsupported is returned by New on platforms without mmap/mprotect;
// callers skip guard-page tests there.
var ErrUnsupported = errors.New("guard: page protection not supported on this platform")

type Buffer struct{}

func New() (*Buffer, error) { return nil, ErrUnsupported }

func (b *Buffer) Page() []byte { return nil }

func (b *Buffer) AtStart(n int) []byte { return nil }

func (b *Buffer) AtEnd(n int) []byte { return nil }

func (b *Buffer) Close() error { return nil }
