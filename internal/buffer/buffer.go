package buffer

// Buffer accumulates bytes up to a hard limit. Anything beyond the limit is
// silently cut off, the caller is expected to check Full.
type Buffer struct {
	memory  []byte
	maxSize int
}

func New(initialSize, maxSize int) *Buffer {
	return &Buffer{
		memory:  make([]byte, 0, min(initialSize, maxSize)),
		maxSize: maxSize,
	}
}

// Fill writes as much of the data as fits and returns how many bytes it took.
func (b *Buffer) Fill(data []byte) (n int) {
	n = min(len(data), b.Remaining())
	b.memory = append(b.memory, data[:n]...)

	return n
}

// Remaining returns how many bytes can still be written.
func (b *Buffer) Remaining() int {
	return b.maxSize - len(b.memory)
}

// Full reports whether the limit is reached.
func (b *Buffer) Full() bool {
	return b.Remaining() <= 0
}

func (b *Buffer) Len() int {
	return len(b.memory)
}

// Bytes returns the accumulated data WITHOUT COPYING.
func (b *Buffer) Bytes() []byte {
	return b.memory
}
