package proto

import (
	"bytes"
	"io"
)

// Buffer implements packed Int32 encoding.
type Buffer struct {
	Buf []byte
}

// Reader returns new *Reader from *Buffer.
func (b *Buffer) Reader() *Reader {
	return NewReader(bytes.NewReader(b.Buf))
}

// Ensure Buf length.
func (b *Buffer) Ensure(n int) {
	b.Buf = append(b.Buf[:0], make([]byte, n)...)
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(b.Buf) == 0 {
		return 0, io.EOF
	}
	n = copy(p, b.Buf)
	b.Buf = b.Buf[n:]
	return n, nil
}

// PutRaw writes v as raw bytes to buffer.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

func (b *Buffer) PutUInt32(x uint32) {
	buf := make([]byte, 32/8)
	bin.PutUint32(buf, x)
	b.Buf = append(b.Buf, buf...)
}

func (b *Buffer) PutInt32(x int32) {
	b.PutUInt32(uint32(x))
}
