package proto

import (
	"bufio"
	"io"

	"github.com/go-faster/errors"
)

// Reader implements packed Int32 decoding from buffered reader.
type Reader struct {
	s *bufio.Reader
	b *Buffer
}

// ReadFull reads exactly len(buf) bytes.
func (r *Reader) ReadFull(buf []byte) error {
	if _, err := io.ReadFull(r.s, buf); err != nil {
		return errors.Wrap(err, "read")
	}
	return nil
}

// Int32 decodes int32 value.
func (r *Reader) Int32() (int32, error) {
	r.b.Ensure(4)
	if err := r.ReadFull(r.b.Buf); err != nil {
		return 0, err
	}
	return int32(bin.Uint32(r.b.Buf)), nil
}

const defaultReaderSize = 1024 // 1kb

// NewReader initializes new Reader from provided io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		s: bufio.NewReaderSize(r, defaultReaderSize),
		b: &Buffer{},
	}
}
