//go:build (amd64 || arm64) && !nounsafe

package proto

import (
	"unsafe"

	"github.com/go-faster/errors"
)

// asBytes reinterprets int32 values as their in-memory bytes.
//
// NB: only valid on little-endian hosts.
func asBytes(v []int32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*4)
}

// EncodeColumn encodes Int32 rows to *Buffer.
func (c ColInt32) EncodeColumn(b *Buffer) {
	b.PutRaw(asBytes(c))
}

// DecodeColumn decodes Int32 rows from *Reader.
func (c *ColInt32) DecodeColumn(r *Reader, rows int) error {
	if rows == 0 {
		return nil
	}
	start := len(*c)
	*c = append(*c, make([]int32, rows)...)
	if err := r.ReadFull(asBytes((*c)[start:])); err != nil {
		*c = (*c)[:start]
		return errors.Wrap(err, "read full")
	}
	return nil
}
