package proto

import (
	"io"

	"github.com/go-faster/errors"
)

// ColInt32 represents packed Int32 column.
type ColInt32 []int32

// Rows returns count of rows in column.
func (c ColInt32) Rows() int {
	return len(c)
}

// Append value to column.
func (c *ColInt32) Append(v int32) {
	*c = append(*c, v)
}

// Reset column to zero rows.
func (c *ColInt32) Reset() {
	*c = (*c)[:0]
}

// DecodeAll decodes rows until r is exhausted.
//
// Trailing bytes that do not form a whole value are an error.
func (c *ColInt32) DecodeAll(r *Reader) error {
	for i := 0; ; i++ {
		v, err := r.Int32()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "[%d]", i)
		}
		c.Append(v)
	}
}
