//go:build !(amd64 || arm64) || nounsafe

package proto

import "github.com/go-faster/errors"

// EncodeColumn encodes Int32 rows to *Buffer.
func (c ColInt32) EncodeColumn(b *Buffer) {
	for _, v := range c {
		b.PutInt32(v)
	}
}

// DecodeColumn decodes Int32 rows from *Reader.
func (c *ColInt32) DecodeColumn(r *Reader, rows int) error {
	start := len(*c)
	for i := 0; i < rows; i++ {
		v, err := r.Int32()
		if err != nil {
			*c = (*c)[:start]
			return errors.Wrapf(err, "[%d]: read", i)
		}
		c.Append(v)
	}
	return nil
}
