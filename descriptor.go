package intarray

import (
	"unsafe"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
)

const (
	elemSize  = unsafe.Sizeof(int32(0))
	elemAlign = unsafe.Alignof(int32(0))
)

// Descriptor mirrors the C array descriptor:
//
//	typedef struct IntArray {
//		int32_t length;
//		const int32_t *members;
//	} IntArray;
//
// Field order and types are part of the ABI and must not change.
//
// Descriptor does not own Members. Members must address at least Length
// readable elements, which is not checked. When Members points into Go
// memory, keep one spare element after the described run: Tail of a
// one-element descriptor advances Members past the last element.
type Descriptor struct {
	Length  int32
	Members *int32
}

// Describe returns descriptor of v.
func Describe(v View) Descriptor {
	return Descriptor{
		Length:  int32(v.Len()),
		Members: unsafe.SliceData(v.members),
	}
}

// View returns elements described by d.
//
// Panics with ErrNegativeLength if d.Length < 0.
func (d *Descriptor) View() View {
	switch {
	case d.Length < 0:
		panic(ErrNegativeLength)
	case d.Length == 0:
		return View{}
	}
	return View{members: unsafe.Slice(d.Members, d.Length)}
}

// First returns element at index 0.
//
// Panics with ErrEmpty if d.Length is zero.
func (d *Descriptor) First() int32 {
	return d.View().First()
}

// Tail returns descriptor of all elements except the first one.
//
// No elements are copied: result has Length-1 elements and Members advanced
// by one element, sharing memory with d. Panics with ErrEmpty if d.Length
// is zero.
func (d *Descriptor) Tail() Descriptor {
	rest := d.View().Tail()
	return Descriptor{
		Length:  int32(rest.Len()),
		Members: (*int32)(unsafe.Add(unsafe.Pointer(d.Members), elemSize)),
	}
}

// Validate reports every condition that makes d unusable.
//
// Validate cannot detect Members addressing fewer than Length elements.
func (d Descriptor) Validate() error {
	var err error
	if d.Length < 0 {
		err = multierr.Append(err, errors.Wrapf(ErrNegativeLength, "length %d", d.Length))
	}
	if d.Length > 0 && d.Members == nil {
		err = multierr.Append(err, errors.Errorf("nil members for length %d", d.Length))
	}
	if p := uintptr(unsafe.Pointer(d.Members)); p%elemAlign != 0 {
		err = multierr.Append(err, errors.Errorf("members %#x not aligned to %d", p, elemAlign))
	}
	return err
}
