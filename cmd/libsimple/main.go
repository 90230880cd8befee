// Command libsimple is a C shared library exposing intarray over a flat C ABI.
//
// Build:
//
//	go build -buildmode=c-shared -o libsimple.so ./cmd/libsimple
//
// Exported symbols:
//
//	int32_t  add_one(int32_t v);
//	int32_t  head(const IntArray *a);
//	IntArray *tail(const IntArray *a);
//	IntArray *int_array_new(int32_t length, const int32_t *members);
//	void     int_array_free(IntArray *a);
//
// Calling head or tail on an empty array panics with "empty view", which
// aborts the process. Descriptors returned by tail and int_array_new are
// owned by the caller and must be released with int_array_free, which
// never touches members.
package main

/*
#include <stdlib.h>
#include "intarray.h"
*/
import "C"

import (
	"unsafe"

	"github.com/go-faster/intarray"
)

// C.IntArray and intarray.Descriptor must have identical layout.
var (
	_ [unsafe.Sizeof(C.IntArray{}) - unsafe.Sizeof(intarray.Descriptor{})]struct{}
	_ [unsafe.Sizeof(intarray.Descriptor{}) - unsafe.Sizeof(C.IntArray{})]struct{}
	_ [unsafe.Offsetof(C.IntArray{}.members) - unsafe.Offsetof(intarray.Descriptor{}.Members)]struct{}
	_ [unsafe.Offsetof(intarray.Descriptor{}.Members) - unsafe.Offsetof(C.IntArray{}.members)]struct{}
)

func descriptor(a *C.IntArray) *intarray.Descriptor {
	return (*intarray.Descriptor)(unsafe.Pointer(a))
}

//export add_one
func add_one(v C.int32_t) C.int32_t {
	return C.int32_t(intarray.AddOne(int32(v)))
}

//export head
func head(a *C.IntArray) C.int32_t {
	return C.int32_t(descriptor(a).First())
}

//export tail
func tail(a *C.IntArray) *C.IntArray {
	t := descriptor(a).Tail()
	return newIntArray(t.Length, unsafe.Pointer(t.Members))
}

//export int_array_new
func int_array_new(length C.int32_t, members *C.int32_t) *C.IntArray {
	return newIntArray(int32(length), unsafe.Pointer(members))
}

//export int_array_free
func int_array_free(a *C.IntArray) {
	C.free(unsafe.Pointer(a))
}

func main() {}
