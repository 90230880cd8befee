package main

/*
#include <stdlib.h>
#include "intarray.h"
*/
import "C"

import "unsafe"

// cIntArray names C.IntArray for code that cannot refer to C directly.
type cIntArray = C.IntArray

// newIntArray allocates descriptor on C heap, so it stays valid after
// return and can be released by the caller with free(3).
func newIntArray(length int32, members unsafe.Pointer) *cIntArray {
	a := (*cIntArray)(C.malloc(C.sizeof_IntArray))
	a.length = C.int32_t(length)
	a.members = (*C.int32_t)(members)
	return a
}

// allocMembers copies vals to C heap. Release with C.free.
func allocMembers(vals []int32) unsafe.Pointer {
	// One spare element, so members+length stays inside the allocation.
	p := C.calloc(C.size_t(len(vals)+1), C.size_t(unsafe.Sizeof(int32(0))))
	copy(unsafe.Slice((*int32)(p), len(vals)), vals)
	return p
}

func freeMembers(p unsafe.Pointer) {
	C.free(p)
}
