package intarray

// View is a read-only view over int32 elements owned elsewhere.
//
// Views never copy. Writes to the backing memory are visible through the
// view and through every view derived from it by Tail.
type View struct {
	members []int32
}

// Of returns view over members.
//
// The view borrows members: it must not outlive the backing array.
func Of(members []int32) View {
	return View{members: members[:len(members):len(members)]}
}

// Len returns number of elements in view.
func (v View) Len() int { return len(v.members) }

// Empty reports whether view has no elements.
func (v View) Empty() bool { return len(v.members) == 0 }

// At returns i-th element.
func (v View) At(i int) int32 { return v.members[i] }

// First returns element at index 0.
//
// Panics with ErrEmpty if view is empty.
func (v View) First() int32 {
	if v.Empty() {
		panic(ErrEmpty)
	}
	return v.members[0]
}

// Tail returns view over all elements except the first one, sharing
// backing memory with v.
//
// Panics with ErrEmpty if view is empty.
func (v View) Tail() View {
	if v.Empty() {
		panic(ErrEmpty)
	}
	return View{members: v.members[1:]}
}

// Slice returns elements of view. Returned slice aliases backing memory.
func (v View) Slice() []int32 { return v.members }
