// SPDX-License-Identifier: MIT

package pvec

// Vector is an immutable indexed sequence identified by its header triple
// (size, shift, root). The zero value is the empty vector and is ready to
// use.
//
// Vector values are three machine words and are passed and returned by
// value throughout this package's API. Every method treats its receiver
// as immutable and returns a new Vector sharing every subtree it did not
// need to touch — Update, Push, Pop and RightSlice never observe or
// modify the Vector they were called on.
type Vector[E any] struct {
	size  uint32
	shift uint
	root  *node[E]
}

// Create returns the empty vector. Equivalent to the zero value; exported
// so callers have an explicit constructor alongside Push/Pop/Update.
func Create[E any]() Vector[E] {
	return Vector[E]{}
}

// Count returns the number of elements in v.
func (v Vector[E]) Count() int {
	return int(v.size)
}

// leafFor descends from root along the radix digits of i and returns the
// leaf node holding index i. Used by Nth.
func (v Vector[E]) leafFor(i uint32) *node[E] {
	n := v.root
	for s := v.shift; s > 0; s -= bits {
		n = n.childAt(uint(i>>s) & mask)
	}
	return n
}

// Nth returns the element at index i. It fails with ErrIndexOutOfRange if
// i is not in [0, Count()).
func (v Vector[E]) Nth(i uint32) (e E, err error) {
	if i >= v.size {
		return e, ErrIndexOutOfRange
	}
	n := v.leafFor(i)
	e, _ = n.elemAt(uint(i) & mask)
	return e, nil
}

// Peek returns the last element of v. It fails with ErrEmpty if v has no
// elements; otherwise it is equivalent to Nth(Count()-1).
func (v Vector[E]) Peek() (e E, err error) {
	if v.size == 0 {
		return e, ErrEmpty
	}
	return v.Nth(v.size - 1)
}
