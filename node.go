// SPDX-License-Identifier: MIT

package pvec

import "github.com/bits-and-blooms/bitset"

// node is one level of the trie: a fixed-width array of branch slots. A
// slot's meaning is implicit from the node's depth (tracked by the caller
// via shift): at an internal level a populated slot holds a *node[E]
// child, at the leaf level (shift == 0) it holds an element of type E.
// Slots are stored as any so the same node type serves both levels.
//
// occ tracks which slots are populated, so isEmpty and the partial-clear
// steps of Pop and RightSlice run without scanning all branch slots.
//
// owner is unused by the persistent operations (Update, Push, Pop,
// RightSlice) and always nil on nodes they create. It is used only by
// Builder: a node whose owner matches the current Builder's tag may be
// mutated in place instead of cloned.
type node[E any] struct {
	slots [branch]any
	occ   *bitset.BitSet
	owner *int
}

// newNode allocates an empty node: all slots nil, no occupancy bits set.
func newNode[E any]() *node[E] {
	return &node[E]{occ: bitset.New(branch)}
}

// isEmpty reports whether n has no populated slots. No internal node is
// ever left empty once it is reachable from a published Vector.
func (n *node[E]) isEmpty() bool {
	if n == nil {
		return true
	}
	return n.occ.None()
}

// clone returns a shallow copy of n: a new node whose slot array and
// occupancy bitmap are independent, but whose slot contents (child
// pointers, or elements) still point at the same shared subtrees/values as
// n. This is the unit of path-copy-on-write: every update operation clones
// exactly the nodes on its root-to-leaf path and leaves everything else
// shared with the vector it was derived from.
func (n *node[E]) clone() *node[E] {
	return &node[E]{
		slots: n.slots, // array value copy
		occ:   n.occ.Clone(),
	}
}

// childAt returns the child node stored at slot i, or nil if the slot is
// empty. Only meaningful at an internal level (shift > 0).
func (n *node[E]) childAt(i uint) *node[E] {
	if !n.occ.Test(i) {
		return nil
	}
	return n.slots[i].(*node[E])
}

// setChild installs child as the (already cloned-or-created) child at
// slot i.
func (n *node[E]) setChild(i uint, child *node[E]) {
	n.slots[i] = child
	n.occ.Set(i)
}

// elemAt returns the element stored at slot i and whether the slot is
// populated. Only meaningful at the leaf level (shift == 0).
func (n *node[E]) elemAt(i uint) (e E, ok bool) {
	if !n.occ.Test(i) {
		return e, false
	}
	return n.slots[i].(E), true
}

// setElem stores e at slot i.
func (n *node[E]) setElem(i uint, e E) {
	n.slots[i] = e
	n.occ.Set(i)
}

// clear empties slot i, regardless of whether it held a child or an
// element.
func (n *node[E]) clear(i uint) {
	var zero E
	n.slots[i] = zero
	n.occ.Clear(i)
}

// clearFrom empties every slot in [from, branch), used by RightSlice's
// path-copy-with-clearing step. It always clears
// the strict suffix starting at from, never one slot short or long.
func (n *node[E]) clearFrom(from uint) {
	for i := from; i < branch; i++ {
		n.clear(i)
	}
}
