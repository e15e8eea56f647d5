// SPDX-License-Identifier: MIT

package pvec

// ForEach calls fn for each element of v in index order, stopping early if
// fn returns false.
func ForEach[E any](v Vector[E], fn func(i int, e E) bool) {
	if v.size == 0 {
		return
	}
	i := 0
	walk(v.root, v.shift, &i, int(v.size), fn)
}

// walk visits every populated slot of n (a node at the given shift) in
// ascending order, advancing *i for each element actually yielded and
// stopping as soon as fn returns false or *i reaches size.
func walk[E any](n *node[E], shift uint, i *int, size int, fn func(int, E) bool) bool {
	if shift == 0 {
		for k := uint(0); k < branch && *i < size; k++ {
			e, ok := n.elemAt(k)
			if !ok {
				continue
			}
			if !fn(*i, e) {
				return false
			}
			*i = *i + 1
		}
		return true
	}

	for k := uint(0); k < branch && *i < size; k++ {
		child := n.childAt(k)
		if child == nil {
			continue
		}
		if !walk(child, shift-bits, i, size, fn) {
			return false
		}
	}
	return true
}
