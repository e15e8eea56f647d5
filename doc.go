// SPDX-License-Identifier: MIT

// Package pvec implements a persistent indexed sequence: an immutable
// ordered collection of elements supporting logarithmic indexed lookup,
// update, append, pop, and right-truncation, with structural sharing
// between successive versions.
//
// The data model is a radix-balanced trie keyed by the sequence index,
// interpreted as a base-B positional numeral, where B = 2^b for the
// build-time branch width b (see config.go). Three components make up the
// package:
//
//   - node, a fixed-width array of B slots, each holding either a child
//     node, an element, or nothing;
//   - Vector, a small immutable header (size, shift, root) identifying one
//     version of the sequence;
//   - the five persistent operations (Nth, Update, Push, Pop, RightSlice),
//     pure functions that walk one header's trie and return a new header
//     sharing every untouched subtree with the old one.
//
// All operations are pure: an input Vector is never mutated, and every
// node reachable from a Vector once it has been returned to a caller stays
// immutable for the lifetime of the program. Reclaiming nodes no longer
// reachable from any live Vector is left to the Go runtime's garbage
// collector.
package pvec
