// SPDX-License-Identifier: MIT

package pvec

import "errors"

// ErrIndexOutOfRange is returned by Nth and Update when the supplied index
// does not lie within the vector's current bounds, and by RightSlice when
// the requested length exceeds Count().
var ErrIndexOutOfRange = errors.New("pvec: index out of range")

// ErrEmpty is returned by Peek and Pop when the vector has no elements.
var ErrEmpty = errors.New("pvec: vector is empty")

// ErrCapacityExceeded is returned by Push when the vector already holds
// the maximum representable number of elements (2^32 - 1).
var ErrCapacityExceeded = errors.New("pvec: capacity exceeded")
