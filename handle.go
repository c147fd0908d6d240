package hato

import (
	"cmp"
	"fmt"
)

// Width is the set of unsigned integer types usable for a Handle's index and
// offset fields.
//
// The choice trades capacity against handle size: uint32+uint32 yields an
// 8-byte handle addressing up to ~4 GiB per shape buffer, uint64+uint64 a
// 16-byte handle with no practical bound, uint8+uint16 a 3-byte handle for
// tightly bounded object sets.
type Width interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Handle identifies a value stored in a Hato as an opaque
// (shape-buffer index, byte offset) pair.
//
// Handles are pure values: copy them freely, compare them with ==, sort them
// with Compare. They carry no generation counter; see the ABA note in the
// package documentation.
type Handle[X, O Width] struct {
	index  X
	offset O
}

// Compare orders handles lexicographically by (buffer index, byte offset).
// Visiting many handles of mixed shapes in this order keeps each buffer's
// dispatch table and data hot, improving branch-target prediction and cache
// locality. It is an optimization, not a correctness requirement.
func (h Handle[X, O]) Compare(other Handle[X, O]) int {
	if c := cmp.Compare(h.index, other.index); c != 0 {
		return c
	}
	return cmp.Compare(h.offset, other.offset)
}

// String implements fmt.Stringer for debugging.
func (h Handle[X, O]) String() string {
	return fmt.Sprintf("hato.Handle(buffer=%d, offset=%d)", uint64(h.index), uint64(h.offset))
}

// maxOf returns the largest value representable by the unsigned type U.
func maxOf[U Width]() uint64 {
	var zero U
	return uint64(^zero)
}
