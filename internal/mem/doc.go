// Package mem provides aligned raw-byte storage.
//
// # Aligned Allocation
//
// AllocAligned over-allocates and re-slices so the base address satisfies a
// caller-chosen alignment, and Slab keeps that base alignment stable across
// growth-induced reallocation. Byte offsets into a Slab therefore stay valid
// forever; raw pointers obtained via Ptr are invalidated by the next growth.
//
// # Backends
//
// A Slab is backed either by a garbage-collected byte slice (Heap) or by
// anonymous memory mappings outside the Go heap (OffHeap). Off-heap slabs
// must be released with Release; they may only hold pointer-free data.
package mem
