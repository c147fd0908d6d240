package hato

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/hupe1980/hato/internal/iface"
	"github.com/hupe1980/hato/internal/mem"
)

// Hato is a heterogeneous object arena. Values pushed into it are grouped by
// shape into contiguous byte buffers and addressed through compact handles.
//
// I is the common interface every stored value implements. X and O are the
// unsigned widths of a handle's buffer-index and byte-offset fields; New
// picks the default uint32+uint32 layout.
//
// The zero value is not usable; construct with New or NewOf.
type Hato[I any, X, O Width] struct {
	buffers []*shapeBuffer[I, O]

	logger     *Logger
	backend    mem.Backend
	initialCap int
}

// New creates an empty arena with the default 32+32-bit handle layout:
// 8-byte handles, up to 2^32-1 shape buffers of up to ~4 GiB each.
func New[I any](opts ...Option) *Hato[I, uint32, uint32] {
	return NewOf[I, uint32, uint32](opts...)
}

// NewOf creates an empty arena with caller-chosen handle widths. Narrower
// widths shrink handles at the cost of capacity; exceeding either bound is
// fatal (see Push).
//
// I must be an interface type; NewOf panics otherwise.
func NewOf[I any, X, O Width](opts ...Option) *Hato[I, X, O] {
	if rt := reflect.TypeFor[I](); rt.Kind() != reflect.Interface {
		panic(fmt.Sprintf("hato: type parameter I must be an interface, got %s", rt))
	}

	o := options{logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}

	return &Hato[I, X, O]{
		logger:     o.logger,
		backend:    o.backend,
		initialCap: o.initialCapacity,
	}
}

// Push copies value into the buffer for its shape and returns a handle to
// the stored copy. A buffer is created lazily the first time a shape is
// seen, or when every existing buffer for it is full.
//
// T must implement I — asserted via *T, so pointer-receiver implementations
// qualify — and must be plain relocatable data: no pointers of any kind in
// its representation and no cleanup obligations. Both are checked at the API
// boundary and panic on violation. Ownership of value transfers into the
// arena: the buffer copy is the sole remaining representation.
//
// Push fails fatally when the number of shape buffers would not fit in X.
//
// Push is a function rather than a method because Go methods cannot
// introduce the extra type parameter T.
func Push[I any, X, O Width, T any](h *Hato[I, X, O], value T) Handle[X, O] {
	tab, ok := iface.Table[I](&value)
	if !ok {
		panic(fmt.Sprintf("hato: %s does not implement %s", reflect.TypeFor[T](), reflect.TypeFor[I]()))
	}

	// Index of a buffer that holds this shape and still has room.
	idx := -1
	for i, sb := range h.buffers {
		if sb.tab == tab && !sb.isFull() {
			idx = i
			break
		}
	}

	if idx < 0 {
		// Bound the buffer count so every index fits in a handle.
		if uint64(len(h.buffers)) > maxOf[X]() {
			panic(fmt.Sprintf("hato: more than %d shape buffers, use a wider index type", maxOf[X]()))
		}

		rt := reflect.TypeFor[T]()
		h.buffers = append(h.buffers, newShapeBuffer[I, O](tab, rt, h.initialCap, h.backend))
		idx = len(h.buffers) - 1
		h.logger.LogBufferCreated(idx, rt.String(), int(rt.Size()), rt.Align())
	}

	sb := h.buffers[idx]
	grows := sb.data.Grows()
	off := sb.push(valueBytes(&value))
	if sb.data.Grows() != grows {
		h.logger.LogBufferGrown(idx, sb.name, sb.data.Cap())
	}

	return Handle[X, O]{index: X(idx), offset: off}
}

// valueBytes reinterprets the value behind p as its raw byte representation.
func valueBytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// Get resolves handle to the value it identifies, viewed through I. The
// dynamic value is a pointer into the owning buffer, so pointer-receiver
// methods mutate the element in place: Get is both the shared and the
// exclusive accessor.
//
// The handle must have been produced by a Push on this arena (or on the
// arena this one was cloned from, for handles issued before the clone).
// A foreign handle or a double-removed slot is undefined behavior. A handle
// whose slot was recycled resolves to the new occupant — the documented ABA
// hazard, not an error. Do not retain the result across a subsequent Push:
// growth relocates storage, and only handles survive relocation.
func (h *Hato[I, X, O]) Get(hd Handle[X, O]) I {
	return h.buffers[hd.index].get(hd.offset)
}

// Remove recycles the slot identified by handle. The element's bytes stay in
// place until the slot is reused and nothing is ever finalized. Removing the
// same handle twice double-frees the slot into the free list — a documented
// hazard the caller must avoid.
func (h *Hato[I, X, O]) Remove(hd Handle[X, O]) {
	h.buffers[hd.index].remove(hd.offset)
}

// Clone returns a deep copy: every buffer's bytes, free list, and occupancy
// are copied verbatim; dispatch tables are shared, as they denote
// process-wide static data. Handles issued by the original resolve in the
// clone to the copied values, and the two arenas never observe each other's
// mutations.
func (h *Hato[I, X, O]) Clone() *Hato[I, X, O] {
	c := &Hato[I, X, O]{
		buffers:    make([]*shapeBuffer[I, O], len(h.buffers)),
		logger:     h.logger,
		backend:    h.backend,
		initialCap: h.initialCap,
	}
	for i, sb := range h.buffers {
		c.buffers[i] = sb.clone()
	}
	return c
}

// Len returns the number of live elements across all shape buffers.
func (h *Hato[I, X, O]) Len() int {
	var n uint64
	for _, sb := range h.buffers {
		n += sb.live.GetCardinality()
	}
	return int(n)
}

// NumBuffers returns the number of shape buffers. Buffer creation is
// append-only: buffers are never removed or merged, even when emptied.
func (h *Hato[I, X, O]) NumBuffers() int {
	return len(h.buffers)
}

// Handles iterates over the handles of all live elements, grouped by buffer
// in ascending offset order — the same locality-friendly order Compare
// sorts into.
func (h *Hato[I, X, O]) Handles() iter.Seq[Handle[X, O]] {
	return func(yield func(Handle[X, O]) bool) {
		for i, sb := range h.buffers {
			it := sb.live.Iterator()
			for it.HasNext() {
				if !yield(Handle[X, O]{index: X(i), offset: O(it.Next())}) {
					return
				}
			}
		}
	}
}

// All iterates over live elements as (handle, value) pairs. The usual
// reference rules apply: do not Push or Remove while iterating.
func (h *Hato[I, X, O]) All() iter.Seq2[Handle[X, O], I] {
	return func(yield func(Handle[X, O], I) bool) {
		for i, sb := range h.buffers {
			it := sb.live.Iterator()
			for it.HasNext() {
				off := O(it.Next())
				if !yield(Handle[X, O]{index: X(i), offset: off}, sb.get(off)) {
					return
				}
			}
		}
	}
}

// Close releases off-heap storage back to the operating system. It is only
// required for arenas built WithOffHeap — heap-backed arenas are reclaimed
// by the garbage collector. The arena must not be used after Close.
func (h *Hato[I, X, O]) Close() error {
	var firstErr error
	for _, sb := range h.buffers {
		if err := sb.data.Release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	h.buffers = nil
	return firstErr
}
