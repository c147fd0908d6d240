package hato

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/hato/internal/iface"
	"github.com/hupe1980/hato/internal/mem"
)

// shapeBuffer stores every element of exactly one shape: the pairing of a
// concrete type's memory layout with the dispatch table that resolves it
// through I. The dispatch table is the partition key and never changes after
// creation.
type shapeBuffer[I any, O Width] struct {
	tab   unsafe.Pointer // dispatch table, a process-wide static
	data  *mem.Slab      // element bytes, base-aligned to the element type
	slots []O            // freed offsets, LIFO reuse order
	live  *roaring64.Bitmap

	name string // element type name, for logs and fatal messages
}

// newShapeBuffer creates an empty buffer for values of rt, resolved through
// tab. It panics if rt is not plain relocatable data; the check runs here,
// once per shape, rather than on every push.
func newShapeBuffer[I any, O Width](tab unsafe.Pointer, rt reflect.Type, capacity int, backend mem.Backend) *shapeBuffer[I, O] {
	if err := iface.Relocatable(rt); err != nil {
		panic(fmt.Sprintf("hato: %s is not plain relocatable data: %v", rt, err))
	}

	return &shapeBuffer[I, O]{
		tab:  tab,
		data: mem.NewSlab(rt.Align(), capacity, backend),
		live: roaring64.New(),
		name: rt.String(),
	}
}

// push copies b, the raw bytes of one element, into the buffer and returns
// the byte offset it occupies. The most recently freed slot is overwritten
// first; otherwise the bytes are appended at the current length, growing the
// backing storage while preserving base alignment.
//
// The byte length is bounded by O's range; exceeding it is a capacity
// planning error and fatal. The container routes around full buffers, so
// this only fires when a buffer is driven directly past its bound.
func (sb *shapeBuffer[I, O]) push(b []byte) O {
	if n := len(sb.slots); n > 0 {
		off := sb.slots[n-1]
		sb.slots = sb.slots[:n-1]
		sb.data.WriteAt(int(uint64(off)), b)
		sb.live.Add(uint64(off))
		return off
	}

	off := uint64(sb.data.Len())
	if off > maxOf[O]() {
		panic(fmt.Sprintf("hato: shape buffer for %s exceeds %d bytes, use a wider offset type", sb.name, maxOf[O]()))
	}
	sb.data.Extend(b)
	sb.live.Add(off)
	return O(off)
}

// isFull reports whether the byte length has outgrown O's range, meaning the
// next append offset could no longer be represented in a handle. The
// container uses this to open a fresh buffer for the shape.
func (sb *shapeBuffer[I, O]) isFull() bool {
	return uint64(sb.data.Len()) > maxOf[O]()
}

// get resolves the element at off through I by pairing the buffer's dispatch
// table with the storage address. No bounds checking: the caller vouches
// that off was produced by a push on this buffer, per the Handle contract.
func (sb *shapeBuffer[I, O]) get(off O) I {
	return iface.Make[I](sb.tab, sb.data.Ptr(int(uint64(off))))
}

// remove recycles the slot at off. The bytes stay in place untouched and no
// finalization runs. Removing the same offset twice pushes a duplicate onto
// the free list — the documented double-free hazard.
func (sb *shapeBuffer[I, O]) remove(off O) {
	sb.slots = append(sb.slots, off)
	sb.live.Remove(uint64(off))
}

// clone deep-copies bytes, free list, and occupancy. The dispatch table is
// shared: it denotes process-wide static data and stays valid in the copy.
func (sb *shapeBuffer[I, O]) clone() *shapeBuffer[I, O] {
	return &shapeBuffer[I, O]{
		tab:   sb.tab,
		data:  sb.data.Clone(),
		slots: append([]O(nil), sb.slots...),
		live:  sb.live.Clone(),
		name:  sb.name,
	}
}
