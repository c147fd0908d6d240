// Package hato implements a heterogeneous object arena: a container that
// stores values of many concrete types behind a single interface while
// physically packing same-shape values into contiguous byte buffers, instead
// of boxing every element on the heap individually.
//
// Programs that hold large, dynamically-typed collections (simulation
// entities, plugin-produced objects) get cache-friendly iteration and cheap
// bulk cloning: cloning an arena copies a handful of flat buffers rather
// than chasing one allocation per element.
//
// # Quick Start
//
//	type Shape interface{ Area() float64 }
//
//	arena := hato.New[Shape]()
//	h1 := hato.Push(arena, Circle{R: 2})
//	h2 := hato.Push(arena, Rect{W: 3, H: 4})
//
//	fmt.Println(arena.Get(h1).Area(), arena.Get(h2).Area())
//
// Values of the same shape — the pairing of a concrete type with the
// dispatch table resolving it through the interface — share one contiguous
// buffer. Push copies the value's bytes in and returns a compact Handle;
// Get reassembles an interface value aimed at those bytes.
//
// # Capability Bounds
//
// Stored types must be plain relocatable data: no pointers, maps, chans,
// funcs, slices, strings, or interfaces anywhere in their representation,
// and no cleanup obligations. The bound is checked once per shape, when its
// buffer is created; violations panic. Ownership of a pushed value transfers
// fully into the arena — the buffer copy is its sole remaining
// representation, and nothing is ever finalized on Remove.
//
// # Handles and the ABA Hazard
//
// Handles carry no generation counter. A handle captured before a Remove
// will, after the slot is recycled by a later Push of the same shape,
// silently resolve to the new occupant:
//
//	h := hato.Push(arena, Circle{R: 1})
//	arena.Remove(h)
//	_ = hato.Push(arena, Circle{R: 9})
//	arena.Get(h) // the new circle, not an error
//
// This is a documented contract, not a defect. Callers that need staleness
// detection must layer their own generation scheme on top.
//
// # References vs Handles
//
// Buffer growth relocates storage. Handles are offsets and survive growth;
// interface values returned by Get are raw views and do not. Never retain a
// Get result across a subsequent Push on the same arena — re-resolve through
// the handle instead.
//
// # Handle Widths
//
// The handle's two fields are width-parametric. New picks uint32+uint32: an
// 8-byte handle, up to ~4 GiB per shape buffer. NewOf chooses other widths,
// trading capacity against handle size:
//
//	tiny := hato.NewOf[Shape, uint8, uint16]() // 2-byte handles
//
// Exhausting either width is a design-time capacity planning error and
// panics with a descriptive message; no core operation returns an error.
//
// # Off-Heap Storage
//
// WithOffHeap backs buffers with anonymous memory mappings outside the Go
// heap, keeping large arenas out of GC mark phases — safe precisely because
// stored values are pointer-free. Off-heap arenas must be released with
// Close.
//
// # Thread Safety
//
// An arena is single-threaded. Push, Remove, and Clone require exclusive
// access; concurrent Gets are fine only while no mutation is running,
// because growth relocates the storage a Get result points into.
package hato
