package mem

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/hato/internal/mmap"
)

// Backend selects where a Slab's bytes live.
type Backend int

const (
	// Heap backs the slab with a garbage-collected byte slice.
	Heap Backend = iota
	// OffHeap backs the slab with anonymous memory mappings. The garbage
	// collector never scans them, so only pointer-free data may be stored,
	// and Release must be called to return the memory to the OS.
	OffHeap
)

// minCapacity is the smallest backing allocation. Reserving it eagerly keeps
// the base pointer valid from construction on, so zero-sized reads resolve
// against real memory.
const minCapacity = 64

// Slab is a growable region of raw bytes whose base address keeps a fixed
// alignment across reallocation. The occupied length only grows; there is no
// compaction or shrinking.
//
// A Slab is not safe for concurrent use.
type Slab struct {
	data    []byte // reserved capacity, base aligned
	n       int    // occupied prefix
	align   int
	backend Backend
	mapping *mmap.Mapping // non-nil iff the current allocation is off-heap
	grows   uint64
}

// NewSlab returns an empty slab with at least capacity bytes reserved and a
// base address aligned to align bytes (a power of two).
//
// Off-heap slabs panic if the operating system refuses the mapping; running
// out of mappable memory is not a recoverable condition here.
func NewSlab(align, capacity int, backend Backend) *Slab {
	if align < 1 {
		align = 1
	}
	if capacity < minCapacity {
		capacity = minCapacity
	}
	s := &Slab{align: align, backend: backend}
	s.data, s.mapping = s.allocate(capacity)
	return s
}

// allocate reserves capacity aligned bytes from the configured backend.
func (s *Slab) allocate(capacity int) ([]byte, *mmap.Mapping) {
	if s.backend == OffHeap {
		m, err := mmap.MapAnon(capacity)
		if err != nil {
			panic(fmt.Sprintf("mem: anonymous mapping of %d bytes failed: %v", capacity, err))
		}
		// Anonymous mappings are page-aligned, which satisfies every
		// alignment the Go compiler produces.
		return m.Bytes()[:capacity:capacity], m
	}
	return AllocAligned(capacity, s.align), nil
}

// Len returns the number of occupied bytes.
func (s *Slab) Len() int { return s.n }

// Cap returns the reserved capacity in bytes.
func (s *Slab) Cap() int { return len(s.data) }

// Grows returns how many growth-induced reallocations have happened.
func (s *Slab) Grows() uint64 { return s.grows }

// Bytes returns the occupied prefix. The slice is invalidated by the next
// growth event.
func (s *Slab) Bytes() []byte { return s.data[:s.n] }

// Extend appends b at the current length, growing the backing storage if
// needed, and returns the byte offset b was written at. Growth relocates the
// base: offsets stay valid, raw pointers do not.
func (s *Slab) Extend(b []byte) int {
	off := s.n
	if need := s.n + len(b); need > len(s.data) {
		s.grow(need)
	}
	copy(s.data[off:], b)
	s.n += len(b)
	return off
}

// WriteAt overwrites len(b) bytes at off. The range must lie inside the
// occupied prefix.
func (s *Slab) WriteAt(off int, b []byte) {
	copy(s.data[off:off+len(b)], b)
}

// Ptr returns the address of the byte at off. No bounds checking: callers
// vouch for off, per the handle contract one level up.
func (s *Slab) Ptr(off int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(s.data)), off)
}

func (s *Slab) grow(need int) {
	capacity := len(s.data) * 2
	if capacity < minCapacity {
		capacity = minCapacity
	}
	for capacity < need {
		capacity *= 2
	}

	data, mapping := s.allocate(capacity)
	copy(data, s.data[:s.n])

	old := s.mapping
	s.data, s.mapping = data, mapping
	s.grows++

	if old != nil {
		// Stale pointers into the old mapping now fault instead of aliasing
		// freed heap memory; both are outside the contract anyway.
		_ = old.Close()
	}
}

// Clone returns an independent copy with the same backend, alignment, and
// occupied bytes.
func (s *Slab) Clone() *Slab {
	c := NewSlab(s.align, s.n, s.backend)
	copy(c.data, s.data[:s.n])
	c.n = s.n
	return c
}

// Release returns off-heap memory to the operating system. The slab must not
// be used afterwards. Heap-backed slabs are reclaimed by the garbage
// collector; for them Release is a no-op.
func (s *Slab) Release() error {
	if s.mapping == nil {
		return nil
	}
	m := s.mapping
	s.mapping = nil
	s.data = nil
	s.n = 0
	return m.Close()
}
