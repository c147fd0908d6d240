package mem

import (
	"unsafe"
)

// AllocAligned allocates a byte slice of the given size whose base address
// is divisible by align. align must be a power of two.
//
// Note: This function allocates slightly more memory than requested to
// ensure alignment. The underlying array is kept alive by the returned
// slice.
func AllocAligned(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	if align <= 1 {
		return make([]byte, size)
	}

	// Allocate size + align to ensure an aligned offset exists; the start
	// pointer shifts up by at most align-1 bytes.
	buf := make([]byte, size+align)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (uintptr(align) - (addr & uintptr(align-1))) & uintptr(align-1)

	// Full-slice expression so the capacity cannot leak past the aligned
	// window via append.
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
