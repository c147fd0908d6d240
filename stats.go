package hato

// Stats is a point-in-time snapshot of arena memory usage.
//
// Note on semantics:
//   - BytesUsed counts occupied buffer bytes, including freed slots awaiting
//     reuse (removal never returns or compacts memory)
//   - BytesReserved counts capacity held by buffers
//   - Grows is cumulative across the arena's lifetime
type Stats struct {
	Buffers       int    // shape buffers created (append-only)
	Live          uint64 // live elements across all buffers
	FreeSlots     int    // recycled slots awaiting reuse
	BytesUsed     uint64 // occupied bytes
	BytesReserved uint64 // reserved capacity
	Grows         uint64 // growth-induced reallocations
}

// Stats reports current arena memory usage.
func (h *Hato[I, X, O]) Stats() Stats {
	var s Stats
	s.Buffers = len(h.buffers)
	for _, sb := range h.buffers {
		s.Live += sb.live.GetCardinality()
		s.FreeSlots += len(sb.slots)
		s.BytesUsed += uint64(sb.data.Len())
		s.BytesReserved += uint64(sb.data.Cap())
		s.Grows += sb.data.Grows()
	}
	return s
}
