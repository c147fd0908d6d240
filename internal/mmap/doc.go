// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings outside the Go heap. The
// garbage collector never scans or moves this memory, which makes it a good
// home for large, pointer-free byte buffers: they add nothing to GC mark
// phases, at the price of explicit release via Close().
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// Both are demand-paged: pages are only backed by physical memory when first
// touched.
//
// # Lifetime
//
// The Close() method is idempotent and protected by atomic operations, but
// callers must ensure nothing accesses Bytes() after Close() returns — the
// pages are gone and access faults.
package mmap
