package iface

import (
	"unsafe"
)

// words mirrors the runtime representation of an interface value: one word
// of dispatch metadata followed by one data word.
//
// The fields are typed unsafe.Pointer rather than uintptr so the garbage
// collector keeps scanning them.
type words struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}

// Table extracts the dispatch table pairing ref's dynamic type with the
// interface I. It reports false if ref does not implement I.
//
// Callers pass a pointer (typically *T) as ref: the pointer's method set
// includes both value- and pointer-receiver methods, and a pointer is always
// stored directly in the interface's data word, so the table captured here
// is exactly the one Make needs to dispatch against raw storage.
func Table[I any](ref any) (unsafe.Pointer, bool) {
	i, ok := ref.(I)
	if !ok {
		return nil, false
	}
	return (*words)(unsafe.Pointer(&i)).tab, true
}

// Make assembles an interface value of type I from a dispatch table
// captured by Table and a raw data word.
//
// Precondition (caller-enforced, never checked): data addresses a complete,
// validly initialized value of the exact type the table was captured for,
// and that memory stays valid for as long as the returned value is used.
// There is no failure path; violations are undefined behavior.
func Make[I any](tab, data unsafe.Pointer) I {
	var i I
	w := (*words)(unsafe.Pointer(&i))
	w.tab = tab
	w.data = data
	return i
}
