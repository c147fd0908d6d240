// Package iface assembles and disassembles Go interface values at the
// machine-word level.
//
// A Go interface value is a two-word pair: a dispatch word (an itab pointer,
// or a type descriptor for the empty interface) and a data word. The runtime
// interns one itab per (concrete type, interface type) pairing, so the
// dispatch word doubles as a cheap runtime identity for "shape": two values
// dispatch through the same table iff Table returns the same pointer.
//
// This is the one deliberately unsafe primitive in the module. Make has a
// single, documented precondition and no failure path; everything above it
// builds on that contract.
package iface
