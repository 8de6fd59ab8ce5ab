// Package dff implements the two-bit synchronous register at the core of
// the dffsim system.
//
// The register has one data input (dinA) fanned out to both output bits,
// a clock, and an asynchronous active-low reset. A rising clock edge
// samples dinA into doutA and doutB; asserting resetb forces both outputs
// low immediately, without waiting for a clock edge, and holds them low
// for as long as resetb stays asserted.
//
// The update function is driven by explicit pin snapshots (Apply) rather
// than an ambient clock, so a fixed event sequence always reproduces the
// same output sequence.
package dff
