// Package material is the thin recipe-facing layer over a composition: a
// Material pairs a serial-numbered identity with the composition store that
// does the actual bookkeeping, mirroring how the surrounding simulation
// hands quantities of matter between facilities.
//
// Serial numbers come from an explicit Sequence injected at construction —
// there is no hidden package-global counter, so independent simulations
// (and tests) number their materials deterministically.
package material
