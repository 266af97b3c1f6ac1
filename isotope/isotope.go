// SPDX-License-Identifier: MIT
// Package isotope: ZZAAAM identifier codec.
// This file declares the Iso and Elt types, the sentinel error, and the
// decoding/validation primitives. All functions are deterministic O(1)
// integer arithmetic; none panic on user input.
package isotope

import "errors"

// ErrInvalidIsotope indicates an identifier whose decoded Z/A digits violate
// Z ≥ 1 or A ≥ Z. Loaders and constructors fail fast with this sentinel.
var ErrInvalidIsotope = errors.New("isotope: invalid isotope identifier")

// Iso identifies an isotope in ZZAAAM form: the most-significant digits hold
// the atomic number Z, the middle three digits the mass number A, and the
// trailing digit the isomeric state (0 = ground, 1 = first metastable, ...).
type Iso int

// Elt identifies a chemical element by its atomic number Z.
type Elt int

// Decimal positions of the ZZAAAM encoding.
const (
	stateMod = 10    // trailing digit: isomeric state
	massMod  = 10000 // A occupies digits 2..4, Z everything above
)

// AtomicNumber extracts Z from the encoded identifier.
func AtomicNumber(tope Iso) int {
	return int(tope) / massMod
}

// MassNumber extracts A from the encoded identifier.
func MassNumber(tope Iso) int {
	return (int(tope) % massMod) / stateMod
}

// StateNumber extracts the isomeric-state digit (0 for ground states).
func StateNumber(tope Iso) int {
	return int(tope) % stateMod
}

// Element returns the element (atomic number) the isotope belongs to.
func Element(tope Iso) Elt {
	return Elt(AtomicNumber(tope))
}

// Valid reports whether the identifier decodes to a physical isotope:
// Z ≥ 1 and A ≥ Z.
func Valid(tope Iso) bool {
	z := AtomicNumber(tope)
	a := MassNumber(tope)

	return z >= 1 && a >= z
}

// Check is the fail-fast form of Valid: it returns ErrInvalidIsotope for
// identifiers that do not decode to a physical isotope, nil otherwise.
func Check(tope Iso) error {
	if !Valid(tope) {
		return ErrInvalidIsotope
	}

	return nil
}
