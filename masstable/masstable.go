// SPDX-License-Identifier: MIT
// Package masstable: table construction and lookup.
package masstable

import (
	"errors"

	"github.com/katalvlaran/nuclide/isotope"
)

// ErrUnknownIsotope indicates a lookup for an isotope the table has no mass
// for (and approximation is disabled).
var ErrUnknownIsotope = errors.New("masstable: unknown isotope")

// ErrBadMass indicates a non-positive atomic mass supplied to New or found
// in a SQLite source.
var ErrBadMass = errors.New("masstable: atomic mass must be positive")

// Table maps isotope identifiers to atomic masses in g/mol.
// It is immutable after construction: concurrent readers need no locking.
type Table struct {
	masses map[isotope.Iso]float64
	approx bool // fall back to the mass number A for absent entries
}

// Option configures a Table at construction time.
type Option func(*Table)

// WithApproximation makes Mass fall back to the isotope's mass number A
// (g/mol) when no tabulated value exists. Valid identifiers then never fail.
func WithApproximation() Option {
	return func(t *Table) { t.approx = true }
}

// New builds a Table from the supplied masses. The map is copied, so the
// caller may keep mutating its own copy; entries with invalid identifiers
// or non-positive masses are rejected.
//
// Complexity: O(len(masses)) time and memory.
func New(masses map[isotope.Iso]float64, opts ...Option) (*Table, error) {
	t := &Table{masses: make(map[isotope.Iso]float64, len(masses))}
	for _, opt := range opts {
		opt(t)
	}
	for tope, m := range masses {
		if err := isotope.Check(tope); err != nil {
			return nil, err
		}
		if m <= 0 {
			return nil, ErrBadMass
		}
		t.masses[tope] = m
	}

	return t, nil
}

// Mass returns the atomic mass (g/mol) for the isotope.
//
// Lookup order:
//  1. Reject invalid identifiers (isotope.ErrInvalidIsotope).
//  2. Return the tabulated value when present.
//  3. With approximation enabled, estimate as the mass number A.
//  4. Otherwise fail with ErrUnknownIsotope.
func (t *Table) Mass(tope isotope.Iso) (float64, error) {
	if err := isotope.Check(tope); err != nil {
		return 0, err
	}
	if m, ok := t.masses[tope]; ok {
		return m, nil
	}
	if t.approx {
		return float64(isotope.MassNumber(tope)), nil
	}

	return 0, ErrUnknownIsotope
}

// Has reports whether the isotope has a tabulated (non-approximated) mass.
func (t *Table) Has(tope isotope.Iso) bool {
	_, ok := t.masses[tope]

	return ok
}

// Len returns the number of tabulated isotopes.
func (t *Table) Len() int {
	return len(t.masses)
}

// Default returns the compiled-in table. The returned value is shared and
// immutable; callers must not assume a fresh copy.
func Default() *Table {
	return defaultTable
}

var defaultTable = &Table{masses: defaultMasses}
