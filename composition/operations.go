package composition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nuclide/isotope"
)

// Absorb merges other's composition into c, isotope by isotope, and
// invalidates other: total atoms and total mass of c afterwards equal the
// sums of the two inputs exactly — no renormalization. Any later operation
// on other fails with ErrInvalidated.
func (c *Composition) Absorb(other *Composition) error {
	if other == nil {
		return ErrNilComposition
	}
	if other == c {
		return ErrSelfOperation
	}
	if c.invalid || other.invalid {
		return ErrInvalidated
	}

	for tope, a := range other.atoms {
		c.atoms[tope] += a
		c.masses[tope] += other.masses[tope]
	}
	c.totalAtoms += other.totalAtoms
	c.totalMass += other.totalMass
	other.invalid = true

	return nil
}

// Extract subtracts other's composition from c, isotope by isotope. Any
// isotope whose resulting count would be negative beyond the conservation
// tolerance fails the whole operation with ErrConservation and c is left
// unmodified; deficits within tolerance are clamped to zero. other is not
// consumed — it is the extracted material and stays usable.
//
// Stage 1 (Validate): every subtraction checked before anything changes.
// Stage 2 (Commit): subtract into a fresh atom view, drop near-zero
// entries, re-derive the mass view, swap.
func (c *Composition) Extract(other *Composition) error {
	if other == nil {
		return ErrNilComposition
	}
	if other == c {
		return ErrSelfOperation
	}
	if c.invalid || other.invalid {
		return ErrInvalidated
	}

	for tope, a := range other.atoms {
		rem := c.atoms[tope] - a
		if rem < 0 && math.Abs(rem) >= c.atomTolerance(tope) {
			return fmt.Errorf("composition: isotope %d: %w", tope, ErrConservation)
		}
	}

	next := make(map[isotope.Iso]float64, len(c.atoms))
	for tope, a := range c.atoms {
		next[tope] = a
	}
	for tope, a := range other.atoms {
		rem := next[tope] - a
		if rem <= 0 || rem < c.atomTolerance(tope) {
			delete(next, tope) // exhausted, or slack within tolerance
			continue
		}
		next[tope] = rem
	}

	return c.setAtomView(next)
}

// ExtractMass splits off a new composition of the given mass (kg) with the
// same relative isotopic stoichiometry as c, reducing c by exactly the
// extracted composition. Fails with ErrConservation when kg exceeds the
// total mass by more than EPS; a request within EPS of the total empties c.
func (c *Composition) ExtractMass(kg float64) (*Composition, error) {
	if c.invalid {
		return nil, ErrInvalidated
	}
	if kg < 0 || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return nil, fmt.Errorf("composition: extract %g kg: %w", kg, ErrConservation)
	}
	if c.totalMass <= 0 {
		return nil, ErrEmptyComposition
	}
	if kg > c.totalMass+EPS {
		return nil, fmt.Errorf("composition: extract %g kg of %g kg: %w", kg, c.totalMass, ErrConservation)
	}

	frac := kg / c.totalMass
	if frac > 1 {
		frac = 1 // request within EPS above the total: take everything
	}

	atoms := make(map[isotope.Iso]float64, len(c.atoms))
	for tope, a := range c.atoms {
		atoms[tope] = a * frac
	}

	ext := &Composition{
		units:      c.units,
		table:      c.table,
		network:    c.network,
		lastUpdate: c.lastUpdate,
		hasUpdate:  c.hasUpdate,
	}
	if err := ext.setAtomView(atoms); err != nil {
		return nil, err
	}
	if err := c.Extract(ext); err != nil {
		return nil, err
	}

	return ext, nil
}

// ChangeComp adds (or, if negative, subtracts) the given number of atoms of
// one isotope, re-rationalizes the mass view, and records t as the
// composition's last-update time (consumed by DecaySinceUpdate). A change
// that would leave the isotope negative beyond tolerance fails with
// ErrConservation and the composition unmodified.
func (c *Composition) ChangeComp(tope isotope.Iso, deltaAtoms float64, t float64) error {
	if c.invalid {
		return ErrInvalidated
	}
	if err := isotope.Check(tope); err != nil {
		return fmt.Errorf("composition: isotope %d: %w", tope, err)
	}
	if math.IsNaN(deltaAtoms) || math.IsInf(deltaAtoms, 0) {
		return fmt.Errorf("composition: isotope %d: %w", tope, ErrBadQuantity)
	}

	rem := c.atoms[tope] + deltaAtoms
	if rem < 0 && math.Abs(rem) >= c.atomTolerance(tope) {
		return fmt.Errorf("composition: isotope %d: %w", tope, ErrConservation)
	}

	next := make(map[isotope.Iso]float64, len(c.atoms)+1)
	for k, a := range c.atoms {
		next[k] = a
	}
	if rem <= 0 || rem < c.atomTolerance(tope) {
		delete(next, tope)
	} else {
		next[tope] = rem
	}

	if err := c.setAtomView(next); err != nil {
		return err
	}
	c.lastUpdate = t
	c.hasUpdate = true

	return nil
}
