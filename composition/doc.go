// Package composition implements the dual atom/mass composition store at
// the heart of nuclide, together with the conservation-preserving material
// operations and the decay engine entry points.
//
// 🚀 What is a Composition?
//
//	A single material's isotope→quantity mapping, kept simultaneously in
//	two views that must always agree:
//
//		mass_i = atoms_i × atomicMass(i) / Avogadro
//
//	Construction takes a mapping, a basis (AtomBased or MassBased), and a
//	scale factor: the mapping is normalized to fractions, scaled, and the
//	missing view is derived (rationalization). Every mutating operation —
//	Absorb, Extract, ExtractMass, ChangeComp, Decay — leaves both views
//	consistent before returning, or fails with the store unmodified.
//
// ✨ Tolerance policy
//
//	EPS (kg) is the conservation tolerance: quantities within EPS of zero
//	are zero, quantities negative within EPS are floating-point slack and
//	are clamped, and only deficits beyond EPS are conservation violations.
//	Accessors return zero for absent isotopes — absence means "not
//	tracked", never an error.
//
// ⚙️ Usage:
//
//	c, err := composition.New(
//	    composition.CompMap{922350: 0.0072, 922380: 0.9928},
//	    composition.MassBased,
//	    1.0, // kg
//	)
//	...
//	err = c.Decay(12)            // twelve months through the decay network
//	part, err := c.ExtractMass(0.25) // proportional split, same stoichiometry
//
// A Composition must be mutated by one logical thread of control at a time;
// the store itself does no locking. The decay network it reads is shared,
// immutable, and safe for any number of concurrent readers.
package composition
