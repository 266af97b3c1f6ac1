package composition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nuclide/decay"
	"github.com/katalvlaran/nuclide/isotope"
	"github.com/katalvlaran/nuclide/masstable"
)

// Composition is a single material's isotopic makeup, held simultaneously
// as atom counts and masses (kg) per isotope plus derived totals. The two
// views are consistent (mass = atoms·M/Avogadro per isotope) at every point
// a caller can observe.
//
// A Composition is not safe for concurrent mutation; the caller owns
// exclusivity. The mass table and decay network it references are immutable
// and shared.
type Composition struct {
	name  string
	units string

	atoms  map[isotope.Iso]float64 // atom counts
	masses map[isotope.Iso]float64 // kg

	totalAtoms float64
	totalMass  float64

	table   *masstable.Table
	network *decay.Network // nil: use decay.Global() at decay time

	lastUpdate float64 // simulation time (months) of the last recorded change
	hasUpdate  bool

	invalid bool // set once the composition is consumed by Absorb
}

// New builds a Composition from a mapping, a basis, and a scale factor.
//
// Stage 1 (Validate): identifiers must be valid, quantities non-negative
// and finite, the scale positive and finite, the basis known.
// Stage 2 (Normalize + Scale): the mapping is rescaled to sum to 1, then
// multiplied by scale — so comp carries stoichiometry and scale carries
// size, in atoms (AtomBased) or kg (MassBased).
// Stage 3 (Rationalize): the non-supplied view is derived via the atomic
// masses; isotopes without a known mass fail the construction.
//
// Complexity: O(len(comp)).
func New(comp CompMap, basis Basis, scale float64, opts ...Option) (*Composition, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if basis != AtomBased && basis != MassBased {
		return nil, ErrBadBasis
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrBadScale
	}
	if len(comp) == 0 {
		return nil, ErrEmptyComposition
	}

	scaled := make(map[isotope.Iso]float64, len(comp))
	for tope, q := range comp {
		if err := isotope.Check(tope); err != nil {
			return nil, fmt.Errorf("composition: isotope %d: %w", tope, err)
		}
		if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, fmt.Errorf("composition: isotope %d: %w", tope, ErrBadQuantity)
		}
		scaled[tope] = q
	}
	if err := Normalize(scaled); err != nil {
		return nil, err
	}
	for tope := range scaled {
		scaled[tope] *= scale
	}

	c := &Composition{
		name:       cfg.Name,
		units:      cfg.Units,
		table:      cfg.Table,
		network:    cfg.Network,
		lastUpdate: cfg.Timestamp,
		hasUpdate:  cfg.HasTimestamp,
	}

	var err error
	switch basis {
	case AtomBased:
		err = c.setAtomView(scaled)
	case MassBased:
		err = c.setMassView(scaled)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NaturalUranium builds a mass-based composition of natural uranium
// (WFU235 weight fraction of U-235, the rest U-238) of the given size in kg.
func NaturalUranium(scaleKg float64, opts ...Option) (*Composition, error) {
	feed := CompMap{
		922350: WFU235,
		922380: 1 - WFU235,
	}

	return New(feed, MassBased, scaleKg, opts...)
}

// Normalize rescales the mapping in place so its entries sum to 1.
// An empty or all-zero mapping has no defined fraction view and fails with
// ErrEmptyComposition.
func Normalize(comp CompMap) error {
	sum := 0.0
	for _, q := range comp {
		sum += q
	}
	if sum <= 0 || math.IsNaN(sum) {
		return ErrEmptyComposition
	}
	for tope := range comp {
		comp[tope] /= sum
	}

	return nil
}

// setAtomView installs atoms as the atom view and derives the mass view.
func (c *Composition) setAtomView(atoms map[isotope.Iso]float64) error {
	masses, ta, tm, err := c.deriveMassView(atoms)
	if err != nil {
		return err
	}
	c.atoms, c.masses = atoms, masses
	c.totalAtoms, c.totalMass = ta, tm

	return nil
}

// setMassView installs masses as the mass view and derives the atom view.
func (c *Composition) setMassView(masses map[isotope.Iso]float64) error {
	atoms := make(map[isotope.Iso]float64, len(masses))
	var ta, tm float64
	for tope, kg := range masses {
		m, err := c.table.Mass(tope)
		if err != nil {
			return fmt.Errorf("composition: isotope %d: %w", tope, err)
		}
		a := kg * Avogadro / m
		atoms[tope] = a
		ta += a
		tm += kg
	}
	c.atoms, c.masses = atoms, masses
	c.totalAtoms, c.totalMass = ta, tm

	return nil
}

// deriveMassView computes the mass view and both totals for an atom view,
// without touching the receiver's state. This is the commit step of every
// mutation: build into fresh maps, swap only on success.
func (c *Composition) deriveMassView(atoms map[isotope.Iso]float64) (map[isotope.Iso]float64, float64, float64, error) {
	masses := make(map[isotope.Iso]float64, len(atoms))
	var ta, tm float64
	for tope, a := range atoms {
		m, err := c.table.Mass(tope)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("composition: isotope %d: %w", tope, err)
		}
		kg := a * m / Avogadro
		masses[tope] = kg
		ta += a
		tm += kg
	}

	return masses, ta, tm, nil
}

// Name returns the recipe name ("" when unnamed).
func (c *Composition) Name() string { return c.name }

// Units returns the mass unit label.
func (c *Composition) Units() string { return c.units }

// TotalMass returns the total mass (kg) over all tracked isotopes.
func (c *Composition) TotalMass() float64 { return c.totalMass }

// TotalAtoms returns the total atom count over all tracked isotopes.
func (c *Composition) TotalAtoms() float64 { return c.totalAtoms }

// AtomComp returns the atom count of the isotope, or zero when it is not
// present — absence means "not tracked", never an error.
func (c *Composition) AtomComp(tope isotope.Iso) float64 { return c.atoms[tope] }

// MassComp returns the mass (kg) of the isotope, or zero when absent.
func (c *Composition) MassComp(tope isotope.Iso) float64 { return c.masses[tope] }

// IsoMass is the recipe-facing alias of MassComp.
func (c *Composition) IsoMass(tope isotope.Iso) float64 { return c.masses[tope] }

// EltMass returns the summed mass (kg) of every tracked isotope of the
// given element.
func (c *Composition) EltMass(elt isotope.Elt) float64 {
	sum := 0.0
	for tope, kg := range c.masses {
		if isotope.Element(tope) == elt {
			sum += kg
		}
	}

	return sum
}

// AtomMap returns a defensive copy of the atom view.
func (c *Composition) AtomMap() CompMap {
	out := make(CompMap, len(c.atoms))
	for tope, a := range c.atoms {
		out[tope] = a
	}

	return out
}

// MassMap returns a defensive copy of the mass view (kg).
func (c *Composition) MassMap() CompMap {
	out := make(CompMap, len(c.masses))
	for tope, kg := range c.masses {
		out[tope] = kg
	}

	return out
}

// LastUpdate returns the recorded simulation time of the last composition
// change and whether one was ever recorded.
func (c *Composition) LastUpdate() (float64, bool) {
	return c.lastUpdate, c.hasUpdate
}

// FracComp returns the given fraction of the current composition as an
// atom-based mapping. Stoichiometry is held constant, so the same mapping
// serves as weight or atom fraction. Fails on an empty composition: a
// fraction of nothing is undefined.
func (c *Composition) FracComp(frac float64) (CompMap, error) {
	if frac < 0 || math.IsNaN(frac) || math.IsInf(frac, 0) {
		return nil, ErrBadFraction
	}
	if c.totalAtoms <= 0 {
		return nil, ErrEmptyComposition
	}

	out := make(CompMap, len(c.atoms))
	for tope, a := range c.atoms {
		out[tope] = a / c.totalAtoms * frac
	}

	return out, nil
}

// atomTolerance converts the EPS mass tolerance (kg) into an atom-count
// tolerance for the isotope. Falls back to the mass-number estimate when
// the isotope has no tabulated mass.
func (c *Composition) atomTolerance(tope isotope.Iso) float64 {
	m, err := c.table.Mass(tope)
	if err != nil {
		if n := isotope.MassNumber(tope); n > 0 {
			m = float64(n)
		} else {
			m = 1
		}
	}

	return EPS * Avogadro / m
}

// IsZero reports whether the tracked quantity of the isotope is within the
// conservation tolerance of zero.
func (c *Composition) IsZero(tope isotope.Iso) bool {
	return math.Abs(c.atoms[tope]) < c.atomTolerance(tope)
}

// IsNeg reports whether the tracked quantity of the isotope is negative by
// more than the conservation tolerance. Quantities negative within the
// tolerance are floating-point slack, treated as zero, never as an error.
func (c *Composition) IsNeg(tope isotope.Iso) bool {
	a := c.atoms[tope]
	if a >= 0 {
		return false
	}

	return math.Abs(a) >= c.atomTolerance(tope)
}
