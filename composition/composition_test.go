// Package composition_test: construction, normalization, rationalization,
// accessors, and tolerance predicates.
package composition_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nuclide/composition"
	"github.com/katalvlaran/nuclide/isotope"
	"github.com/katalvlaran/nuclide/masstable"
	"github.com/stretchr/testify/require"
)

const (
	u235  = isotope.Iso(922350)
	u238  = isotope.Iso(922380)
	cs137 = isotope.Iso(551370)
	h1    = isotope.Iso(10010)
)

func TestNew_ValidationErrors(t *testing.T) {
	_, err := composition.New(nil, composition.AtomBased, 1)
	require.ErrorIs(t, err, composition.ErrEmptyComposition)

	_, err = composition.New(composition.CompMap{u235: 1}, composition.Basis(7), 1)
	require.ErrorIs(t, err, composition.ErrBadBasis)

	_, err = composition.New(composition.CompMap{u235: 1}, composition.AtomBased, 0)
	require.ErrorIs(t, err, composition.ErrBadScale)

	_, err = composition.New(composition.CompMap{u235: 1}, composition.AtomBased, math.NaN())
	require.ErrorIs(t, err, composition.ErrBadScale)

	// Z=92, A=35: invalid identifier.
	_, err = composition.New(composition.CompMap{920350: 1}, composition.AtomBased, 1)
	require.ErrorIs(t, err, isotope.ErrInvalidIsotope)

	_, err = composition.New(composition.CompMap{u235: -1}, composition.AtomBased, 1)
	require.ErrorIs(t, err, composition.ErrBadQuantity)

	// All-zero mapping: no defined fraction view.
	_, err = composition.New(composition.CompMap{u235: 0}, composition.AtomBased, 1)
	require.ErrorIs(t, err, composition.ErrEmptyComposition)
}

func TestNew_UnknownAtomicMass(t *testing.T) {
	// Cf-252 is valid but absent from the default table: rationalization
	// must fail the construction.
	_, err := composition.New(composition.CompMap{982520: 1}, composition.AtomBased, 1)
	require.ErrorIs(t, err, masstable.ErrUnknownIsotope)

	// An approximating table accepts it.
	approx, err := masstable.New(nil, masstable.WithApproximation())
	require.NoError(t, err)
	c, err := composition.New(
		composition.CompMap{982520: 1},
		composition.AtomBased,
		composition.Avogadro,
		composition.WithMassTable(approx),
	)
	require.NoError(t, err)
	require.InDelta(t, 252.0, c.TotalMass(), 1e-9) // Avogadro atoms at the A=252 estimate
}

func TestNew_NormalizesThenScales(t *testing.T) {
	// {2, 6} normalizes to {0.25, 0.75}; scale 8 restores {2, 6} atoms.
	c, err := composition.New(
		composition.CompMap{u235: 2, u238: 6},
		composition.AtomBased,
		8,
	)
	require.NoError(t, err)
	require.InDelta(t, 2, c.AtomComp(u235), 1e-12)
	require.InDelta(t, 6, c.AtomComp(u238), 1e-12)
	require.InDelta(t, 8, c.TotalAtoms(), 1e-12)
}

func TestNaturalUranium_MassView(t *testing.T) {
	c, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, c.TotalMass(), 1e-12)
	require.InDelta(t, composition.WFU235, c.MassComp(u235), 1e-12)
	require.InDelta(t, 1-composition.WFU235, c.MassComp(u238), 1e-12)
	require.Equal(t, "kg", c.Units())
}

func TestRationalize_RoundTrip(t *testing.T) {
	// Atoms -> masses -> atoms must reproduce the original counts.
	orig, err := composition.New(
		composition.CompMap{u235: 0.3, u238: 0.6, cs137: 0.1},
		composition.AtomBased,
		1e24,
	)
	require.NoError(t, err)

	back, err := composition.New(orig.MassMap(), composition.MassBased, orig.TotalMass())
	require.NoError(t, err)

	for tope, want := range orig.AtomMap() {
		require.InEpsilon(t, want, back.AtomComp(tope), 1e-9, "isotope %d", tope)
	}
	require.InEpsilon(t, orig.TotalAtoms(), back.TotalAtoms(), 1e-9)
}

func TestAccessors_AbsentIsZeroNotError(t *testing.T) {
	c, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	require.Zero(t, c.AtomComp(cs137))
	require.Zero(t, c.MassComp(cs137))
	require.Zero(t, c.IsoMass(cs137))
	require.Zero(t, c.EltMass(isotope.Elt(55)))
}

func TestEltMass_SumsElementIsotopes(t *testing.T) {
	c, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	// Both tracked isotopes are uranium: element mass equals total mass.
	require.InDelta(t, c.TotalMass(), c.EltMass(isotope.Elt(92)), 1e-12)
}

func TestFracComp(t *testing.T) {
	c, err := composition.New(
		composition.CompMap{u235: 1, u238: 3},
		composition.AtomBased,
		4e20,
	)
	require.NoError(t, err)

	half, err := c.FracComp(0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.125, half[u235], 1e-12) // 0.25 atom fraction × 0.5
	require.InDelta(t, 0.375, half[u238], 1e-12)

	_, err = c.FracComp(-0.1)
	require.ErrorIs(t, err, composition.ErrBadFraction)
}

func TestMaps_AreDefensiveCopies(t *testing.T) {
	c, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	m := c.AtomMap()
	m[u235] = 0
	require.NotZero(t, c.AtomComp(u235))

	w := c.MassMap()
	w[u238] = 0
	require.NotZero(t, c.MassComp(u238))
}

func TestNormalize(t *testing.T) {
	m := composition.CompMap{u235: 2, u238: 6}
	require.NoError(t, composition.Normalize(m))
	require.InDelta(t, 0.25, m[u235], 1e-12)
	require.InDelta(t, 0.75, m[u238], 1e-12)

	require.ErrorIs(t, composition.Normalize(composition.CompMap{}), composition.ErrEmptyComposition)
	require.ErrorIs(t, composition.Normalize(composition.CompMap{u235: 0}), composition.ErrEmptyComposition)
}

func TestTolerancePredicates(t *testing.T) {
	c, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	// Absent isotope: zero within tolerance, not negative.
	require.True(t, c.IsZero(cs137))
	require.False(t, c.IsNeg(cs137))

	// Present far above tolerance.
	require.False(t, c.IsZero(u238))
	require.False(t, c.IsNeg(u238))
}

func TestLastUpdate_FromOption(t *testing.T) {
	c, err := composition.NaturalUranium(1.0, composition.WithTimestamp(42))
	require.NoError(t, err)
	ts, ok := c.LastUpdate()
	require.True(t, ok)
	require.Equal(t, 42.0, ts)

	c, err = composition.NaturalUranium(1.0)
	require.NoError(t, err)
	_, ok = c.LastUpdate()
	require.False(t, ok)
}

func TestWithNameAndUnits(t *testing.T) {
	c, err := composition.NaturalUranium(1.0,
		composition.WithName("nat_u"),
		composition.WithUnits("t"),
	)
	require.NoError(t, err)
	require.Equal(t, "nat_u", c.Name())
	require.Equal(t, "t", c.Units())
}
