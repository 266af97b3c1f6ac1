// Package composition_test: conservation-preserving material operations.
package composition_test

import (
	"testing"

	"github.com/katalvlaran/nuclide/composition"
	"github.com/stretchr/testify/require"
)

func TestAbsorb_ConservesTotals(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)
	b, err := composition.NaturalUranium(2.0)
	require.NoError(t, err)

	wantAtoms := a.TotalAtoms() + b.TotalAtoms()
	wantMass := a.TotalMass() + b.TotalMass()
	wantU235 := a.AtomComp(u235) + b.AtomComp(u235)

	require.NoError(t, a.Absorb(b))

	// Exact isotope-by-isotope addition, no renormalization.
	require.Equal(t, wantAtoms, a.TotalAtoms())
	require.Equal(t, wantMass, a.TotalMass())
	require.Equal(t, wantU235, a.AtomComp(u235))
}

func TestAbsorb_InvalidatesOther(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)
	b, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	require.NoError(t, a.Absorb(b))

	// The absorbed composition is consumed: all further operations fail.
	require.ErrorIs(t, a.Absorb(b), composition.ErrInvalidated)
	require.ErrorIs(t, b.Decay(1), composition.ErrInvalidated)
	_, err = b.ExtractMass(0.1)
	require.ErrorIs(t, err, composition.ErrInvalidated)
}

func TestAbsorb_ArgumentGuards(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	require.ErrorIs(t, a.Absorb(nil), composition.ErrNilComposition)
	require.ErrorIs(t, a.Absorb(a), composition.ErrSelfOperation)
}

func TestExtract_Succeeds(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)
	part, err := composition.NaturalUranium(0.25)
	require.NoError(t, err)

	require.NoError(t, a.Extract(part))
	require.InDelta(t, 0.75, a.TotalMass(), composition.EPS)
	// The extracted composition stays usable — it is the removed material.
	require.InDelta(t, 0.25, part.TotalMass(), composition.EPS)
}

func TestExtract_ConservationViolationLeavesUnmodified(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)
	too, err := composition.NaturalUranium(1.5)
	require.NoError(t, err)

	before := a.AtomMap()
	err = a.Extract(too)
	require.ErrorIs(t, err, composition.ErrConservation)

	// No partial subtraction.
	after := a.AtomMap()
	require.Equal(t, before, after)
	require.InDelta(t, 1.0, a.TotalMass(), 1e-12)
}

func TestExtract_FullDepletionRemovesEntries(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)
	all, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	require.NoError(t, a.Extract(all))
	require.Zero(t, a.AtomComp(u235))
	require.Zero(t, a.AtomComp(u238))
	require.InDelta(t, 0, a.TotalMass(), composition.EPS)
}

func TestExtractMass_ProportionalSplit(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)
	fracBefore := a.MassComp(u235) / a.TotalMass()

	part, err := a.ExtractMass(0.25)
	require.NoError(t, err)

	require.InDelta(t, 0.25, part.TotalMass(), composition.EPS)
	require.InDelta(t, 0.75, a.TotalMass(), composition.EPS)

	// Stoichiometry preserved on both sides of the split.
	require.InEpsilon(t, fracBefore, part.MassComp(u235)/part.TotalMass(), 1e-9)
	require.InEpsilon(t, fracBefore, a.MassComp(u235)/a.TotalMass(), 1e-9)
}

func TestExtractMass_Overdraw(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	before := a.AtomMap()
	_, err = a.ExtractMass(1.1)
	require.ErrorIs(t, err, composition.ErrConservation)
	require.Equal(t, before, a.AtomMap())

	_, err = a.ExtractMass(-0.1)
	require.ErrorIs(t, err, composition.ErrConservation)
}

func TestExtractMass_WithinToleranceTakesAll(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	// Request within EPS above the total: everything is extracted.
	part, err := a.ExtractMass(a.TotalMass() + composition.EPS/2)
	require.NoError(t, err)
	require.InDelta(t, 1.0, part.TotalMass(), composition.EPS)
	require.InDelta(t, 0, a.TotalMass(), composition.EPS)

	_, err = a.ExtractMass(0.1)
	require.ErrorIs(t, err, composition.ErrEmptyComposition)
}

func TestChangeComp_AddAndRecordTime(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	const added = 1e20
	require.NoError(t, a.ChangeComp(cs137, added, 7.5))
	require.InDelta(t, added, a.AtomComp(cs137), 1)

	ts, ok := a.LastUpdate()
	require.True(t, ok)
	require.Equal(t, 7.5, ts)

	// Mass view re-rationalized: Cs-137 now carries mass.
	require.Greater(t, a.MassComp(cs137), 0.0)
}

func TestChangeComp_SubtractBeyondToleranceFails(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	before := a.AtomMap()
	err = a.ChangeComp(u235, -2*a.AtomComp(u235), 1)
	require.ErrorIs(t, err, composition.ErrConservation)
	require.Equal(t, before, a.AtomMap())

	// Timestamp untouched on failure.
	_, ok := a.LastUpdate()
	require.False(t, ok)
}

func TestChangeComp_SubtractToZeroDropsEntry(t *testing.T) {
	a, err := composition.NaturalUranium(1.0)
	require.NoError(t, err)

	require.NoError(t, a.ChangeComp(u235, -a.AtomComp(u235), 3))
	require.Zero(t, a.AtomComp(u235))
	require.Zero(t, a.MassComp(u235))
	require.InDelta(t, 1-composition.WFU235, a.TotalMass(), composition.EPS)
}
