package material

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/nuclide/composition"
)

// ErrNilSequence indicates construction without an ID sequence.
var ErrNilSequence = errors.New("material: nil sequence")

// ErrNilMaterial indicates a nil *Material argument.
var ErrNilMaterial = errors.New("material: nil material")

// Sequence issues strictly increasing material serial numbers. A zero
// Sequence is ready to use; the first Next is 1. Next is safe to call from
// concurrent constructors.
type Sequence struct {
	n atomic.Int64
}

// NewSequence returns a fresh counter starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next serial number.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

// Material is a serial-numbered quantity of matter: a composition store
// plus the identity the simulation moves between facilities. All quantity
// bookkeeping delegates to the composition.
type Material struct {
	id   int64
	seq  *Sequence // kept for ExtractMass offspring
	comp *composition.Composition
}

// New constructs a material from a recipe: the mapping, its unit label and
// recipe name, a scale factor, and the basis the mapping is expressed in.
// The sequence issues the material's serial number and is retained for
// materials split off later.
func New(seq *Sequence, comp composition.CompMap, units, name string, scale float64, basis composition.Basis, opts ...composition.Option) (*Material, error) {
	if seq == nil {
		return nil, ErrNilSequence
	}

	merged := append([]composition.Option{
		composition.WithUnits(units),
		composition.WithName(name),
	}, opts...)
	c, err := composition.New(comp, basis, scale, merged...)
	if err != nil {
		return nil, err
	}

	return &Material{id: seq.Next(), seq: seq, comp: c}, nil
}

// ID returns the material's serial number.
func (m *Material) ID() int64 { return m.id }

// Name returns the recipe name.
func (m *Material) Name() string { return m.comp.Name() }

// Units returns the mass unit label.
func (m *Material) Units() string { return m.comp.Units() }

// Composition exposes the underlying store for quantity queries and
// operations not wrapped here.
func (m *Material) Composition() *composition.Composition { return m.comp }

// TotalMass delegates to the composition store.
func (m *Material) TotalMass() float64 { return m.comp.TotalMass() }

// TotalAtoms delegates to the composition store.
func (m *Material) TotalAtoms() float64 { return m.comp.TotalAtoms() }

// Absorb merges other's composition into m; other is consumed.
func (m *Material) Absorb(other *Material) error {
	if other == nil {
		return ErrNilMaterial
	}

	return m.comp.Absorb(other.comp)
}

// Extract removes other's composition from m; other stays usable as the
// removed material.
func (m *Material) Extract(other *Material) error {
	if other == nil {
		return ErrNilMaterial
	}

	return m.comp.Extract(other.comp)
}

// ExtractMass splits off a new material of the given mass with the same
// stoichiometry, numbered from the same sequence as m.
func (m *Material) ExtractMass(kg float64) (*Material, error) {
	c, err := m.comp.ExtractMass(kg)
	if err != nil {
		return nil, err
	}

	return &Material{id: m.seq.Next(), seq: m.seq, comp: c}, nil
}

// Decay ages the material by the elapsed time in months.
func (m *Material) Decay(months float64) error {
	return m.comp.Decay(months)
}
