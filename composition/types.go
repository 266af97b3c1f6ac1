// SPDX-License-Identifier: MIT
// Package composition: sentinel error set, basis and mapping types,
// physical constants, and construction options.
package composition

import (
	"errors"

	"github.com/katalvlaran/nuclide/decay"
	"github.com/katalvlaran/nuclide/isotope"
	"github.com/katalvlaran/nuclide/masstable"
)

// Physical constants and defaults shared by every composition.
const (
	// EPS is the conservation tolerance in kg: quantities whose mass
	// equivalent is within EPS of zero are treated as exactly zero.
	EPS = 1e-6

	// Avogadro relates atom counts to moles: atoms = moles × Avogadro.
	Avogadro = 6.02e23

	// WFU235 is the weight fraction of U-235 in natural uranium, the
	// default feed composition.
	WFU235 = 0.0072

	// DefaultUnits is the mass unit label attached to new compositions.
	DefaultUnits = "kg"
)

// Sentinel errors for construction and material operations.
var (
	// ErrEmptyComposition indicates a nil, empty, or all-zero mapping where
	// a non-empty composition is required.
	ErrEmptyComposition = errors.New("composition: empty composition")

	// ErrBadBasis indicates a basis value other than AtomBased or MassBased.
	ErrBadBasis = errors.New("composition: unknown basis")

	// ErrBadScale indicates a non-positive or non-finite scale factor.
	ErrBadScale = errors.New("composition: scale must be positive and finite")

	// ErrBadQuantity indicates a negative or non-finite quantity in a
	// supplied mapping.
	ErrBadQuantity = errors.New("composition: quantity must be non-negative and finite")

	// ErrBadFraction indicates a negative or non-finite fraction passed to
	// FracComp.
	ErrBadFraction = errors.New("composition: fraction must be non-negative and finite")

	// ErrConservation indicates an extraction requesting more of an isotope
	// (or more mass) than the composition holds, beyond the EPS tolerance.
	// The target composition is left unmodified.
	ErrConservation = errors.New("composition: conservation violation")

	// ErrInvalidated indicates use of a composition that was consumed by a
	// previous Absorb.
	ErrInvalidated = errors.New("composition: composition has been absorbed")

	// ErrNilComposition indicates a nil *Composition argument.
	ErrNilComposition = errors.New("composition: nil composition")

	// ErrSelfOperation indicates absorbing or extracting a composition
	// from itself.
	ErrSelfOperation = errors.New("composition: operation on itself")

	// ErrNoTimestamp indicates DecaySinceUpdate on a composition that never
	// recorded an update time.
	ErrNoTimestamp = errors.New("composition: no recorded update time")
)

// Basis declares whether a supplied mapping (and its scale factor) is
// expressed in atom counts or in mass.
type Basis int

const (
	// AtomBased: quantities are atom counts.
	AtomBased Basis = iota

	// MassBased: quantities are masses in DefaultUnits.
	MassBased
)

// CompMap maps isotope identifiers to non-negative quantities — atom counts
// or masses depending on the declared basis. Keys are unique and unordered.
type CompMap map[isotope.Iso]float64

// Options configures a Composition at construction time.
//
// Name    – recipe name attached to the composition (informational).
// Units   – mass unit label (informational; all arithmetic assumes kg).
// Table   – atomic-mass source for rationalization.
// Network – decay network; nil means "resolve the process-wide network at
//
//	decay time" (decay.Global).
type Options struct {
	Name         string
	Units        string
	Table        *masstable.Table
	Network      *decay.Network
	Timestamp    float64
	HasTimestamp bool
}

// Option mutates Options before construction.
type Option func(*Options)

// DefaultOptions returns the Options every constructor starts from:
// kg units, the compiled-in mass table, and the process-wide decay network.
func DefaultOptions() Options {
	return Options{
		Units: DefaultUnits,
		Table: masstable.Default(),
	}
}

// WithName attaches a recipe name.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithUnits overrides the mass unit label.
func WithUnits(units string) Option {
	return func(o *Options) { o.Units = units }
}

// WithMassTable overrides the atomic-mass source.
func WithMassTable(t *masstable.Table) Option {
	return func(o *Options) { o.Table = t }
}

// WithNetwork pins the composition to a specific decay network instead of
// the process-wide one.
func WithNetwork(n *decay.Network) Option {
	return func(o *Options) { o.Network = n }
}

// WithTimestamp records the simulation time (months) of the initial
// composition, enabling DecaySinceUpdate.
func WithTimestamp(t float64) Option {
	return func(o *Options) {
		o.Timestamp = t
		o.HasTimestamp = true
	}
}
