// SPDX-License-Identifier: MIT
// Package decay: sentinel error set, value types, and numeric policy.
// All loaders and kernels return these sentinels (optionally wrapped with
// record context via fmt.Errorf and %w); tests match them with errors.Is.
package decay

import (
	"errors"

	"github.com/katalvlaran/nuclide/isotope"
)

// RatioEPS is the tolerance within which a parent's branching ratios must
// sum to 1 for the dataset to be accepted.
const RatioEPS = 1e-6

// Sentinel errors for dataset loading and matrix application.
var (
	// ErrBadFormat indicates a malformed dataset token stream: a non-numeric
	// token, a truncated record, or a negative daughter count.
	ErrBadFormat = errors.New("decay: malformed decay dataset")

	// ErrBadDecayConst indicates a negative or non-finite decay constant.
	ErrBadDecayConst = errors.New("decay: decay constant must be finite and non-negative")

	// ErrBadBranchRatio indicates a branching ratio outside (0, 1].
	ErrBadBranchRatio = errors.New("decay: branching ratio must be in (0, 1]")

	// ErrBranchRatioSum indicates a parent whose branching ratios do not sum
	// to 1 within RatioEPS.
	ErrBranchRatioSum = errors.New("decay: branching ratios do not sum to 1")

	// ErrDuplicateParent indicates the same parent isotope declared twice.
	ErrDuplicateParent = errors.New("decay: duplicate parent isotope")

	// ErrEmptyNetwork indicates a dataset with no parent records at all.
	ErrEmptyNetwork = errors.New("decay: empty decay network")

	// ErrNotLoaded indicates that the process-wide network was queried
	// before any successful Load/LoadFrom/Reload.
	ErrNotLoaded = errors.New("decay: decay network not loaded")

	// ErrDimensionMismatch indicates an Apply vector whose length differs
	// from the network's column count.
	ErrDimensionMismatch = errors.New("decay: vector length does not match network size")

	// ErrNegativeTime indicates a negative elapsed time passed to Apply.
	ErrNegativeTime = errors.New("decay: elapsed time must be non-negative")
)

// Parent describes one tracked parent isotope: its assigned decay-matrix
// column and its decay constant λ in 1/month (0 for stable isotopes).
type Parent struct {
	Col    int
	Lambda float64
}

// Branch describes one decay path of a parent: the daughter isotope and the
// fraction of the parent's decays that produce it.
type Branch struct {
	Daughter isotope.Iso
	Ratio    float64
}
