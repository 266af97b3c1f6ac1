package decay

import "gonum.org/v1/gonum/mat"

// buildMatrix constructs the decay matrix from the populated parent and
// daughter tables. Entry (i,i) = −λᵢ for parent column i; entry (j,i) is
// incremented by λᵢ·b for each branch of parent i whose daughter holds
// column j. Branches to untracked daughters contribute nothing — that decay
// path is a sink and its share leaves the tracked vector.
//
// Called exactly once, at the end of Parse; the matrix is read-only after.
func (n *Network) buildMatrix() {
	size := len(n.order)
	m := mat.NewDense(size, size, nil)
	for _, parent := range n.order {
		p := n.parents[parent]
		m.Set(p.Col, p.Col, -p.Lambda)
		for _, b := range n.daughters[p.Col] {
			dp, tracked := n.parents[b.Daughter]
			if !tracked {
				continue // sink: daughter has no column
			}
			m.Set(dp.Col, p.Col, m.At(dp.Col, p.Col)+p.Lambda*b.Ratio)
		}
	}
	n.matrix = m
}

// Matrix returns a defensive copy of the decay matrix, sized Size()×Size().
// Intended for inspection and tests; Apply uses the shared internal value.
func (n *Network) Matrix() *mat.Dense {
	return mat.DenseCopyOf(n.matrix)
}

// Apply evolves the population vector v by the elapsed time in months,
// returning exp(M·Δt)·v as a fresh slice. v is indexed by matrix column
// (see Col) and is not modified.
//
// Stage 1 (Validate): vector length must equal Size(); time must be ≥ 0.
// Stage 2 (Shortcut): Δt = 0 returns a copy of v — exp(0) is the identity.
// Stage 3 (Execute): scale the matrix by Δt, exponentiate, multiply.
//
// The kernel returns raw values: tiny negative entries from floating-point
// round-off are possible and tolerance policy belongs to the caller.
//
// Complexity: O(Size()³) time, O(Size()²) memory.
func (n *Network) Apply(v []float64, months float64) ([]float64, error) {
	if len(v) != len(n.order) {
		return nil, ErrDimensionMismatch
	}
	if months < 0 {
		return nil, ErrNegativeTime
	}

	out := make([]float64, len(v))
	if months == 0 {
		copy(out, v)

		return out, nil
	}

	var scaled mat.Dense
	scaled.Scale(months, n.matrix)
	var expm mat.Dense
	expm.Exp(&scaled)

	res := mat.NewVecDense(len(v), out)
	res.MulVec(&expm, mat.NewVecDense(len(v), v))

	return out, nil
}
