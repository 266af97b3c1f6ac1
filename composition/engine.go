package composition

import (
	"github.com/katalvlaran/nuclide/decay"
	"github.com/katalvlaran/nuclide/isotope"
)

// Decay advances the composition by the elapsed time in months through the
// decay network, in closed form: the atom view is packed into the network's
// column vector, evolved as exp(M·Δt)·v, and unpacked back, after which the
// mass view is re-derived. Time is in the unit the decay constants were
// loaded in (months for the embedded dataset); no conversion happens here.
//
// Isotopes without a column in the network are inert and pass through
// unchanged. Entries the evolution leaves within the conservation tolerance
// of zero are dropped as numerical noise. Decays into untracked daughters
// leave the composition entirely (sinks), so total mass may shrink — that
// loss is decay-chain truncation, not a conservation violation.
//
// The store is never observable in a half-updated state: the new views are
// built aside and swapped in only when every step has succeeded. A missing
// decay network is an error (decay.ErrNotLoaded), never a silent no-op.
//
// Complexity: O(S³) for network size S, dominated by the matrix exponential.
func (c *Composition) Decay(months float64) error {
	if c.invalid {
		return ErrInvalidated
	}
	net := c.network
	if net == nil {
		var err error
		if net, err = decay.Global(); err != nil {
			return err
		}
	}

	// Pack tracked isotopes into the column vector; keep the rest aside.
	v := make([]float64, net.Size())
	next := make(map[isotope.Iso]float64, len(c.atoms))
	for tope, a := range c.atoms {
		if col, ok := net.Col(tope); ok {
			v[col] += a
			continue
		}
		next[tope] = a // inert: no decay constant, no decay
	}

	out, err := net.Apply(v, months)
	if err != nil {
		return err
	}

	// Unpack, discarding round-off noise within the tolerance.
	for col := range out {
		a := out[col]
		if a <= 0 {
			continue
		}
		tope, _ := net.IsoAt(col)
		if a < c.atomTolerance(tope) {
			continue
		}
		next[tope] += a
	}

	return c.setAtomView(next)
}

// DecaySinceUpdate advances the composition by the time elapsed between its
// last recorded update and now (simulation months), then records now as the
// new update time. Requires a prior timestamp — from WithTimestamp, a
// ChangeComp, or an earlier DecaySinceUpdate — otherwise ErrNoTimestamp.
func (c *Composition) DecaySinceUpdate(now float64) error {
	if c.invalid {
		return ErrInvalidated
	}
	if !c.hasUpdate {
		return ErrNoTimestamp
	}
	if now < c.lastUpdate {
		return decay.ErrNegativeTime
	}

	if err := c.Decay(now - c.lastUpdate); err != nil {
		return err
	}
	c.lastUpdate = now

	return nil
}
