// Package decay models the radioactive decay network — parent isotopes,
// decay constants, and branching ratios to daughters — and evolves isotope
// populations through it in closed form.
//
// 🚀 What is the decay network?
//
//	A directed multigraph over isotopes. Each parent carries a decay
//	constant λ (1/month) and a stable column index in the shared decay
//	matrix; each of its decays produces a daughter with some branching
//	ratio, and the ratios of one parent sum to 1. Stable isotopes are
//	parents with λ=0 and no daughters. A daughter without a column of its
//	own is a sink: its share leaves the tracked vector by design
//	(decay-chain truncation).
//
// ✨ The decay matrix
//
//	Entry (i,i) = −λᵢ; entry (j,i) = λᵢ·b for each tracked daughter j of
//	parent i with branching ratio b. Representing the whole network as one
//	matrix lets Apply solve the Bateman equations exactly as exp(M·Δt)·v —
//	one matrix exponential regardless of chain depth or branching, immune
//	to the stiffness of half-lives differing by orders of magnitude.
//	The matrix is built once per load and shared read-only afterwards.
//
// ⚙️ Usage:
//
//	net, err := decay.Load()           // embedded dataset, idempotent
//	// or: net, err := decay.LoadFrom(r) // caller-supplied dataset
//	col, ok := net.Col(922380)         // U-238's matrix column
//	out, err := net.Apply(v, 12.0)     // evolve v by twelve months
//
// Dataset format (token stream, # starts a comment):
//
//	parent λ n daughter₁ branch₁ ... daughterₙ branchₙ
//
// λ is in 1/month — the engine performs no unit conversion. Column
// assignment follows record order, so a given dataset always produces the
// same matrix.
//
// Performance: building is O(P + D) for P parents and D branches; Apply is
// dominated by the matrix exponential, O(P³) on a bounded network size.
package decay
