// Package nuclide is an in-memory engine for modeling the isotopic
// composition of radioactive material — from identifier arithmetic to
// full decay-chain evolution via matrix exponentiation.
//
// 🚀 What is nuclide?
//
//	A pure-Go library that keeps the atom-count and mass views of a
//	quantity of matter mutually consistent while it is created, split,
//	merged, and aged:
//		• Isotope identity: ZZAAAM identifiers, atomic/mass number extraction
//		• Mass data: atomic masses from an embedded table or a SQLite source
//		• Decay network: parent decay constants + daughter branching ratios
//		• Decay matrix: one shared transition matrix, built once per load
//		• Composition store: dual atom/mass representation with conservation
//		  tolerance handling on every operation
//		• Material operations: absorb, extract, proportional mass extraction
//
// ✨ Why choose nuclide?
//
//   - Closed-form decay – exp(M·Δt) solves the Bateman equations exactly,
//     no stepwise integration, no stiffness trouble across half-lives
//     spanning thirty orders of magnitude
//   - Conservation by construction – every mutation leaves atoms and mass
//     consistent within a fixed tolerance, or fails cleanly
//   - Deterministic – column assignment, normalization, and splitting are
//     reproducible for a given decay dataset
//
// Everything is organized under five subpackages:
//
//	isotope/     — identifier codec and validity rules
//	masstable/   — atomic-mass lookup (embedded, SQLite, or approximated)
//	decay/       — decay-network model, matrix builder, exp(M·Δt) kernel
//	composition/ — the dual atom/mass composition store and its operations
//	material/    — serial-numbered material facade over a composition
//
// Quick sketch:
//
//	natU := composition.CompMap{922350: 0.0072, 922380: 0.9928}
//	c, _ := composition.New(natU, composition.MassBased, 1000) // 1 tonne
//	_ = c.Decay(12)                                            // one year
//
// Dive into each package's doc.go for contracts, error sets, and examples.
package nuclide
