// Package masstable provides atomic-mass lookup (g/mol) for isotope
// identifiers, backing every atom↔mass conversion in nuclide.
//
// 🚀 Sources
//
//	• Default()            — compiled-in table covering the isotopes of the
//	                         embedded decay dataset plus common nuclides
//	• New(masses, ...)     — caller-supplied table (copied, then immutable)
//	• LoadSQLite(path,...) — rows (iso INTEGER, mass REAL) from the
//	                         isotope_masses table of a SQLite database,
//	                         read once at load via database/sql
//
// ⚙️ Lookup contract
//
//	Mass(tope) returns the tabulated g/mol value, or ErrUnknownIsotope when
//	the isotope is absent. A table built WithApproximation() instead falls
//	back to the mass number A as an estimate — adequate for rough mass
//	bookkeeping, never for criticality-grade work. Invalid identifiers
//	always fail with isotope.ErrInvalidIsotope regardless of options.
//
// Tables are immutable after construction and safe for concurrent readers.
package masstable
