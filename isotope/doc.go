// Package isotope defines the integer isotope identifier used throughout
// nuclide and the pure functions that decode it.
//
// An identifier packs atomic number Z, mass number A, and an isomeric-state
// digit M into fixed decimal positions (ZZAAAM):
//
//	iso = Z·10000 + A·10 + M
//
// so U-235 is 922350, Cs-137 is 551370, and the metastable Ba-137m is
// 561371. An identifier is valid iff Z ≥ 1 and A ≥ Z; everything in this
// module rejects invalid identifiers up front via Check.
//
// The package is stateless: all functions are O(1) integer arithmetic with
// no allocation.
package isotope
