package masstable

import (
	"database/sql"
	"fmt"

	"github.com/katalvlaran/nuclide/isotope"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// LoadSQLite reads an atomic-mass table from a SQLite database file.
//
// Expected schema:
//
//	CREATE TABLE isotope_masses (
//	    iso  INTEGER PRIMARY KEY,  -- ZZAAAM identifier
//	    mass REAL NOT NULL         -- atomic mass in g/mol
//	);
//
// The whole table is read once at load; the database is closed before
// LoadSQLite returns, and the resulting Table is immutable. Rows with
// invalid identifiers or non-positive masses abort the load.
func LoadSQLite(path string, opts ...Option) (*Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("masstable: open sqlite: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(`SELECT iso, mass FROM isotope_masses`)
	if err != nil {
		return nil, fmt.Errorf("masstable: select isotope_masses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	masses := make(map[isotope.Iso]float64)
	for rows.Next() {
		var (
			tope int64
			m    float64
		)
		if err = rows.Scan(&tope, &m); err != nil {
			return nil, fmt.Errorf("masstable: scan isotope_masses: %w", err)
		}
		if err = isotope.Check(isotope.Iso(tope)); err != nil {
			return nil, fmt.Errorf("masstable: row iso=%d: %w", tope, err)
		}
		if m <= 0 {
			return nil, fmt.Errorf("masstable: row iso=%d: %w", tope, ErrBadMass)
		}
		masses[isotope.Iso(tope)] = m
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("masstable: read isotope_masses: %w", err)
	}

	return New(masses, opts...)
}
