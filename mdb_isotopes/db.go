package mdb_isotopes

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/firetune/AtomicWeights/isotope"
	_ "github.com/mattn/go-adodb"
)

// Driver has problems with multiple connections.
// DB is a file on disk anyway.
var querySerializer sync.Mutex

// Load reads the lab's isotope reference table from an Access database.
// Rows not marked stable, or with missing fields, are excluded.
func Load(dsn string) (isotope.Table, error) {
	querySerializer.Lock()
	defer querySerializer.Unlock()

	db, err := sql.Open("adodb", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT Element, Symbol, MassNumber, MassU, AbundancePercent, Stable
		FROM IsotopeTbl
		ORDER BY Symbol, MassNumber;`)
	if err != nil {
		return nil, fmt.Errorf("error querying 'IsotopeTbl': %v", err)
	}
	defer rows.Close()

	tbl := make(isotope.Table)

	for rows.Next() {
		var element, symbol sql.NullString
		var massNumber sql.NullInt64
		var massU, abundance sql.NullFloat64
		var stable sql.NullBool

		err := rows.Scan(&element, &symbol, &massNumber, &massU, &abundance, &stable)
		if err != nil {
			return nil, fmt.Errorf("error scanning row from 'IsotopeTbl': %v", err)
		}

		if !symbol.Valid || !massNumber.Valid || !massU.Valid || !abundance.Valid {
			continue
		}
		if !stable.Valid || !stable.Bool {
			continue
		}

		iso := isotope.Isotope{
			Symbol:           isotope.CanonicalSymbol(symbol.String),
			A:                int(massNumber.Int64),
			MassU:            massU.Float64,
			AbundancePercent: abundance.Float64,
			Stable:           true,
		}
		if element.Valid {
			iso.Element = element.String
		}

		tbl[iso.Symbol] = append(tbl[iso.Symbol], iso)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows from 'IsotopeTbl': %v", err)
	}

	tbl.SortByMassNumber()
	return tbl, nil
}
