package csv_isotopes

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/firetune/AtomicWeights/isotope"
)

// Schema of the isotopes CSV built by cmd/IsotopeTableCSV.
var requiredColumns = []string{"element", "symbol", "A", "mass_u", "abundance_percent", "stable"}

// Load reads an isotopes CSV file into a table.
func Load(path string) (isotope.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading isotope table %s: %w", path, err)
	}
	return tbl, nil
}

// Read parses isotope CSV rows into a table keyed by canonical symbol.
// Rows not marked stable are excluded. Each element's isotopes are sorted
// ascending by mass number. A row that fails type coercion aborts the read
// with its line number; bad data is reported, never silently defaulted.
func Read(r io.Reader) (isotope.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %v", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column '%s' in header", name)
		}
	}

	tbl := make(isotope.Table)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row on line %d: %v", line, err)
		}

		if !stableFlag(row[cols["stable"]]) {
			continue
		}

		iso := isotope.Isotope{
			Element: strings.TrimSpace(row[cols["element"]]),
			Symbol:  isotope.CanonicalSymbol(row[cols["symbol"]]),
			Stable:  true,
		}
		if iso.A, err = strconv.Atoi(strings.TrimSpace(row[cols["A"]])); err != nil {
			return nil, fmt.Errorf("bad mass number on line %d: %v", line, err)
		}
		if iso.MassU, err = strconv.ParseFloat(strings.TrimSpace(row[cols["mass_u"]]), 64); err != nil {
			return nil, fmt.Errorf("bad isotopic mass on line %d: %v", line, err)
		}
		if iso.AbundancePercent, err = strconv.ParseFloat(strings.TrimSpace(row[cols["abundance_percent"]]), 64); err != nil {
			return nil, fmt.Errorf("bad abundance on line %d: %v", line, err)
		}

		tbl[iso.Symbol] = append(tbl[iso.Symbol], iso)
	}

	tbl.SortByMassNumber()
	return tbl, nil
}

// stableFlag accepts the tolerant truthy forms found in published tables.
func stableFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
