// Package nist builds an isotopes CSV from NIST's
// 'Atomic Weights and Isotopic Compositions for All Elements' ASCII table.
//
// Naturally occurring isotopes with a listed composition are included, which
// for a few elements means very long-lived radioisotopes (e.g. 40K). Those
// belong in the natural composition used for atomic-weight calculations, so
// they are written with stable = true.
package nist

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/firetune/AtomicWeights/isotope"
)

const TableURL = "https://physics.nist.gov/cgi-bin/Compositions/stand_alone.pl?all=all&ascii=ascii2&ele=&isotype=all"

// FetchRows downloads and parses the NIST table.
func FetchRows(url string) ([]isotope.Isotope, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching NIST table: %s", resp.Status)
	}

	return ParseTable(resp.Body)
}

// ParseTable reads the ASCII linearized table. Each isotope block carries
// 'Atomic Number', 'Atomic Symbol', 'Mass Number', 'Relative Atomic Mass' and
// 'Isotopic Composition' lines; isotopes without a listed composition do not
// occur naturally and are dropped. Composition is converted to atom percent.
func ParseTable(r io.Reader) ([]isotope.Isotope, error) {
	var rows []isotope.Isotope

	var z, a int
	var symbol, mass, comp string

	flush := func() {
		if z == 0 || symbol == "" || a == 0 || mass == "" || comp == "" {
			return
		}
		m, ok := parseValue(mass)
		if !ok {
			return
		}
		c, ok := parseValue(comp)
		if !ok {
			return
		}

		el, known := elements[z]
		name := symbol
		if known {
			name = el.Name
		}

		rows = append(rows, isotope.Isotope{
			Element:          name,
			Symbol:           symbol,
			A:                a,
			MassU:            m,
			AbundancePercent: c * 100,
			Stable:           true,
		})
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(s, "Atomic Number ="):
			flush()
			n, err := strconv.Atoi(fieldValue(s))
			if err != nil {
				return nil, fmt.Errorf("bad atomic number line %q: %v", s, err)
			}
			z, symbol, a, mass, comp = n, "", 0, "", ""

		case strings.HasPrefix(s, "Atomic Symbol ="):
			symbol = fieldValue(s)

		case strings.HasPrefix(s, "Mass Number ="):
			flush()
			n, err := strconv.Atoi(fieldValue(s))
			if err != nil {
				return nil, fmt.Errorf("bad mass number line %q: %v", s, err)
			}
			a, mass, comp = n, "", ""

		case strings.HasPrefix(s, "Relative Atomic Mass ="):
			mass = fieldValue(s)

		case strings.HasPrefix(s, "Isotopic Composition ="):
			comp = fieldValue(s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return rows, nil
}

func fieldValue(line string) string {
	_, v, _ := strings.Cut(line, "=")
	return strings.TrimSpace(v)
}

// parseValue parses a NIST numeric field, dropping the trailing uncertainty
// in parentheses and '#' estimation markers, e.g. "119.90220163(26)".
func parseValue(s string) (float64, bool) {
	if i := strings.IndexAny(s, "(#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WriteCSV writes rows in the schema consumed by csv_isotopes.
func WriteCSV(rows []isotope.Isotope, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"element", "symbol", "A", "mass_u", "abundance_percent", "stable"}); err != nil {
		f.Close()
		return err
	}

	for i := range rows {
		r := &rows[i]
		rec := []string{
			r.Element,
			r.Symbol,
			strconv.Itoa(r.A),
			strconv.FormatFloat(r.MassU, 'f', -1, 64),
			strconv.FormatFloat(r.AbundancePercent, 'f', -1, 64),
			strconv.FormatBool(r.Stable),
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// AbundanceTotals sums abundance percent per symbol, for sanity reporting
// after a build. Complete elements should total ~100.
func AbundanceTotals(rows []isotope.Isotope) map[string]float64 {
	totals := make(map[string]float64)
	for i := range rows {
		totals[rows[i].Symbol] += rows[i].AbundancePercent
	}
	return totals
}
