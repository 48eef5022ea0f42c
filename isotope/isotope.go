package isotope

import (
	"sort"
	"strings"
)

// Isotope is one nuclide of an element, with its mass and natural abundance.
type Isotope struct {
	Element          string  `json:"element"`
	Symbol           string  `json:"symbol"`
	A                int     `json:"a"` // mass number
	MassU            float64 `json:"mass_u"`
	AbundancePercent float64 `json:"abundance_percent"` // atom percent, by number
	Stable           bool    `json:"stable"`
}

// Table maps a canonical element symbol to its isotopes, ascending by mass number.
// Never mutated after construction, so it is safe to share between goroutines.
type Table map[string][]Isotope

// CanonicalSymbol normalizes an element symbol for table lookup.
// Symbols are case-insensitive on input: "sn", "SN" and " Sn " all become "Sn".
func CanonicalSymbol(s string) string {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 1:
		return strings.ToUpper(s)
	case 2:
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	}
	return s
}

// SortByMassNumber orders every element's isotope list ascending by A.
func (t Table) SortByMassNumber() {
	for sym := range t {
		list := t[sym]
		sort.Slice(list, func(i, j int) bool { return list[i].A < list[j].A })
	}
}

// Symbols returns the table's element symbols in sorted order.
func (t Table) Symbols() []string {
	syms := make([]string, 0, len(t))
	for sym := range t {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
