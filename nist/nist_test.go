package nist

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firetune/AtomicWeights/csv_isotopes"
)

// Excerpt of the NIST ascii2 linearized table.
const sampleTable = `Atomic Number = 1
Atomic Symbol = H
Mass Number = 1
Relative Atomic Mass = 1.00782503223(9)
Isotopic Composition = 0.999885(70)
Standard Atomic Weight = [1.00784,1.00811]
Notes = m

Atomic Number = 1
Atomic Symbol = D
Mass Number = 2
Relative Atomic Mass = 2.01410177812(12)
Isotopic Composition = 0.000115(70)
Standard Atomic Weight = [1.00784,1.00811]
Notes = m

Atomic Number = 1
Atomic Symbol = T
Mass Number = 3
Relative Atomic Mass = 3.0160492779(24)
Isotopic Composition =
Standard Atomic Weight = [1.00784,1.00811]
Notes = m

Atomic Number = 2
Atomic Symbol = He
Mass Number = 3
Relative Atomic Mass = 3.0160293201(25)
Isotopic Composition = 0.00000134(3)
Standard Atomic Weight = 4.002602(2)
Notes = g,r

Atomic Number = 2
Atomic Symbol = He
Mass Number = 4
Relative Atomic Mass = 4.00260325413(6)
Isotopic Composition = 0.99999866(3)
Standard Atomic Weight = 4.002602(2)
Notes = g,r
`

func TestParseTable(t *testing.T) {
	rows, err := ParseTable(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}

	// Tritium has no listed composition and must be dropped.
	if len(rows) != 4 {
		t.Fatalf("parsed %d rows, want 4: %+v", len(rows), rows)
	}

	h := rows[0]
	if h.Symbol != "H" || h.Element != "Hydrogen" || h.A != 1 {
		t.Errorf("unexpected first row: %+v", h)
	}
	if math.Abs(h.MassU-1.00782503223) > 1e-12 {
		t.Errorf("uncertainty not stripped from mass: %v", h.MassU)
	}
	if math.Abs(h.AbundancePercent-99.9885) > 1e-9 {
		t.Errorf("composition not converted to atom percent: %v", h.AbundancePercent)
	}

	// NIST lists deuterium under its own symbol; the element name still
	// resolves through the atomic number.
	d := rows[1]
	if d.Symbol != "D" || d.Element != "Hydrogen" || d.A != 2 {
		t.Errorf("unexpected deuterium row: %+v", d)
	}

	he := rows[3]
	if he.Symbol != "He" || he.A != 4 || !he.Stable {
		t.Errorf("unexpected helium row: %+v", he)
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.00782503223(9)", 1.00782503223, true},
		{"12", 12, true},
		{"13.00335483507#", 13.00335483507, true},
		{"", 0, false},
		{"[1.00784,1.00811]", 0, false},
	}

	for _, c := range cases {
		got, ok := parseValue(c.in)
		if ok != c.ok || (ok && math.Abs(got-c.want) > 1e-12) {
			t.Errorf("parseValue(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestAbundanceTotals(t *testing.T) {
	rows, err := ParseTable(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}

	totals := AbundanceTotals(rows)
	if math.Abs(totals["He"]-100) > 0.001 {
		t.Errorf("He total = %f, want ~100", totals["He"])
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	rows, err := ParseTable(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "isotopes.csv")
	if err := WriteCSV(rows, path); err != nil {
		t.Fatal(err)
	}

	tbl, err := csv_isotopes.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl["He"]) != 2 {
		t.Fatalf("He has %d isotopes after round trip, want 2", len(tbl["He"]))
	}
	if tbl["He"][0].A != 3 {
		t.Errorf("He isotopes not sorted: %+v", tbl["He"])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "element,symbol,A,mass_u,abundance_percent,stable") {
		t.Errorf("csv header wrong: %s", strings.SplitN(string(data), "\n", 2)[0])
	}
}
