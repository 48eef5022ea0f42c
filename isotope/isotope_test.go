package isotope_test

import (
	"testing"

	"github.com/firetune/AtomicWeights/isotope"
)

func TestCanonicalSymbol(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"sn", "Sn"},
		{"SN", "Sn"},
		{" Sn ", "Sn"},
		{"h", "H"},
		{"H", "H"},
		{"cu", "Cu"},
		{" o", "O"},
		{"Uus", "Uus"}, // longer than 2 chars passes through trimmed
		{"", ""},
	}

	for _, c := range cases {
		if got := isotope.CanonicalSymbol(c.in); got != c.want {
			t.Errorf("CanonicalSymbol(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSeed(t *testing.T) {
	tbl := isotope.Seed()

	isos, ok := tbl["Sn"]
	if !ok {
		t.Fatal("seed table has no Sn entry")
	}
	if len(isos) != 10 {
		t.Fatalf("seed Sn has %d isotopes, want 10", len(isos))
	}

	total := 0.0
	for i := range isos {
		if i > 0 && isos[i].A <= isos[i-1].A {
			t.Errorf("seed Sn not sorted by mass number: A=%d after A=%d", isos[i].A, isos[i-1].A)
		}
		if !isos[i].Stable {
			t.Errorf("seed Sn-%d not marked stable", isos[i].A)
		}
		total += isos[i].AbundancePercent
	}
	if total < 99.5 || total > 100.5 {
		t.Errorf("seed Sn abundances sum to %f, want ~100", total)
	}
}

func TestSeedReturnsCopy(t *testing.T) {
	first := isotope.Seed()
	first["Sn"][0].MassU = 0
	delete(first, "Sn")

	second := isotope.Seed()
	if len(second["Sn"]) != 10 {
		t.Fatal("mutating a seed copy affected subsequent copies")
	}
	if second["Sn"][0].MassU == 0 {
		t.Fatal("mutating a seed isotope affected subsequent copies")
	}
}

func TestSortByMassNumber(t *testing.T) {
	tbl := isotope.Table{
		"B": {
			{Element: "Boron", Symbol: "B", A: 11, MassU: 11.00930536},
			{Element: "Boron", Symbol: "B", A: 10, MassU: 10.01293695},
		},
	}
	tbl.SortByMassNumber()

	if tbl["B"][0].A != 10 || tbl["B"][1].A != 11 {
		t.Errorf("table not sorted by mass number: %+v", tbl["B"])
	}
}

func TestSymbols(t *testing.T) {
	tbl := isotope.Table{"Sn": nil, "Cu": nil, "H": nil}
	got := tbl.Symbols()
	want := []string{"Cu", "H", "Sn"}
	if len(got) != len(want) {
		t.Fatalf("Symbols() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Symbols() = %v, want %v", got, want)
		}
	}
}
