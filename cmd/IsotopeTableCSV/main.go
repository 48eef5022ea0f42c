// Builds a full isotopes.csv from NIST's 'Atomic Weights and Isotopic
// Compositions for All Elements' table, for use by the AtomicWeights service.
package main

import (
	"flag"
	"fmt"

	"github.com/firetune/AtomicWeights/log"
	"github.com/firetune/AtomicWeights/nist"
)

func main() {
	out := flag.String("out", "isotopes.csv", "Output CSV file path.")
	url := flag.String("url", nist.TableURL, "NIST isotopic compositions table URL.")
	flag.Parse()

	rows, err := nist.FetchRows(*url)
	if err != nil {
		log.Fatal(err)
	}

	if err = nist.WriteCSV(rows, *out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %d isotopes to %s\n", len(rows), *out)

	// Sanity check some common elements; complete ones should total ~100%.
	totals := nist.AbundanceTotals(rows)
	for _, sym := range []string{"H", "O", "Sn", "Pb", "W", "Xe", "K", "Cl"} {
		if total, ok := totals[sym]; ok {
			fmt.Printf("  %s: total abundance ~ %.3f%% (should be ~100%%)\n", sym, total)
		}
	}
}
