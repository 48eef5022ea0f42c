package main

import (
	"fmt"
	"os"

	"github.com/firetune/AtomicWeights/atomicweight"
	"github.com/firetune/AtomicWeights/csv_isotopes"
	"github.com/firetune/AtomicWeights/isotope"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var naturalCmd = &cobra.Command{
	Use:   "natural <symbol>",
	Short: "Natural atomic weight of an element from its stable isotopes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, source, err := loadTable()
		if err != nil {
			return err
		}

		w, err := atomicweight.Natural(args[0], tbl)
		if err != nil {
			return err
		}

		fmt.Printf("Atomic weight (natural) for %s: %.6f u  (table: %s)\n",
			isotope.CanonicalSymbol(args[0]), w, source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(naturalCmd)
}

// loadTable reads the configured CSV table, falling back to the built-in
// seed when no CSV is present.
func loadTable() (isotope.Table, string, error) {
	path := viper.GetString("csv")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			tbl, err := csv_isotopes.Load(path)
			if err != nil {
				return nil, "", err
			}
			return tbl, path, nil
		}
	}
	return isotope.Seed(), "built-in seed", nil
}
