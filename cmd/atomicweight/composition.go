package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/firetune/AtomicWeights/atomicweight"
	"github.com/spf13/cobra"
)

var compMasses, compWeights string

var compositionCmd = &cobra.Command{
	Use:   "composition",
	Short: "Average atomic mass from isotopic masses and mass-based weights",
	Long: "Computes the mole-fraction-weighted mean mass from parallel lists of" +
		" isotopic masses (u) and composition weights. Weights summing to ~100 are" +
		" taken as weight percents, anything else as arbitrary mass weights.",
	RunE: func(cmd *cobra.Command, args []string) error {
		masses, err := parseFloats(compMasses)
		if err != nil {
			return fmt.Errorf("bad --masses: %w", err)
		}
		weights, err := parseFloats(compWeights)
		if err != nil {
			return fmt.Errorf("bad --weights: %w", err)
		}

		w, err := atomicweight.FromWeightPercent(masses, weights)
		if err != nil {
			return err
		}

		mode := "mass fractions"
		if atomicweight.PercentInput(weights, atomicweight.DefaultPercentWindow) {
			mode = "weight percents"
		}
		fmt.Printf("Atomic weight: %.6f u  (weights read as %s)\n", w, mode)
		return nil
	},
}

func init() {
	compositionCmd.Flags().StringVar(&compMasses, "masses", "", "comma-separated isotopic masses in u")
	compositionCmd.Flags().StringVar(&compWeights, "weights", "", "comma-separated weight percents or mass fractions")
	compositionCmd.MarkFlagRequired("masses")
	compositionCmd.MarkFlagRequired("weights")
	rootCmd.AddCommand(compositionCmd)
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
