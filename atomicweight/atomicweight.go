package atomicweight

import (
	"errors"
	"fmt"
	"math"

	"github.com/firetune/AtomicWeights/isotope"
)

const (
	// DefaultAbundanceTolerance is the allowed deviation of an element's summed
	// natural abundances from 100%, in percentage points.
	DefaultAbundanceTolerance = 0.5

	// DefaultPercentWindow is the window around 100 within which composition
	// weights are treated as percentages rather than arbitrary mass weights.
	DefaultPercentWindow = 1.0
)

var (
	ErrNotFound         = errors.New("no stable isotope data for element")
	ErrInconsistentData = errors.New("isotope abundances do not sum to ~100%")
	ErrShapeMismatch    = errors.New("masses and weights must have the same length")
	ErrInvalidMass      = errors.New("all masses must be positive")
	ErrInvalidWeight    = errors.New("all weight entries must be nonnegative")
	ErrDegenerateInput  = errors.New("sum of weights is zero")
	ErrZeroDenominator  = errors.New("denominator became zero")
)

// Natural computes the natural atomic weight of an element: the mean of its
// stable isotopes' masses weighted by natural abundance (atom percent).
func Natural(symbol string, t isotope.Table) (float64, error) {
	return NaturalTolerance(symbol, t, DefaultAbundanceTolerance)
}

// NaturalTolerance is Natural with an explicit abundance-sum tolerance.
// The element's abundances must sum to 100 within the tolerance, otherwise
// the table data is considered inconsistent for that element.
func NaturalTolerance(symbol string, t isotope.Table, tolerance float64) (float64, error) {
	sym := isotope.CanonicalSymbol(symbol)
	isotopes, ok := t[sym]
	if !ok || len(isotopes) == 0 {
		return 0, fmt.Errorf("%w symbol '%s': provide a table with stable isotopes and abundances", ErrNotFound, sym)
	}

	totalAbundance := 0.0
	for i := range isotopes {
		totalAbundance += isotopes[i].AbundancePercent
	}
	if math.Abs(totalAbundance-100) > tolerance {
		return 0, fmt.Errorf("%w: abundances for %s sum to %.3f%%, check the table data for that element",
			ErrInconsistentData, sym, totalAbundance)
	}

	weight := 0.0
	for i := range isotopes {
		weight += (isotopes[i].AbundancePercent / 100) * isotopes[i].MassU
	}
	return weight, nil
}

// FromWeightPercent computes the average atomic mass from isotopic masses (u)
// and their composition by mass. Weights may be weight percents (summing ~100)
// or arbitrary mass weights, including fractions summing to 1; the convention
// is auto-detected. Order of weights must match masses.
//
// With masses m_i and mass fractions w_i (Σw_i=1), the mole fraction is
// x_i = (w_i/m_i) / Σ(w_j/m_j) and the atomic weight Σx_i·m_i = 1/Σ(w_i/m_i).
// For percents W_i the equivalent form is ΣW_i / Σ(W_i/m_i).
func FromWeightPercent(massesU, weights []float64) (float64, error) {
	return FromWeightPercentWindow(massesU, weights, DefaultPercentWindow)
}

// FromWeightPercentWindow is FromWeightPercent with an explicit detection
// window around 100 for the percent convention.
func FromWeightPercentWindow(massesU, weights []float64, percentWindow float64) (float64, error) {
	if len(massesU) != len(weights) {
		return 0, fmt.Errorf("%w: %d masses, %d weights", ErrShapeMismatch, len(massesU), len(weights))
	}
	for _, m := range massesU {
		if m <= 0 {
			return 0, fmt.Errorf("%w: got %g", ErrInvalidMass, m)
		}
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: got %g", ErrInvalidWeight, w)
		}
		total += w
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: cannot normalize composition", ErrDegenerateInput)
	}

	if math.Abs(total-100) < percentWindow {
		// Percent form directly: AW = ΣW / Σ(W/m).
		denom := 0.0
		for i, w := range weights {
			denom += w / massesU[i]
		}
		if denom == 0 {
			return 0, fmt.Errorf("%w: check inputs", ErrZeroDenominator)
		}
		return total / denom, nil
	}

	// Arbitrary mass weights: normalize to fractions first.
	denom := 0.0
	for i, w := range weights {
		denom += (w / total) / massesU[i]
	}
	if denom == 0 {
		return 0, fmt.Errorf("%w: check inputs", ErrZeroDenominator)
	}
	return 1 / denom, nil
}

// PercentInput reports whether the weights would be treated as percentages
// by FromWeightPercentWindow with the given window.
func PercentInput(weights []float64, percentWindow float64) bool {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return math.Abs(total-100) < percentWindow
}
