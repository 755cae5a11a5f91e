package occupation

import "math"

const (
	// THzToEvParKB converts a THz frequency to the dimensionless exponent
	// hν/(k_B·T) when divided by a temperature in Kelvin.
	THzToEvParKB = 47.992398658977166

	// InvSqrt2Pi is 1/√(2π), the unit-σ Gaussian peak height.
	InvSqrt2Pi = 0.3989422804014327
)

// BoseEinstein returns the boson occupation number 1/(exp(hν/kT) − 1)
// for a frequency x in THz at temperature t in Kelvin.
func BoseEinstein(x, t float64) float64 {
	return 1.0 / (math.Exp(THzToEvParKB*x/t) - 1)
}

// Gaussian returns the normalized Gaussian weight of width sigma at x.
func Gaussian(x, sigma float64) float64 {
	return InvSqrt2Pi / sigma * math.Exp(-x*x/2/sigma/sigma)
}

// InvSinhOccupation returns 1/sinh(hν/(2kT)), the symmetric occupation
// factor appearing in displacement correlation functions.
func InvSinhOccupation(x, t float64) float64 {
	return 1.0 / math.Sinh(x*THzToEvParKB/2/t)
}

// ThermalSigma — per-mode thermal displacement amplitude.
//
// Description:
//
//	For each squared-frequency eigenvalue λ (frequency ω = √λ·factor) the
//	amplitude of the corresponding normal-mode coordinate at temperature t
//	is σ = √(unit/ω · (1/2 + n(ω, t))). Modes whose |λ|·factor² falls at or
//	below cutoff² are left at σ = 0; unstable modes (λ below −cutoff²/
//	factor²) are raised to the amplitude of the lowest stable frequency so
//	snapshot generators stay finite.
//
// Inputs:
//   - eigvals — squared frequencies in solver units (ascending or not).
//   - t       — temperature in Kelvin.
//   - factor  — eigenvalue→frequency unit conversion (√λ·factor in THz).
//   - unit    — amplitude unit conversion (length²·THz).
//   - cutoff  — frequency cutoff in THz separating "zero" modes.
//
// Complexity: O(len(eigvals)) plus one pass to locate the lowest stable mode.
func ThermalSigma(eigvals []float64, t, factor, unit, cutoff float64) []float64 {
	sigma := make([]float64, len(eigvals))

	lowest := -1
	lowestFreq := math.Inf(1)
	for i, ev := range eigvals {
		if ev*factor*factor <= cutoff*cutoff {
			continue
		}
		freq := math.Sqrt(ev) * factor
		n := BoseEinstein(freq, t)
		sigma[i] = math.Sqrt(unit / freq * (0.5 + n))
		if freq < lowestFreq {
			lowestFreq = freq
			lowest = i
		}
	}

	if lowest >= 0 {
		for i, ev := range eigvals {
			if ev*factor*factor < -cutoff*cutoff {
				sigma[i] = sigma[lowest]
			}
		}
	}

	return sigma
}
