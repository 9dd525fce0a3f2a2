// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import "sort"

// computeEntropy sums the threshold smallest theoretical and real
// per-factor entropies (spec section 4.6 step 6). Theoretical entropy is
// the factor's raw data length in bits; real entropy is the factor's
// self-reported estimate.
func computeEntropy(factors []SetupFactor, threshold int) EntropyBits {
	theoretical := make([]float64, len(factors))
	real := make([]float64, len(factors))

	for i, f := range factors {
		theoretical[i] = float64(len(f.Data) * 8)
		real[i] = f.Entropy
	}

	sort.Float64s(theoretical)
	sort.Float64s(real)

	var eb EntropyBits
	for i := 0; i < threshold && i < len(factors); i++ {
		eb.Theoretical += theoretical[i]
		eb.Real += real[i]
	}

	return eb
}
