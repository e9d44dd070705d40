// Package sampling draws actions from probability distributions.
package sampling

import (
	"fmt"
	"math"

	"github.com/majkelelele/kuhncfr/internal/f64"
)

// Tolerance is the allowed deviation of a distribution's sum from 1.
const Tolerance = 1e-4

// SampleOne returns the first element i of pv where sum(pv[:i+1]) > x,
// for x drawn uniformly from [0, 1).
//
// It panics if pv is not a probability distribution.
func SampleOne(pv []float64, x float64) int {
	if total := f64.Sum(pv); math.Abs(total-1.0) > Tolerance {
		panic(fmt.Errorf("probability distribution does not sum to 1! sum=%v, pv=%v", total, pv))
	}

	var cumProb float64
	for i, p := range pv {
		if p < 0 {
			panic(fmt.Errorf("probability distribution has negative entry: pv=%v", pv))
		}

		cumProb += p
		if cumProb > x {
			return i
		}
	}

	// Leave room for floating point error.
	return len(pv) - 1
}
