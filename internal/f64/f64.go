// Package f64 holds the small vector kernels used by the regret and
// strategy accumulators.
package f64

// ScalUnitary is
//  for i := range x {
//  	x[i] *= alpha
//  }
func ScalUnitary(alpha float64, x []float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// ScalUnitaryTo is
//  for i, v := range x {
//  	dst[i] = alpha * v
//  }
func ScalUnitaryTo(dst []float64, alpha float64, x []float64) {
	for i, v := range x {
		dst[i] = alpha * v
	}
}

// DotUnitary is
//  for i, v := range x {
//  	sum += y[i] * v
//  }
//  return sum
func DotUnitary(x, y []float64) (sum float64) {
	for i, v := range x {
		sum += y[i] * v
	}
	return sum
}

// Fill is
//  for i := range x {
//  	x[i] = alpha
//  }
func Fill(alpha float64, x []float64) {
	for i := range x {
		x[i] = alpha
	}
}

// Sum is
//  var sum float64
//  for i := range x {
//      sum += x[i]
//  }
func Sum(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum
}

// ClampNegative sets every negative element of x to zero.
func ClampNegative(x []float64) {
	for i := range x {
		if x[i] < 0 {
			x[i] = 0.0
		}
	}
}
