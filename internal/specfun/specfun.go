/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package specfun holds the numeric stability primitives the density
// formulas are defined in terms of. They are not interchangeable with
// naive arithmetic: Xlogy keeps 0*log(0) out of the densities and the
// expm1-based formulas avoid cancellation near the boundary.
package specfun

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Xlogy returns x*log(y), taking the value 0 when x is zero regardless
// of y. Densities use it so that a zero count against a zero
// probability contributes nothing instead of NaN.
func Xlogy(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}

// LogBeta returns log(B(a, b)) for positive a, b.
func LogBeta(a, b float64) float64 {
	return mathext.Lbeta(a, b)
}

// LogAbsBinomial returns log|C(n, k)| together with the sign of
// C(n, k).
func LogAbsBinomial(n, k float64) (float64, float64) {
	ln, sn := math.Lgamma(n + 1)
	lk, sk := math.Lgamma(k + 1)
	lnk, snk := math.Lgamma(n - k + 1)
	return ln - lk - lnk, float64(sn * sk * snk)
}
