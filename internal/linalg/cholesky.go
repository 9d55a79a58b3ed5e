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

// Package linalg wraps the few dense linear-algebra kernels the
// distribution families need.
package linalg

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CholeskyPositiveSafe factors a into lower and upper triangular
// Cholesky factors. When a is not numerically positive definite, a
// growing multiple of the mean diagonal is added to the diagonal until
// factorization succeeds, so a mildly indefinite input yields the
// factor of a nearby positive definite matrix instead of failing.
func CholeskyPositiveSafe(a *mat.SymDense) (lower, upper *mat.TriDense, err error) {
	n, _ := a.Dims()
	var ch mat.Cholesky
	if ch.Factorize(a) {
		l, u := factors(&ch, n)
		return l, u, nil
	}

	meanDiag := 0.0
	for i := 0; i < n; i++ {
		meanDiag += a.At(i, i)
	}
	meanDiag /= float64(n)
	if meanDiag <= 0 {
		meanDiag = 1
	}

	b := mat.NewSymDense(n, nil)
	b.CopySym(a)
	for tau := 1e-12; tau <= 1e-2; tau *= 10 {
		for i := 0; i < n; i++ {
			b.SetSym(i, i, a.At(i, i)+tau*meanDiag)
		}
		if ch.Factorize(b) {
			l, u := factors(&ch, n)
			return l, u, nil
		}
	}
	return nil, nil, errors.Errorf("linalg: matrix is too far from positive definite to factor")
}

func factors(ch *mat.Cholesky, n int) (*mat.TriDense, *mat.TriDense) {
	l := mat.NewTriDense(n, mat.Lower, nil)
	u := mat.NewTriDense(n, mat.Upper, nil)
	ch.LTo(l)
	ch.UTo(u)
	return l, u
}
