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

// Package transform provides the bijective transforms that map
// unconstrained real vectors onto constrained domains. The measure
// package consumes them through its Transform interface when it builds
// pushforward base measures and canonical test values.
package transform

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fentec-project/gomeasure/measure"
)

// CorrCholesky maps unconstrained vectors in R^{k(k-1)/2} onto k x k
// correlation-Cholesky factors: lower triangular matrices with unit
// row norms and positive diagonal. The construction fills each row
// with tanh-squashed canonical coordinates scaled so the row stays on
// the unit sphere, the same row-by-row scheme used for correlation
// matrix reparameterizations in MCMC samplers.
type CorrCholesky struct {
	k int
}

// NewCorrCholesky returns the transform onto k x k factors.
func NewCorrCholesky(k int) CorrCholesky {
	return CorrCholesky{k: k}
}

// Order returns the order k of the factors the transform produces.
func (t CorrCholesky) Order() int { return t.k }

// Dimension is the intrinsic dimension of the factor space, the number
// of free below-diagonal entries.
func (t CorrCholesky) Dimension() int { return t.k * (t.k - 1) / 2 }

// Apply maps an unconstrained vector of length Dimension to a factor.
// The zero vector maps to the identity factor.
func (t CorrCholesky) Apply(y []float64) (measure.Point, error) {
	if len(y) != t.Dimension() {
		return nil, errors.Errorf("transform: CorrCholesky of order %d expects %d coordinates, got %d",
			t.k, t.Dimension(), len(y))
	}
	l := mat.NewTriDense(t.k, mat.Lower, nil)
	l.SetTri(0, 0, 1)
	idx := 0
	for i := 1; i < t.k; i++ {
		sumSq := 0.0
		for j := 0; j < i; j++ {
			z := math.Tanh(y[idx])
			idx++
			v := z * math.Sqrt(1-sumSq)
			l.SetTri(i, j, v)
			sumSq += v * v
		}
		l.SetTri(i, i, math.Sqrt(1-sumSq))
	}
	return l, nil
}
