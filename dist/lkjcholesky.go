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

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/fentec-project/gomeasure/internal/linalg"
	"github.com/fentec-project/gomeasure/internal/specfun"
	"github.com/fentec-project/gomeasure/measure"
	"github.com/fentec-project/gomeasure/sample"
	"github.com/fentec-project/gomeasure/transform"
)

// LKJCholesky is the LKJ distribution over k x k correlation matrices
// expressed through their Cholesky factor, with concentration eta.
// Points are triangular (or diagonal) matrices, or a CholFactor, from
// which only the diagonal enters the density.
type LKJCholesky struct {
	K   int
	Eta float64
}

// NewLKJCholesky returns the LKJ distribution over the Cholesky
// factors of k x k correlation matrices with concentration eta.
func NewLKJCholesky(k int, eta float64) LKJCholesky {
	return LKJCholesky{K: k, Eta: eta}
}

func (LKJCholesky) Family() string         { return "LKJCholesky" }
func (d LKJCholesky) ParamNames() []string { return []string{"k", "eta"} }

// LogProb returns the unnormalized log-density
//
//	sum_i (k + 2(eta-1) - i) * log(L[i,i]),   i = 1..order(L)
//
// Normalization is the base measure's business, and the point is NOT
// validated: a non-positive or non-triangular input yields an
// unspecified numeric result rather than an error. Support checking is
// expensive and the caller is assumed to have validated the shape.
func (d LKJCholesky) LogProb(x measure.Point) float64 {
	return lkjLogKernel(float64(d.K)+2*(d.Eta-1), x)
}

func (d LKJCholesky) Rand(src rand.Source) measure.Point {
	return lkjRand(src, d.K, d.Eta)
}

// InSupport is unconditionally true. Whether the point is a genuine
// correlation-Cholesky factor is not verified; this mirrors the
// relaxed contract of LogProb.
func (LKJCholesky) InSupport(x measure.Point) bool { return true }

// Base is Lebesgue measure of the transform's intrinsic dimension
// pushed forward onto the factor space and weighted by the family's
// log-normalizing constant.
func (d LKJCholesky) Base() measure.Measure {
	return lkjBase(d.K, d.Eta)
}

// TestValue is the image of the all-zero unconstrained vector: the
// identity factor.
func (d LKJCholesky) TestValue() measure.Point {
	return lkjTestValue(d.K)
}

// LKJCholeskyLog is LKJCholesky parameterized by log-concentration.
// The density coefficient uses expm1 so that eta near 1 (log-eta near
// 0) does not lose precision to cancellation.
type LKJCholeskyLog struct {
	K      int
	LogEta float64
}

// NewLKJCholeskyLog returns the LKJ Cholesky-factor distribution with
// concentration exp(logEta).
func NewLKJCholeskyLog(k int, logEta float64) LKJCholeskyLog {
	return LKJCholeskyLog{K: k, LogEta: logEta}
}

func (LKJCholeskyLog) Family() string         { return "LKJCholesky" }
func (d LKJCholeskyLog) ParamNames() []string { return []string{"k", "logeta"} }

// LogProb matches LKJCholesky.LogProb with eta = exp(logEta), using
// the coefficient k + 2*expm1(logEta). The point is not validated.
func (d LKJCholeskyLog) LogProb(x measure.Point) float64 {
	return lkjLogKernel(float64(d.K)+2*math.Expm1(d.LogEta), x)
}

func (d LKJCholeskyLog) Rand(src rand.Source) measure.Point {
	return lkjRand(src, d.K, math.Exp(d.LogEta))
}

func (LKJCholeskyLog) InSupport(x measure.Point) bool { return true }

func (d LKJCholeskyLog) Base() measure.Measure {
	return lkjBase(d.K, math.Exp(d.LogEta))
}

func (d LKJCholeskyLog) TestValue() measure.Point {
	return lkjTestValue(d.K)
}

// Proxy canonicalizes onto the eta parameterization.
func (d LKJCholeskyLog) Proxy() measure.Measure {
	return NewLKJCholesky(d.K, math.Exp(d.LogEta))
}

// lkjLogKernel sums (c - i) * log(L[i,i]) over the diagonal of the
// factor carried by x.
func lkjLogKernel(c float64, x measure.Point) float64 {
	var m mat.Matrix
	switch t := x.(type) {
	case *CholFactor:
		m = t.L
	case mat.Matrix:
		m = t
	default:
		panic("dist: LKJCholesky point must be a matrix or a CholFactor")
	}
	r, cols := m.Dims()
	if cols < r {
		r = cols
	}
	var lp float64
	for i := 0; i < r; i++ {
		lp += (c - float64(i+1)) * math.Log(m.At(i, i))
	}
	return lp
}

func lkjRand(src rand.Source, k int, eta float64) measure.Point {
	r := sample.LKJ(src, k, eta)
	l, u, err := linalg.CholeskyPositiveSafe(r)
	if err != nil {
		panic(err)
	}
	return &CholFactor{L: l, U: u}
}

func lkjBase(k int, eta float64) measure.Measure {
	t := transform.NewCorrCholesky(k)
	base := measure.Pushforward{
		Map:  t,
		Base: measure.PowerMeasure{Base: measure.Lebesgue{}, Dim: t.Dimension()},
	}
	return measure.Weighted{LogWeight: lkjLogC0(k, eta), Base: base}
}

func lkjTestValue(k int) measure.Point {
	t := transform.NewCorrCholesky(k)
	v, err := t.Apply(make([]float64, t.Dimension()))
	if err != nil {
		panic(err)
	}
	return v
}

// lkjLogC0 is the log-normalizing constant of the LKJ density in its
// vine-decomposition form (Lewandowski, Kurowicka, Joe 2009, §3.3):
// the determinant kernel integrates over the k x k correlation
// matrices to
//
//	sum_{j=1}^{k-1} (k-j) * [(2eta-2+k-j)*log 2 + log B(a_j, a_j)]
//
// with a_j = eta + (k-1-j)/2, and logc0 is its negation.
func lkjLogC0(k int, eta float64) float64 {
	var logc float64
	for j := 1; j < k; j++ {
		kj := float64(k - j)
		a := eta + (float64(k)-1-float64(j))/2
		logc += kj * ((2*eta-2+kj)*math.Ln2 + specfun.LogBeta(a, a))
	}
	return -logc
}

func init() {
	etaKey := measure.KeyFor("LKJCholesky", []string{"k", "eta"})
	measure.Register("LKJCholesky", []measure.ParamSpec{
		{
			Names:   []string{"k", "eta"},
			Domains: map[string]measure.Domain{"eta": measure.Positive},
			Build: func(p measure.Params) (measure.Measure, error) {
				k, err := p.Int("k")
				if err != nil {
					return nil, err
				}
				eta, err := p.Float("eta")
				if err != nil {
					return nil, err
				}
				return NewLKJCholesky(k, eta), nil
			},
		},
		{
			Names: []string{"k", "logeta"},
			Build: func(p measure.Params) (measure.Measure, error) {
				k, err := p.Int("k")
				if err != nil {
					return nil, err
				}
				logEta, err := p.Float("logeta")
				if err != nil {
					return nil, err
				}
				return NewLKJCholeskyLog(k, logEta), nil
			},
			ProxyTo: &etaKey,
		},
	})
}
