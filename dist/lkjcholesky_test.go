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

package dist_test

import (
	"math"
	stdrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/fentec-project/gomeasure/dist"
	"github.com/fentec-project/gomeasure/measure"
	"github.com/fentec-project/gomeasure/transform"
)

func identityLower(k int) *mat.TriDense {
	l := mat.NewTriDense(k, mat.Lower, nil)
	for i := 0; i < k; i++ {
		l.SetTri(i, i, 1)
	}
	return l
}

// randomFactor builds a valid correlation-Cholesky factor from random
// unconstrained coordinates.
func randomFactor(rng *stdrand.Rand, k int) *mat.TriDense {
	tr := transform.NewCorrCholesky(k)
	y := make([]float64, tr.Dimension())
	for i := range y {
		y[i] = rng.NormFloat64()
	}
	p, err := tr.Apply(y)
	if err != nil {
		panic(err)
	}
	return p.(*mat.TriDense)
}

func TestLKJCholesky_IdentityFactorHasZeroDensity(t *testing.T) {
	m := dist.NewLKJCholesky(3, 1.0)
	assert.Equal(t, 0.0, m.LogProb(identityLower(3)))

	// the coefficient is irrelevant on a unit diagonal
	assert.Equal(t, 0.0, dist.NewLKJCholesky(3, 7.5).LogProb(identityLower(3)))
	assert.Equal(t, 0.0, dist.NewLKJCholeskyLog(3, 2.0).LogProb(identityLower(3)))
}

func TestLKJCholesky_AcceptsFactorObjectAndDiagonal(t *testing.T) {
	m := dist.NewLKJCholesky(3, 2.0)
	rng := stdrand.New(stdrand.NewSource(1))
	l := randomFactor(rng, 3)

	u := mat.NewTriDense(3, mat.Upper, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			u.SetTri(i, j, l.At(j, i))
		}
	}
	f := &dist.CholFactor{L: l, U: u}
	assert.Equal(t, m.LogProb(l), m.LogProb(f), "factor object dispatches on its lower factor")

	d := mat.NewDiagDense(3, []float64{1, 1, 1})
	assert.Equal(t, 0.0, m.LogProb(d))
}

func TestLKJCholesky_LogEtaMatchesEta(t *testing.T) {
	rng := stdrand.New(stdrand.NewSource(42))

	for i := 0; i < 20; i++ {
		k := 2 + rng.Intn(5)
		logEta := 4*rng.Float64() - 2
		l := randomFactor(rng, k)

		viaLog := dist.NewLKJCholeskyLog(k, logEta).LogProb(l)
		viaEta := dist.NewLKJCholesky(k, math.Exp(logEta)).LogProb(l)

		tol := 1e-9 * math.Max(1, math.Abs(viaEta))
		require.InDelta(t, viaEta, viaLog, tol, "k=%d logeta=%v", k, logEta)
	}
}

func TestLKJCholesky_ProxyCanonicalizesLogEta(t *testing.T) {
	m := dist.NewLKJCholeskyLog(4, 0.5)
	p, ok := measure.Proxy(m)
	require.True(t, ok)

	eta, isEta := p.(dist.LKJCholesky)
	require.True(t, isEta)
	assert.Equal(t, 4, eta.K)
	assert.InDelta(t, math.Exp(0.5), eta.Eta, 1e-12)
}

func TestLKJCholesky_SupportIsUnchecked(t *testing.T) {
	// the relaxed contract: insupport never rejects, even nonsense
	m := dist.NewLKJCholesky(3, 1.0)
	bad := mat.NewTriDense(3, mat.Lower, nil)
	bad.SetTri(0, 0, -2)
	assert.True(t, m.InSupport(bad))
	assert.True(t, m.InSupport(identityLower(3)))
}

func TestLKJCholesky_BaseMeasureShape(t *testing.T) {
	m := dist.NewLKJCholesky(4, 1.5)
	b, err := measure.BaseMeasure(m)
	require.NoError(t, err)

	w, ok := b.(measure.Weighted)
	require.True(t, ok)
	pf, ok := w.Base.(measure.Pushforward)
	require.True(t, ok)
	assert.Equal(t, 6, pf.Map.Dimension(), "4x4 factors have 6 free entries")

	power, ok := pf.Base.(measure.PowerMeasure)
	require.True(t, ok)
	assert.Equal(t, 6, power.Dim)

	// log-eta form weights with eta = exp(logeta)
	bLog, err := measure.BaseMeasure(dist.NewLKJCholeskyLog(4, math.Log(1.5)))
	require.NoError(t, err)
	assert.InDelta(t, w.LogWeight, bLog.(measure.Weighted).LogWeight, 1e-9)
}

func TestLKJCholesky_BaseMeasureWeightK2(t *testing.T) {
	// for k=2 the normalizing constant is the beta integral:
	// logc0 = -[(2eta-1)log 2 + log B(eta, eta)]
	eta := 2.5
	b, err := measure.BaseMeasure(dist.NewLKJCholesky(2, eta))
	require.NoError(t, err)

	la, _ := math.Lgamma(eta)
	lab, _ := math.Lgamma(2 * eta)
	logBeta := 2*la - lab
	want := -((2*eta-1)*math.Ln2 + logBeta)
	assert.InDelta(t, want, b.(measure.Weighted).LogWeight, 1e-12)
}

func TestLKJCholesky_TestValueIsIdentity(t *testing.T) {
	tv, err := measure.TestValue(dist.NewLKJCholesky(3, 0.5))
	require.NoError(t, err)

	l, ok := tv.(*mat.TriDense)
	require.True(t, ok)
	assert.True(t, mat.Equal(identityLower(3), l))

	tvLog, err := measure.TestValue(dist.NewLKJCholeskyLog(3, 1.0))
	require.NoError(t, err)
	assert.True(t, mat.Equal(l, tvLog.(*mat.TriDense)))
}

func TestLKJCholesky_SamplingDeterministicUnderFixedSeed(t *testing.T) {
	m := dist.NewLKJCholesky(4, 2.0)

	a, err := measure.Sample(rand.NewSource(23), m)
	require.NoError(t, err)
	b, err := measure.Sample(rand.NewSource(23), m)
	require.NoError(t, err)

	fa, fb := a.(*dist.CholFactor), b.(*dist.CholFactor)
	assert.True(t, mat.Equal(fa.L, fb.L))
	assert.True(t, mat.Equal(fa.U, fb.U))
}

func TestLKJCholesky_SampleIsFactoredCorrelation(t *testing.T) {
	m := dist.NewLKJCholesky(5, 1.0)
	src := rand.NewSource(3)

	for i := 0; i < 20; i++ {
		v, err := measure.Sample(src, m)
		require.NoError(t, err)
		f := v.(*dist.CholFactor)
		require.Equal(t, 5, f.Order())

		// rows of the factor stay on the unit sphere
		for r := 0; r < 5; r++ {
			norm := 0.0
			for c := 0; c <= r; c++ {
				norm += f.L.At(r, c) * f.L.At(r, c)
			}
			assert.InDelta(t, 1.0, norm, 1e-6)
			assert.True(t, f.L.At(r, r) > 0, "diagonal must be positive")
		}

		// U is the transpose with the shared diagonal
		assert.True(t, mat.Equal(f.U, f.L.T()))
	}
}
