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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/fentec-project/gomeasure/dist"
	"github.com/fentec-project/gomeasure/measure"
)

func TestLaplace_StandardDensity(t *testing.T) {
	m := dist.NewLaplace()

	assert.Equal(t, 0.0, m.LogProb(0.0))
	for _, x := range []float64{0.1, 1, 2.5, 17} {
		assert.Equal(t, -x, m.LogProb(x))
		assert.Equal(t, m.LogProb(x), m.LogProb(-x), "density is symmetric")
	}
}

func TestLaplace_MuSigmaMatchesStandardForm(t *testing.T) {
	mu, sigma := 2.0, 3.0
	m := dist.NewLaplaceMuSigma(mu, sigma)
	std := dist.NewLaplace()

	for _, x := range []float64{-4, 0, 2, 7.5} {
		lp, err := measure.LogDensity(m, x)
		require.NoError(t, err)
		want := std.LogProb((x-mu)/sigma) - math.Log(sigma)
		assert.InDelta(t, want, lp, 1e-12)
	}
}

func TestLaplace_RateIsInverseScale(t *testing.T) {
	lambda := 0.25
	viaRate := dist.NewLaplaceRate(lambda)
	viaSigma := dist.NewLaplaceSigma(1 / lambda)

	for _, x := range []float64{-3, 0.5, 8} {
		a, err := measure.LogDensity(viaRate, x)
		require.NoError(t, err)
		b, err := measure.LogDensity(viaSigma, x)
		require.NoError(t, err)
		assert.InDelta(t, b, a, 1e-12)
	}
}

func TestLaplace_BaseMeasureWeight(t *testing.T) {
	b, err := measure.BaseMeasure(dist.NewLaplace())
	require.NoError(t, err)

	w, ok := b.(measure.Weighted)
	require.True(t, ok)
	assert.InDelta(t, -math.Ln2, w.LogWeight, 1e-12)
	assert.Equal(t, measure.Lebesgue{}, w.Base)
}

func TestLaplace_SupportIsAllReals(t *testing.T) {
	for _, m := range []measure.Measure{
		dist.NewLaplace(),
		dist.NewLaplaceMuSigma(5, 0.1),
		dist.NewLaplaceMuRate(-2, 4),
	} {
		for _, x := range []float64{math.Inf(-1), -1e300, 0, 1e300, math.Inf(1)} {
			ok, err := measure.InSupport(m, x)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	}
}

func TestLaplace_SamplingDeterministicUnderFixedSeed(t *testing.T) {
	for _, m := range []measure.Measure{
		dist.NewLaplace(),
		dist.NewLaplaceMuSigma(1, 2),
		dist.NewLaplaceRate(0.5),
	} {
		a, err := measure.Sample(rand.NewSource(7), m)
		require.NoError(t, err)
		b, err := measure.Sample(rand.NewSource(7), m)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestLaplace_SampleSpread(t *testing.T) {
	// scale 2 doubles the draws of the standard form under the same seed
	src1 := rand.NewSource(11)
	src2 := rand.NewSource(11)
	std := dist.NewLaplace()
	scaled := dist.NewLaplaceSigma(2)

	for i := 0; i < 100; i++ {
		a, err := measure.Sample(src1, std)
		require.NoError(t, err)
		b, err := measure.Sample(src2, scaled)
		require.NoError(t, err)
		assert.InDelta(t, 2*a.(float64), b.(float64), 1e-12)
	}
}

func TestLaplace_TestValue(t *testing.T) {
	tv, err := measure.TestValue(dist.NewLaplaceMuSigma(3, 2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, tv)

	tv, err = measure.TestValue(dist.NewLaplace())
	require.NoError(t, err)
	assert.Equal(t, 0.0, tv)
}
