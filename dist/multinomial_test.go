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

func TestMultinomial_Support(t *testing.T) {
	m := dist.NewMultinomial(10, []float64{0.5, 0.5})

	assert.True(t, m.InSupport([]float64{5, 5}))
	assert.False(t, m.InSupport([]float64{5, 4}), "sum differs from n")
	assert.False(t, m.InSupport([]float64{5.5, 4.5}), "entries must be integers")
	assert.False(t, m.InSupport([]float64{10}), "length must match the probability vector")
	assert.False(t, m.InSupport([]float64{math.NaN(), 10}))
}

func TestMultinomial_DensityUsesXlogyZeroRule(t *testing.T) {
	m := dist.NewMultinomial(10, []float64{0.5, 0.5})

	lp := m.LogProb([]float64{0, 10})
	assert.False(t, math.IsNaN(lp))
	assert.InDelta(t, 10*math.Log(0.5), lp, 1e-12)

	// a zero count against a zero probability contributes nothing
	degenerate := dist.NewMultinomial(10, []float64{0, 1})
	lp = degenerate.LogProb([]float64{0, 10})
	assert.Equal(t, 0.0, lp)

	lp = m.LogProb([]float64{5, 5})
	assert.InDelta(t, 10*math.Log(0.5), lp, 1e-12)
}

func TestMultinomial_TestValueSplitsEvenly(t *testing.T) {
	m := dist.NewMultinomial(10, []float64{0.2, 0.3, 0.5})
	assert.Equal(t, []float64{4, 3, 3}, m.TestValue())

	even := dist.NewMultinomial(9, []float64{1. / 3, 1. / 3, 1. / 3})
	assert.Equal(t, []float64{3, 3, 3}, even.TestValue())
}

func TestMultinomial_TestValueIsInSupport(t *testing.T) {
	for _, m := range []dist.Multinomial{
		dist.NewMultinomial(10, []float64{0.2, 0.3, 0.5}),
		dist.NewMultinomial(1, []float64{0.9, 0.1}),
		dist.NewMultinomial(0, []float64{0.5, 0.5}),
		dist.NewMultinomial(7, []float64{0.25, 0.25, 0.25, 0.25}),
	} {
		tv, err := measure.TestValue(m)
		require.NoError(t, err)
		ok, err := measure.InSupport(m, tv)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestMultinomial_SamplesLieInSupport(t *testing.T) {
	m := dist.NewMultinomial(100, []float64{0.1, 0.6, 0.3})
	src := rand.NewSource(5)

	for i := 0; i < 200; i++ {
		v, err := measure.Sample(src, m)
		require.NoError(t, err)
		assert.True(t, m.InSupport(v), "sample %v escapes the support", v)
	}
}

func TestMultinomial_SamplingDeterministicUnderFixedSeed(t *testing.T) {
	m := dist.NewMultinomial(50, []float64{0.25, 0.25, 0.5})
	a, err := measure.Sample(rand.NewSource(21), m)
	require.NoError(t, err)
	b, err := measure.Sample(rand.NewSource(21), m)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMultinomial_BaseIsCounting(t *testing.T) {
	b, err := measure.BaseMeasure(dist.NewMultinomial(3, []float64{1}))
	require.NoError(t, err)
	assert.Equal(t, measure.Counting{}, b)
}

func TestMultinomial_LogProbMalformedPointIsNaN(t *testing.T) {
	m := dist.NewMultinomial(10, []float64{0.2, 0.3, 0.5})

	assert.NotPanics(t, func() {
		assert.True(t, math.IsNaN(m.LogProb([]float64{4, 6})), "short point")
		assert.True(t, math.IsNaN(m.LogProb([]float64{1, 2, 3, 4})), "long point")
		assert.True(t, math.IsNaN(m.LogProb("not a vector")), "wrong type")
	})
}
