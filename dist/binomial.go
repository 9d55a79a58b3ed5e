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

	"github.com/fentec-project/gomeasure/internal/specfun"
	"github.com/fentec-project/gomeasure/measure"
	"github.com/fentec-project/gomeasure/sample"
)

// Binomial counts successes among N trials with success probability P.
// Points are whole-number float64 counts.
type Binomial struct {
	N int
	P float64
}

// NewBinomial returns a binomial distribution over n trials with
// success probability p.
func NewBinomial(n int, p float64) Binomial { return Binomial{N: n, P: p} }

func (Binomial) Family() string       { return "Binomial" }
func (Binomial) ParamNames() []string { return []string{"n", "p"} }

// LogProb returns the log-mass log C(n,x) + x*log(p) + (n-x)*log(1-p),
// built from the log-abs-binomial and x*log(y) primitives so p of 0
// or 1 stays NaN-free at the boundary counts.
func (d Binomial) LogProb(x measure.Point) float64 {
	xv := x.(float64)
	lc, _ := specfun.LogAbsBinomial(float64(d.N), xv)
	return lc + specfun.Xlogy(xv, d.P) + specfun.Xlogy(float64(d.N)-xv, 1-d.P)
}

func (d Binomial) Rand(src rand.Source) measure.Point {
	return sample.Binomial(src, d.N, d.P)
}

// InSupport reports whether x is an integer in [0, N].
func (d Binomial) InSupport(x measure.Point) bool {
	xv, ok := x.(float64)
	if !ok {
		return false
	}
	return xv == math.Trunc(xv) && xv >= 0 && xv <= float64(d.N)
}

func (Binomial) Base() measure.Measure { return measure.Counting{} }

// TestValue is the expected count rounded to the nearest integer.
func (d Binomial) TestValue() measure.Point {
	v := math.Round(float64(d.N) * d.P)
	return math.Min(math.Max(v, 0), float64(d.N))
}

func init() {
	measure.Register("Binomial", []measure.ParamSpec{
		{
			Names: []string{"n", "p"},
			Build: func(p measure.Params) (measure.Measure, error) {
				n, err := p.Int("n")
				if err != nil {
					return nil, err
				}
				prob, err := p.Float("p")
				if err != nil {
					return nil, err
				}
				return NewBinomial(n, prob), nil
			},
		},
	})
}
