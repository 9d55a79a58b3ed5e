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

// Multinomial distributes n draws over len(P) categories with
// probability vector P. Points are count vectors of the same length
// as P.
type Multinomial struct {
	N int
	P []float64
}

// NewMultinomial returns a multinomial distribution over n draws with
// category probabilities p. The probability vector is copied.
func NewMultinomial(n int, p []float64) Multinomial {
	return Multinomial{N: n, P: append([]float64(nil), p...)}
}

func (Multinomial) Family() string       { return "Multinomial" }
func (Multinomial) ParamNames() []string { return []string{"n", "p"} }

// LogProb returns the unnormalized log-density sum_j x_j*log(p_j),
// with the x*log(p) terms taken as 0 when x_j is 0 so a zero count
// against a zero probability never produces NaN. A point that is not
// a vector of len(P) entries yields NaN; the multinomial coefficient
// is not part of this density.
func (d Multinomial) LogProb(x measure.Point) float64 {
	xs, ok := x.([]float64)
	if !ok || len(xs) != len(d.P) {
		return math.NaN()
	}
	var lp float64
	for j, pj := range d.P {
		lp += specfun.Xlogy(xs[j], pj)
	}
	return lp
}

func (d Multinomial) Rand(src rand.Source) measure.Point {
	return sample.Multinomial(src, d.N, d.P)
}

// InSupport reports whether x is a vector of len(P) integers summing
// exactly to N.
func (d Multinomial) InSupport(x measure.Point) bool {
	xs, ok := x.([]float64)
	if !ok || len(xs) != len(d.P) {
		return false
	}
	total := 0.0
	for _, v := range xs {
		if math.IsInf(v, 0) || v != math.Trunc(v) {
			return false
		}
		total += v
	}
	return total == float64(d.N)
}

func (Multinomial) Base() measure.Measure { return measure.Counting{} }

// TestValue splits N approximately evenly across the categories, with
// any remainder added to the first one.
func (d Multinomial) TestValue() measure.Point {
	k := len(d.P)
	xs := make([]float64, k)
	q, r := d.N/k, d.N%k
	for i := range xs {
		xs[i] = float64(q)
	}
	xs[0] += float64(r)
	return xs
}

func init() {
	measure.Register("Multinomial", []measure.ParamSpec{
		{
			Names:   []string{"n", "p"},
			Domains: map[string]measure.Domain{"p": measure.Simplex},
			Build: func(p measure.Params) (measure.Measure, error) {
				n, err := p.Int("n")
				if err != nil {
					return nil, err
				}
				probs, err := p.Floats("p")
				if err != nil {
					return nil, err
				}
				return NewMultinomial(n, probs), nil
			},
		},
	})
}
