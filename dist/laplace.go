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

	"github.com/fentec-project/gomeasure/measure"
	"github.com/fentec-project/gomeasure/sample"
)

// Laplace is the standard Laplace distribution: location 0, scale 1.
// It is the primitive form of the family; every other parameterization
// proxies to an affine reparameterization of it.
type Laplace struct{}

// NewLaplace returns the standard Laplace distribution.
func NewLaplace() Laplace { return Laplace{} }

func (Laplace) Family() string       { return "Laplace" }
func (Laplace) ParamNames() []string { return nil }

// LogProb returns the unnormalized log-density -|x|. The -log(2)
// normalization lives in the base measure.
func (Laplace) LogProb(x measure.Point) float64 {
	return -math.Abs(x.(float64))
}

func (Laplace) Rand(src rand.Source) measure.Point {
	return sample.Laplace(src)
}

// InSupport is always true: the support is the whole real line.
func (Laplace) InSupport(x measure.Point) bool { return true }

func (Laplace) Base() measure.Measure {
	return measure.Weighted{LogWeight: -math.Ln2, Base: measure.Lebesgue{}}
}

func (Laplace) TestValue() measure.Point { return float64(0) }

// LaplaceMu is Laplace with location mu and unit scale.
type LaplaceMu struct {
	Mu float64
}

// NewLaplaceMu returns a Laplace distribution shifted to location mu.
func NewLaplaceMu(mu float64) LaplaceMu { return LaplaceMu{Mu: mu} }

func (LaplaceMu) Family() string       { return "Laplace" }
func (LaplaceMu) ParamNames() []string { return []string{"mu"} }

func (d LaplaceMu) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: d.Mu, Sigma: 1}, Laplace{})
}

// LaplaceSigma is Laplace with scale sigma and location zero.
type LaplaceSigma struct {
	Sigma float64
}

// NewLaplaceSigma returns a Laplace distribution scaled by sigma.
func NewLaplaceSigma(sigma float64) LaplaceSigma { return LaplaceSigma{Sigma: sigma} }

func (LaplaceSigma) Family() string       { return "Laplace" }
func (LaplaceSigma) ParamNames() []string { return []string{"sigma"} }

func (d LaplaceSigma) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: 0, Sigma: d.Sigma}, Laplace{})
}

// LaplaceMuSigma is Laplace with location mu and scale sigma.
type LaplaceMuSigma struct {
	Mu    float64
	Sigma float64
}

// NewLaplaceMuSigma returns a Laplace distribution with location mu
// and scale sigma.
func NewLaplaceMuSigma(mu, sigma float64) LaplaceMuSigma {
	return LaplaceMuSigma{Mu: mu, Sigma: sigma}
}

func (LaplaceMuSigma) Family() string       { return "Laplace" }
func (LaplaceMuSigma) ParamNames() []string { return []string{"mu", "sigma"} }

func (d LaplaceMuSigma) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: d.Mu, Sigma: d.Sigma}, Laplace{})
}

// LaplaceRate is Laplace parameterized by rate, the inverse scale.
type LaplaceRate struct {
	Rate float64
}

// NewLaplaceRate returns a Laplace distribution with rate (inverse
// scale) lambda.
func NewLaplaceRate(lambda float64) LaplaceRate { return LaplaceRate{Rate: lambda} }

func (LaplaceRate) Family() string       { return "Laplace" }
func (LaplaceRate) ParamNames() []string { return []string{"rate"} }

func (d LaplaceRate) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: 0, Sigma: 1 / d.Rate}, Laplace{})
}

// LaplaceMuRate is Laplace with location mu and rate lambda.
type LaplaceMuRate struct {
	Mu   float64
	Rate float64
}

// NewLaplaceMuRate returns a Laplace distribution with location mu and
// rate (inverse scale) lambda.
func NewLaplaceMuRate(mu, lambda float64) LaplaceMuRate {
	return LaplaceMuRate{Mu: mu, Rate: lambda}
}

func (LaplaceMuRate) Family() string       { return "Laplace" }
func (LaplaceMuRate) ParamNames() []string { return []string{"mu", "rate"} }

func (d LaplaceMuRate) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: d.Mu, Sigma: 1 / d.Rate}, Laplace{})
}

func init() {
	primitive := measure.KeyFor("Laplace", nil)
	measure.Register("Laplace", []measure.ParamSpec{
		{
			Build: func(p measure.Params) (measure.Measure, error) {
				return NewLaplace(), nil
			},
		},
		{
			Names: []string{"mu"},
			Build: func(p measure.Params) (measure.Measure, error) {
				mu, err := p.Float("mu")
				if err != nil {
					return nil, err
				}
				return NewLaplaceMu(mu), nil
			},
			ProxyTo: &primitive,
		},
		{
			Names:   []string{"sigma"},
			Domains: map[string]measure.Domain{"sigma": measure.Positive},
			Build: func(p measure.Params) (measure.Measure, error) {
				sigma, err := p.Float("sigma")
				if err != nil {
					return nil, err
				}
				return NewLaplaceSigma(sigma), nil
			},
			ProxyTo: &primitive,
		},
		{
			Names:   []string{"mu", "sigma"},
			Domains: map[string]measure.Domain{"sigma": measure.Positive},
			Build: func(p measure.Params) (measure.Measure, error) {
				mu, err := p.Float("mu")
				if err != nil {
					return nil, err
				}
				sigma, err := p.Float("sigma")
				if err != nil {
					return nil, err
				}
				return NewLaplaceMuSigma(mu, sigma), nil
			},
			ProxyTo: &primitive,
		},
		{
			Names:   []string{"rate"},
			Domains: map[string]measure.Domain{"rate": measure.Positive},
			Build: func(p measure.Params) (measure.Measure, error) {
				rate, err := p.Float("rate")
				if err != nil {
					return nil, err
				}
				return NewLaplaceRate(rate), nil
			},
			ProxyTo: &primitive,
		},
		{
			Names:   []string{"mu", "rate"},
			Domains: map[string]measure.Domain{"rate": measure.Positive},
			Build: func(p measure.Params) (measure.Measure, error) {
				mu, err := p.Float("mu")
				if err != nil {
					return nil, err
				}
				rate, err := p.Float("rate")
				if err != nil {
					return nil, err
				}
				return NewLaplaceMuRate(mu, rate), nil
			},
			ProxyTo: &primitive,
		},
	})
}
