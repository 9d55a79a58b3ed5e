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

// Normal is the standard normal distribution, the primitive form of
// the family. Location/scale parameterizations proxy to an affine
// reparameterization of it, exactly like Laplace.
type Normal struct{}

// NewNormal returns the standard normal distribution.
func NewNormal() Normal { return Normal{} }

func (Normal) Family() string       { return "Normal" }
func (Normal) ParamNames() []string { return nil }

// LogProb returns the unnormalized log-density -x²/2; the
// -log(2π)/2 normalization lives in the base measure.
func (Normal) LogProb(x measure.Point) float64 {
	v := x.(float64)
	return -0.5 * v * v
}

func (Normal) Rand(src rand.Source) measure.Point {
	return sample.Normal(src)
}

func (Normal) InSupport(x measure.Point) bool { return true }

func (Normal) Base() measure.Measure {
	return measure.Weighted{LogWeight: -0.5 * math.Log(2*math.Pi), Base: measure.Lebesgue{}}
}

func (Normal) TestValue() measure.Point { return float64(0) }

// NormalMu is normal with mean mu and unit standard deviation.
type NormalMu struct {
	Mu float64
}

// NewNormalMu returns a normal distribution shifted to mean mu.
func NewNormalMu(mu float64) NormalMu { return NormalMu{Mu: mu} }

func (NormalMu) Family() string       { return "Normal" }
func (NormalMu) ParamNames() []string { return []string{"mu"} }

func (d NormalMu) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: d.Mu, Sigma: 1}, Normal{})
}

// NormalSigma is normal with standard deviation sigma and mean zero.
type NormalSigma struct {
	Sigma float64
}

// NewNormalSigma returns a normal distribution scaled by sigma.
func NewNormalSigma(sigma float64) NormalSigma { return NormalSigma{Sigma: sigma} }

func (NormalSigma) Family() string       { return "Normal" }
func (NormalSigma) ParamNames() []string { return []string{"sigma"} }

func (d NormalSigma) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: 0, Sigma: d.Sigma}, Normal{})
}

// NormalMuSigma is normal with mean mu and standard deviation sigma.
type NormalMuSigma struct {
	Mu    float64
	Sigma float64
}

// NewNormalMuSigma returns a normal distribution with mean mu and
// standard deviation sigma.
func NewNormalMuSigma(mu, sigma float64) NormalMuSigma {
	return NormalMuSigma{Mu: mu, Sigma: sigma}
}

func (NormalMuSigma) Family() string       { return "Normal" }
func (NormalMuSigma) ParamNames() []string { return []string{"mu", "sigma"} }

func (d NormalMuSigma) Proxy() measure.Measure {
	return measure.Affine(measure.AffineMap{Mu: d.Mu, Sigma: d.Sigma}, Normal{})
}

func init() {
	primitive := measure.KeyFor("Normal", nil)
	measure.Register("Normal", []measure.ParamSpec{
		{
			Build: func(p measure.Params) (measure.Measure, error) {
				return NewNormal(), nil
			},
		},
		{
			Names: []string{"mu"},
			Build: func(p measure.Params) (measure.Measure, error) {
				mu, err := p.Float("mu")
				if err != nil {
					return nil, err
				}
				return NewNormalMu(mu), nil
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
				return NewNormalSigma(sigma), nil
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
				return NewNormalMuSigma(mu, sigma), nil
			},
			ProxyTo: &primitive,
		},
	})
}
