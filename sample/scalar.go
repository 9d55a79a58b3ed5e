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

package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Laplace draws from the standard Laplace distribution, location 0 and
// scale 1.
func Laplace(src rand.Source) float64 {
	return distuv.Laplace{Mu: 0, Scale: 1, Src: src}.Rand()
}

// Normal draws from the standard normal distribution.
func Normal(src rand.Source) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}.Rand()
}

// Binomial draws the number of successes among n trials with success
// probability p.
func Binomial(src rand.Source, n int, p float64) float64 {
	return distuv.Binomial{N: float64(n), P: p, Src: src}.Rand()
}
