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

// Multinomial distributes n draws over the categories of the
// probability vector p using the conditional binomial method: each
// category's count is binomial in the remaining draws with its
// probability renormalized by the probability mass not yet consumed.
// The returned counts are whole numbers summing to n.
func Multinomial(src rand.Source, n int, p []float64) []float64 {
	x := make([]float64, len(p))
	if len(p) == 0 {
		return x
	}
	remaining := n
	rest := 1.0
	for j := 0; j < len(p)-1; j++ {
		if remaining == 0 {
			break
		}
		pj := 0.0
		if rest > 0 {
			pj = p[j] / rest
		}
		var draw float64
		switch {
		case pj >= 1:
			draw = float64(remaining)
		case pj > 0:
			draw = distuv.Binomial{N: float64(remaining), P: pj, Src: src}.Rand()
		}
		x[j] = draw
		remaining -= int(draw)
		rest -= p[j]
	}
	x[len(p)-1] = float64(remaining)
	return x
}
