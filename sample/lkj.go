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
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LKJ draws a k x k correlation matrix from the LKJ distribution with
// concentration eta, using the vine method over canonical partial
// correlations from Lewandowski, Kurowicka and Joe (2009). Layer l of
// the vine draws Beta(b, b) variates rescaled to (-1, 1) with
// b = eta + (k-1-l)/2, which are then composed into raw correlations.
func LKJ(src rand.Source, k int, eta float64) *mat.SymDense {
	r := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		r.SetSym(i, i, 1)
	}
	if k < 2 {
		return r
	}

	// pcor[j][i] is the partial correlation of variables j and i
	// given 0..j-1.
	pcor := make([][]float64, k)
	for i := range pcor {
		pcor[i] = make([]float64, k)
	}

	beta := eta + float64(k-1)/2
	for j := 0; j < k-1; j++ {
		beta -= 0.5
		b := distuv.Beta{Alpha: beta, Beta: beta, Src: src}
		for i := j + 1; i < k; i++ {
			pcor[j][i] = 2*b.Rand() - 1

			// fold the partial correlation back through the earlier
			// vine layers to obtain the raw correlation
			rho := pcor[j][i]
			for l := j - 1; l >= 0; l-- {
				rho = rho*math.Sqrt((1-pcor[l][i]*pcor[l][i])*(1-pcor[l][j]*pcor[l][j])) +
					pcor[l][i]*pcor[l][j]
			}
			r.SetSym(j, i, rho)
		}
	}
	return r
}
