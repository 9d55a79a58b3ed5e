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
	"gonum.org/v1/gonum/mat"
)

// CholFactor is the factored representation matrix-valued samplers
// return: the lower and upper triangular Cholesky factors of a matrix,
// with U = L transposed and the diagonal shared. Downstream consumers
// pick whichever orientation they need without refactoring.
type CholFactor struct {
	L *mat.TriDense
	U *mat.TriDense
}

// Order returns the order of the factored matrix.
func (f *CholFactor) Order() int {
	n, _ := f.L.Dims()
	return n
}
