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

// Package dist is the distribution family catalogue: Laplace, Normal,
// Multinomial, Binomial and LKJCholesky, each registered with the
// measure package under its accepted parameterizations.
//
// Every (family, parameterization) pair is a distinct value type.
// Primitive forms implement the measure capabilities directly;
// location/scale forms carry only their parameters and proxy to an
// affine reparameterization of the primitive form, so density,
// sampling, support and base-measure queries all canonicalize onto one
// computational path per family.
package dist
