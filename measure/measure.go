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

package measure

import (
	"golang.org/x/exp/rand"
)

// Point is a location in the domain of a measure. Scalar families use
// float64, vector families []float64, and matrix families gonum
// matrices or factored representations such as dist.CholFactor.
type Point = interface{}

// Measure is an immutable distribution instance: a family tag plus the
// parameterization fixed at construction. Operations never mutate a
// Measure; derived instances are new values, so instances may be shared
// across goroutines freely.
type Measure interface {
	// Family returns the family tag, e.g. "Laplace".
	Family() string

	// ParamNames returns the names of the active parameterization.
	// A nil slice means the fully fixed (arity zero) form.
	ParamNames() []string
}

// LogProber is a measure with a directly implemented unnormalized
// log-density. The naming follows gonum's distuv conventions.
type LogProber interface {
	Measure
	// LogProb returns the unnormalized log-density at x. Whether the
	// point is validated against the mathematical support is a
	// per-family contract; see the family documentation.
	LogProb(x Point) float64
}

// Rander is a measure that can draw a variate from an explicit random
// source. Implementations never retain src beyond the call.
type Rander interface {
	Measure
	Rand(src rand.Source) Point
}

// Supporter is a measure with a directly implemented support predicate.
type Supporter interface {
	Measure
	InSupport(x Point) bool
}

// Baser is a measure that knows its base (reference) measure, against
// which its unnormalized log-density is defined.
type Baser interface {
	Measure
	Base() Measure
}

// TestValuer is a measure that can produce one canonical, always-valid
// point of its support, used as a default or smoke-test value.
type TestValuer interface {
	Measure
	TestValue() Point
}

// Proxier is a measure whose operations are carried out on an
// equivalent canonical instance. Proxy must preserve the probability
// measure and must reach, possibly through further proxies, an
// instance that implements the requested capability directly.
type Proxier interface {
	Measure
	Proxy() Measure
}

// Transform maps an unconstrained real vector into a constrained
// point. It is the narrow interface base-measure construction and test
// values consume from the transform library.
type Transform interface {
	// Dimension is the intrinsic dimension of the unconstrained side.
	Dimension() int

	// Apply maps an unconstrained vector of length Dimension into the
	// constrained space.
	Apply(y []float64) (Point, error)
}
