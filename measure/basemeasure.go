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
	"fmt"
)

// Lebesgue is the Lebesgue reference measure on the real line.
type Lebesgue struct{}

func (Lebesgue) Family() string          { return "Lebesgue" }
func (Lebesgue) ParamNames() []string    { return nil }
func (Lebesgue) LogProb(x Point) float64 { return 0 }
func (Lebesgue) InSupport(x Point) bool  { return true }

// Counting is the counting reference measure for discrete supports.
type Counting struct{}

func (Counting) Family() string          { return "Counting" }
func (Counting) ParamNames() []string    { return nil }
func (Counting) LogProb(x Point) float64 { return 0 }
func (Counting) InSupport(x Point) bool  { return true }

// PowerMeasure is a base measure raised to a product-space power, e.g.
// Lebesgue measure on R^n.
type PowerMeasure struct {
	Base Measure
	Dim  int
}

func (m PowerMeasure) Family() string          { return fmt.Sprintf("%s^%d", m.Base.Family(), m.Dim) }
func (m PowerMeasure) ParamNames() []string    { return nil }
func (m PowerMeasure) LogProb(x Point) float64 { return 0 }

// Weighted attaches a constant log-weight to a base measure, such as a
// family's log-normalizing constant. LogProb is the log-density of the
// weighted measure relative to its own base, i.e. the weight itself.
type Weighted struct {
	LogWeight float64
	Base      Measure
}

func (m Weighted) Family() string          { return "Weighted(" + m.Base.Family() + ")" }
func (m Weighted) ParamNames() []string    { return nil }
func (m Weighted) LogProb(x Point) float64 { return m.LogWeight }

// Pushforward is a base measure mapped through a transform onto the
// constrained space the transform targets. The transform's intrinsic
// dimension must match the product dimension of the base, which is
// how a k x k correlation-Cholesky base carries a k(k-1)/2-dimensional
// Lebesgue reference.
type Pushforward struct {
	Map  Transform
	Base Measure
}

func (m Pushforward) Family() string       { return "Pushforward(" + m.Base.Family() + ")" }
func (m Pushforward) ParamNames() []string { return nil }
