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
	"sort"

	"github.com/pkg/errors"
)

// Params maps parameter names to values supplied at construction.
// Accepted value types are float64, int, and []float64.
type Params map[string]interface{}

// Float returns the named parameter as a scalar.
func (p Params) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, errors.Errorf("parameter %s is missing", name)
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	}
	return 0, errors.Errorf("parameter %s is not a scalar", name)
}

// Int returns the named parameter as an integer. A float64 value is
// accepted when it is a whole number.
func (p Params) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok {
		return 0, errors.Errorf("parameter %s is missing", name)
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		if t != float64(int(t)) {
			return 0, errors.Errorf("parameter %s is not an integer", name)
		}
		return int(t), nil
	}
	return 0, errors.Errorf("parameter %s is not an integer", name)
}

// Floats returns the named parameter as a vector.
func (p Params) Floats(name string) ([]float64, error) {
	v, ok := p[name]
	if !ok {
		return nil, errors.Errorf("parameter %s is missing", name)
	}
	if t, ok := v.([]float64); ok {
		return t, nil
	}
	return nil, errors.Errorf("parameter %s is not a vector", name)
}

// names returns the supplied parameter names in canonical order.
func (p Params) names() []string {
	out := make([]string, 0, len(p))
	for name := range p {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
