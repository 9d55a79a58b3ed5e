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
	"strings"
)

// UnknownParameterizationError reports that the supplied parameter
// names do not match any parameterization registered for the family.
type UnknownParameterizationError struct {
	Family string
	Names  []string
}

func (e *UnknownParameterizationError) Error() string {
	return fmt.Sprintf("measure: family %s has no parameterization {%s}",
		e.Family, strings.Join(e.Names, ","))
}

// DispatchError reports that an operation has neither a direct
// implementation nor a proxy for the instance's parameterization. It
// indicates a registration bug in the family, not bad caller input.
type DispatchError struct {
	Op     string
	Family string
	Names  []string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("measure: no %s implementation or proxy for %s/{%s}",
		e.Op, e.Family, strings.Join(e.Names, ","))
}

func newDispatchError(op string, m Measure) *DispatchError {
	return &DispatchError{Op: op, Family: m.Family(), Names: m.ParamNames()}
}
