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
	"math"
	"sort"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("measure")

// Domain declares the admissible real-valued domain of a named
// parameter, the coordinate-transform hint a parameterization may
// attach to its parameters.
type Domain int

const (
	// Unconstrained parameters range over all reals.
	Unconstrained Domain = iota
	// Positive parameters must be strictly greater than zero.
	Positive
	// Simplex parameters are probability vectors: entries in [0,1]
	// summing to one.
	Simplex
)

// Key identifies a (family, parameterization) pair. Names is the
// comma-joined, sorted parameter-name set, empty for arity zero.
type Key struct {
	Family string
	Names  string
}

// KeyFor builds the canonical Key for a family and a parameter-name
// set. Name order is irrelevant.
func KeyFor(family string, names []string) Key {
	s := append([]string(nil), names...)
	sort.Strings(s)
	return Key{Family: family, Names: strings.Join(s, ",")}
}

// ParamSpec declares one accepted parameterization of a family.
type ParamSpec struct {
	// Names of the parameters; nil for the fully fixed form.
	Names []string

	// Domains optionally constrains named parameters; declared
	// constraints are validated by New.
	Domains map[string]Domain

	// Build constructs an instance from resolved parameters.
	Build func(p Params) (Measure, error)

	// ProxyTo names the canonical parameterization this one proxies
	// to, nil when the parameterization is primitive. The edge is
	// what the registry validates for acyclicity; the instance's
	// Proxy method is the operational rule.
	ProxyTo *Key
}

// Registration tables are assembled by family init functions and
// read-only afterwards, so lookups need no locking.
var (
	specs      = map[Key]ParamSpec{}
	familyKeys = map[string][]Key{}
	proxyEdges = map[Key]Key{}
)

// Register declares the parameterizations of a family. It is intended
// to be called from init functions; duplicate registrations and proxy
// cycles are registration bugs and panic.
func Register(family string, ps []ParamSpec) {
	for _, spec := range ps {
		k := KeyFor(family, spec.Names)
		if _, dup := specs[k]; dup {
			panic(fmt.Sprintf("measure: duplicate registration of %s/{%s}", family, k.Names))
		}
		specs[k] = spec
		familyKeys[family] = append(familyKeys[family], k)
		if spec.ProxyTo != nil {
			proxyEdges[k] = *spec.ProxyTo
			if err := checkAcyclic(k); err != nil {
				panic(err)
			}
		}
		log.Debugf("registered %s/{%s}", family, k.Names)
	}
}

// checkAcyclic walks the proxy edges reachable from start. Edges to
// not-yet-registered targets are fine; a walk revisiting a node is not.
func checkAcyclic(start Key) error {
	seen := map[Key]bool{}
	cur := start
	for {
		next, ok := proxyEdges[cur]
		if !ok {
			return nil
		}
		if seen[cur] {
			return errors.Errorf("measure: proxy cycle through %s/{%s}", cur.Family, cur.Names)
		}
		seen[cur] = true
		cur = next
	}
}

// Families lists the registered family tags in sorted order.
func Families() []string {
	out := make([]string, 0, len(familyKeys))
	for f := range familyKeys {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Registered lists the parameterization keys registered for a family.
func Registered(family string) []Key {
	return append([]Key(nil), familyKeys[family]...)
}

// New resolves the supplied named parameters against the family's
// registered parameterizations and constructs the matching instance.
// It returns an UnknownParameterizationError when the name set matches
// no registration.
func New(family string, p Params) (Measure, error) {
	names := p.names()
	k := KeyFor(family, names)
	spec, ok := specs[k]
	if !ok {
		log.Debugf("no parameterization %s/{%s}", family, k.Names)
		return nil, &UnknownParameterizationError{Family: family, Names: names}
	}
	if err := validateDomains(spec, p); err != nil {
		log.Debugf("rejected %s/{%s}: %v", family, k.Names, err)
		return nil, errors.Wrapf(err, "measure: %s/{%s}", family, k.Names)
	}
	m, err := spec.Build(p)
	if err != nil {
		log.Debugf("build failed for %s/{%s}: %v", family, k.Names, err)
		return nil, errors.Wrapf(err, "measure: %s/{%s}", family, k.Names)
	}
	return m, nil
}

func validateDomains(spec ParamSpec, p Params) error {
	for name, dom := range spec.Domains {
		switch dom {
		case Positive:
			v, err := p.Float(name)
			if err != nil {
				return err
			}
			if !(v > 0) {
				return errors.Errorf("parameter %s must be positive, got %v", name, v)
			}
		case Simplex:
			vs, err := p.Floats(name)
			if err != nil {
				return err
			}
			total := 0.0
			for i, v := range vs {
				if v < 0 || v > 1 {
					return errors.Errorf("parameter %s[%d] is outside [0,1]: %v", name, i, v)
				}
				total += v
			}
			if math.Abs(total-1) > 1e-9 {
				return errors.Errorf("parameter %s must sum to one, sums to %v", name, total)
			}
		}
	}
	return nil
}
