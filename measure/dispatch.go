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

// MaxProxyDepth bounds proxy-chain delegation in the dispatch
// functions. The registry rejects proxy cycles at registration time,
// so any registered chain is far shorter than this; the bound is a
// second line of defense against unregistered hand-built chains.
const MaxProxyDepth = 8

// LogDensity evaluates the unnormalized log-density of m at x,
// delegating through proxies when the active parameterization has no
// direct implementation. Normalization is the business of the base
// measure, see BaseMeasure.
func LogDensity(m Measure, x Point) (float64, error) {
	cur := m
	for d := 0; d <= MaxProxyDepth; d++ {
		if lp, ok := cur.(LogProber); ok {
			return lp.LogProb(x), nil
		}
		p, ok := cur.(Proxier)
		if !ok {
			break
		}
		cur = p.Proxy()
	}
	return 0, newDispatchError("logdensity", m)
}

// Sample draws one variate from m using src. Sampling is deterministic
// given the state of src, and src is never retained beyond the call.
func Sample(src rand.Source, m Measure) (Point, error) {
	cur := m
	for d := 0; d <= MaxProxyDepth; d++ {
		if r, ok := cur.(Rander); ok {
			return r.Rand(src), nil
		}
		p, ok := cur.(Proxier)
		if !ok {
			break
		}
		cur = p.Proxy()
	}
	return nil, newDispatchError("sample", m)
}

// InSupport reports whether x lies in the mathematical support of m.
func InSupport(m Measure, x Point) (bool, error) {
	cur := m
	for d := 0; d <= MaxProxyDepth; d++ {
		if s, ok := cur.(Supporter); ok {
			return s.InSupport(x), nil
		}
		p, ok := cur.(Proxier)
		if !ok {
			break
		}
		cur = p.Proxy()
	}
	return false, newDispatchError("insupport", m)
}

// BaseMeasure returns the reference measure against which the
// unnormalized log-density of m is defined. The log-density and the
// base measure's weighting together define one consistent density;
// neither alone is normalized.
func BaseMeasure(m Measure) (Measure, error) {
	cur := m
	for d := 0; d <= MaxProxyDepth; d++ {
		if b, ok := cur.(Baser); ok {
			return b.Base(), nil
		}
		p, ok := cur.(Proxier)
		if !ok {
			break
		}
		cur = p.Proxy()
	}
	return nil, newDispatchError("basemeasure", m)
}

// TestValue returns one canonical, always-valid point of the support
// of m. It is a fixed default, not a random draw.
func TestValue(m Measure) (Point, error) {
	cur := m
	for d := 0; d <= MaxProxyDepth; d++ {
		if t, ok := cur.(TestValuer); ok {
			return t.TestValue(), nil
		}
		p, ok := cur.(Proxier)
		if !ok {
			break
		}
		cur = p.Proxy()
	}
	return nil, newDispatchError("testvalue", m)
}

// Proxy returns the canonical equivalent of m and true, or m itself
// and false when the instance is primitive (has no proxy). Callers
// that care whether canonicalization happened must check the flag.
func Proxy(m Measure) (Measure, bool) {
	if p, ok := m.(Proxier); ok {
		return p.Proxy(), true
	}
	return m, false
}
