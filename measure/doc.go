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

// Package measure provides the abstraction layer shared by all
// parametric probability distributions in this library.
//
// A distribution is represented by an immutable value implementing the
// Measure interface plus whichever capability interfaces (LogProber,
// Rander, Supporter, Baser, TestValuer) it supports directly. A
// parameterization without a direct implementation of some capability
// supplies a Proxy instead: a computationally equivalent instance in a
// canonical form on which the operation is actually carried out. The
// package-level dispatch functions (LogDensity, Sample, InSupport,
// BaseMeasure, TestValue) follow proxy chains with a fixed depth bound
// and report a DispatchError when neither an implementation nor a
// proxy exists.
//
// Families declare their accepted parameterizations in a process-wide
// registry assembled at init time and read-only afterwards, so
// concurrent readers need no synchronization. The registry also records
// the proxy graph and rejects cycles at registration time.
//
// Log-densities are unnormalized. Each distribution carries a base
// (reference) measure, obtained with BaseMeasure, whose weighting
// completes the density; the base-measure values in this package
// (Lebesgue, PowerMeasure, Counting, Weighted, Pushforward) compose to
// express references such as a weighted pushforward of a product
// Lebesgue measure through a constraining transform.
package measure
