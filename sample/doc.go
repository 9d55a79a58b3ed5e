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

// Package sample includes the stochastic primitives the distribution
// families sample through: scalar draws, a multinomial count sampler,
// and an LKJ correlation matrix sampler.
//
// Every function takes an explicit rand.Source (the source type gonum's
// distuv consumes), so draws are deterministic under a fixed seed and
// concurrent callers with distinct sources never contend. The package
// also provides DetSource, a deterministic keystream-backed source for
// callers that want reproducibility from a key rather than a seed.
package sample
