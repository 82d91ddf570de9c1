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

// Package dist generates pseudorandom variates from named continuous
// probability distributions.
//
// A Generator turns a stream of uniformly distributed float64 values
// in [0, 1), supplied through the Source interface, into samples from
// the triangular, normal, log-normal, exponential, von Mises, gamma,
// beta, Pareto and Weibull distributions. Each method implements a
// specific published sampling algorithm and consumes uniform draws in
// a fixed order, so a Generator driven by a deterministic Source
// produces a reproducible sequence of variates.
//
// Package dist also provides the Sampler interface along with adapter
// implementations of this interface for the individual distributions.
// Implementations of the Sampler interface can be used, for instance,
// to fill vector or matrix structures with the desired random data.
package dist
