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

// Package source provides uniform random sources for the dist
// package.
//
// Every type here yields float64 values uniformly distributed over
// [0, 1) and satisfies dist.Source: Crypto draws from the operating
// system's CSPRNG, Salsa20 expands a 32-byte key into a deterministic
// stream, and PCG wraps a seeded in-memory generator for reproducible
// simulation runs.
package source
