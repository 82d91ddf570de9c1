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

package source

import "math/rand/v2"

// PCG yields uniform float64 values from a seeded PCG generator. It
// is the cheapest source here and the usual choice for statistical
// tests and simulations that must be reproducible from a seed. It is
// not cryptographically secure.
type PCG struct {
	rng *rand.Rand
}

// NewPCG returns an instance of the PCG source seeded with the given
// pair of values.
func NewPCG(seed1, seed2 uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Float64 returns a uniform value in [0, 1).
func (s *PCG) Float64() float64 {
	return s.rng.Float64()
}
