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

package dist

import "math"

// Triangular returns a sample from the symmetric triangular
// distribution on [low, high] with its mode at the midpoint. It
// consumes exactly one uniform draw. The bounds are not validated;
// low < high is assumed.
func (g *Generator) Triangular(low, high float64) float64 {
	return g.triangular(low, high, 0.5)
}

// TriangularMode returns a sample from the triangular distribution on
// [low, high] with the given mode. The result lies between low and
// high whenever mode does; parameters are not validated.
func (g *Generator) TriangularMode(low, high, mode float64) float64 {
	return g.triangular(low, high, (mode-low)/(high-low))
}

// triangular applies the inverse CDF with c the normalized position
// of the mode in [0, 1], reflecting the draw when it falls above c.
func (g *Generator) triangular(low, high, c float64) float64 {
	u := g.src.Float64()
	if u > c {
		u = 1.0 - u
		c = 1.0 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}
