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

// expoUnit returns a rate-1 exponential deviate by inverse CDF,
// redrawing while the uniform value is at most uniformGuard so that
// -log(u) stays finite. Shared by ExpoVariate and the alpha == 1
// regime of GammaVariate.
func (g *Generator) expoUnit() float64 {
	u := g.src.Float64()
	for u <= uniformGuard {
		u = g.src.Float64()
	}
	return -math.Log(u)
}

// ExpoVariate returns a sample from the exponential distribution with
// rate lambd (1 divided by the desired mean). lambd must be nonzero;
// it is not validated. Returned values range from 0 to positive
// infinity if lambd is positive, and from negative infinity to 0 if
// lambd is negative.
func (g *Generator) ExpoVariate(lambd float64) float64 {
	return g.expoUnit() / lambd
}
