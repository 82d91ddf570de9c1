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

// Gauss returns a sample from the normal distribution with mean mu
// and standard deviation sigma. It is slightly faster than
// NormalVariate: when x and y are independent uniform variables on
// [0, 1), then
//
//	cos(2*pi*x)*sqrt(-2*log(1-y))
//	sin(2*pi*x)*sqrt(-2*log(1-y))
//
// are two independent standard-normal variables, so each pair of
// uniform draws yields two results and every second call returns a
// value cached by the previous one without touching the Source.
//
// Gauss is not safe for concurrent use on the same Generator without
// external locking. Two racing calls can both find the cache empty
// and one freshly cached deviate is then silently lost, or both calls
// can return the same value in a narrow interleaving window. Callers
// needing concurrent Gaussian sampling should serialize calls, use
// one Generator per goroutine, or call NormalVariate instead.
func (g *Generator) Gauss(mu, sigma float64) float64 {
	z := g.gaussNext
	ready := g.gaussReady
	g.gaussReady = false
	if !ready {
		x2pi := g.src.Float64() * twoPi
		g2rad := math.Sqrt(-2.0 * math.Log(1.0-g.src.Float64()))
		z = math.Cos(x2pi) * g2rad
		g.gaussNext = math.Sin(x2pi) * g2rad
		g.gaussReady = true
	}
	return mu + z*sigma
}
