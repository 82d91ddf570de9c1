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

// NormalVariate returns a sample from the normal distribution with
// mean mu and standard deviation sigma.
//
// The implementation is based on the ratio-of-uniforms method from
// the paper: Kinderman, A.J. and Monahan, J.F., "Computer generation
// of random variables using the ratio of uniform deviates", ACM Trans
// Math Software, 3, (1977), pp257-260.
//
// Unlike Gauss, NormalVariate keeps no state between calls and is
// safe for concurrent use whenever the underlying Source is.
func (g *Generator) NormalVariate(mu, sigma float64) float64 {
	var z float64
	for {
		u1 := g.src.Float64()
		u2 := 1.0 - g.src.Float64()
		z = nvMagicConst * (u1 - 0.5) / u2
		if z*z/4.0 <= -math.Log(u2) {
			break
		}
	}
	return mu + z*sigma
}

// LogNormVariate returns a sample from the log-normal distribution:
// the natural logarithm of the result is normally distributed with
// mean mu and standard deviation sigma. sigma should be greater than
// zero for a meaningful distribution; it is not validated.
func (g *Generator) LogNormVariate(mu, sigma float64) float64 {
	return math.Exp(g.NormalVariate(mu, sigma))
}
