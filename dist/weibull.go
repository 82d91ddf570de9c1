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

// WeibullVariate returns a sample from the Weibull distribution with
// scale alpha and shape beta, by inverting the CDF. With alpha = 1
// and beta = 1 it reduces to the exponential distribution with rate
// 1. Parameters are not validated.
func (g *Generator) WeibullVariate(alpha, beta float64) float64 {
	u := 1.0 - g.src.Float64()
	return alpha * math.Pow(-math.Log(u), 1.0/beta)
}
