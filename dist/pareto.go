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

// ParetoVariate returns a sample from the Pareto distribution with
// shape parameter alpha and minimum 1, by inverting the CDF. The
// reflection 1-u maps the draw into (0, 1], keeping the result finite
// and at least 1. alpha is not validated.
func (g *Generator) ParetoVariate(alpha float64) float64 {
	u := 1.0 - g.src.Float64()
	return math.Pow(u, -1.0/alpha)
}
