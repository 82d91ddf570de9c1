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

// BetaVariate returns a sample from the beta distribution with shape
// parameters alpha > 0 and beta > 0. The result lies in [0, 1) and is
// never exactly 1. Both parameters are checked before any uniform
// value is drawn; invalid values yield ErrNonPositiveParams.
//
// The sample is the ratio y/(y+z) of two gamma variates with shapes
// alpha and beta, per Ivan Frohne's analysis of why the textbook
// construction from two exponential variates is wrong
// (http://sourceforge.net/bugs/?func=detailbug&bug_id=130030&group_id=5470).
func (g *Generator) BetaVariate(alpha, beta float64) (float64, error) {
	if alpha <= 0.0 || beta <= 0.0 {
		return 0, ErrNonPositiveParams
	}

	y, err := g.GammaVariate(alpha, 1.0)
	if err != nil {
		return 0, err
	}
	if y == 0 {
		// For tiny alpha the gamma sample can underflow to exactly
		// zero; dividing through would yield 0/0.
		return 0.0, nil
	}
	z, err := g.GammaVariate(beta, 1.0)
	if err != nil {
		return 0, err
	}
	return y / (y + z), nil
}
