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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

// Every Pareto sample is at least 1 for any positive shape, even over
// a large number of draws.
func TestParetoVariateLowerBound(t *testing.T) {
	for _, alpha := range []float64{0.5, 1.0, 2.5} {
		g := seeded(16)
		below := 0
		for i := 0; i < 1000000; i++ {
			if g.ParetoVariate(alpha) < 1.0 {
				below++
			}
		}
		assert.Zero(t, below, "Pareto samples below 1")
	}
}

func TestParetoVariate(t *testing.T) {
	g := seeded(17)
	vec := sampleN(100000, func() float64 { return g.ParetoVariate(2.5) })

	ref := distuv.Pareto{Xm: 1, Alpha: 2.5}
	d := ksStatistic(vec, ref.CDF)
	assert.Less(t, d, 0.01, "empirical distribution too far from the Pareto CDF")
}
