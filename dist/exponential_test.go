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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/variate-project/govariate/dist"
)

// A uniform draw of exactly 0 (or anything at most 1e-7) must be
// redrawn rather than fed into the logarithm.
func TestExpoVariateZeroGuard(t *testing.T) {
	src := &countingSource{src: &replaySource{values: []float64{0.0, 1e-8, 0.5}}}
	g := dist.New(src)

	x := g.ExpoVariate(2.0)
	assert.Equal(t, 3, src.draws)
	assert.Equal(t, -math.Log(0.5)/2.0, x)
	assert.False(t, math.IsInf(x, 0))
	assert.False(t, math.IsNaN(x))
}

func TestExpoVariate(t *testing.T) {
	g := seeded(8)
	vec := sampleN(100000, func() float64 { return g.ExpoVariate(1) })

	for _, x := range vec {
		assert.Positive(t, x)
	}

	ref := distuv.Exponential{Rate: 1}
	d := ksStatistic(vec, ref.CDF)
	assert.Less(t, d, 0.01, "empirical distribution too far from the exponential CDF")
}

// A negative rate mirrors the distribution into (-inf, 0).
func TestExpoVariateNegativeRate(t *testing.T) {
	g := seeded(9)
	vec := sampleN(10000, func() float64 { return g.ExpoVariate(-2) })

	for _, x := range vec {
		assert.Negative(t, x)
	}
}
