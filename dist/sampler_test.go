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

	"github.com/variate-project/govariate/dist"
)

func TestNewGammaInvalidParams(t *testing.T) {
	_, err := dist.NewGamma(seeded(1), 0.0, 1.0)
	assert.ErrorIs(t, err, dist.ErrNonPositiveParams)

	_, err = dist.NewGamma(seeded(1), 1.0, -2.0)
	assert.ErrorIs(t, err, dist.ErrNonPositiveParams)
}

// A sampler adapter draws exactly what the corresponding generator
// method draws under the same uniform stream.
func TestSamplersMatchGenerator(t *testing.T) {
	seq := []float64{0.61, 0.13, 0.48, 0.92, 0.27, 0.74}

	t.Run("Normal", func(t *testing.T) {
		s := dist.NewNormal(dist.New(&replaySource{values: seq}), 1, 2)
		x, err := s.Sample()
		assert.NoError(t, err)
		assert.Equal(t, dist.New(&replaySource{values: seq}).NormalVariate(1, 2), x)
	})

	t.Run("Exponential", func(t *testing.T) {
		s := dist.NewExponential(dist.New(&replaySource{values: seq}), 1.5)
		x, err := s.Sample()
		assert.NoError(t, err)
		assert.Equal(t, dist.New(&replaySource{values: seq}).ExpoVariate(1.5), x)
	})

	t.Run("Gamma", func(t *testing.T) {
		s, err := dist.NewGamma(dist.New(&replaySource{values: seq}), 2.5, 1)
		assert.NoError(t, err)
		x, err := s.Sample()
		assert.NoError(t, err)
		want, err := dist.New(&replaySource{values: seq}).GammaVariate(2.5, 1)
		assert.NoError(t, err)
		assert.Equal(t, want, x)
	})

	t.Run("Weibull", func(t *testing.T) {
		s := dist.NewWeibull(dist.New(&replaySource{values: seq}), 2, 0.5)
		x, err := s.Sample()
		assert.NoError(t, err)
		assert.Equal(t, dist.New(&replaySource{values: seq}).WeibullVariate(2, 0.5), x)
	})
}

func TestUniformSampler(t *testing.T) {
	s := dist.NewUniform(seeded(22), -2, 3)
	for i := 0; i < 10000; i++ {
		x, err := s.Sample()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, x, -2.0)
		assert.Less(t, x, 3.0)
	}
}
