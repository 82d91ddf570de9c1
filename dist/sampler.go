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

// Sampler draws one value from a fixed probability distribution.
type Sampler interface {
	Sample() (float64, error)
}

// Uniform samples random values from the interval [min, max).
type Uniform struct {
	gen      *Generator
	min, max float64
}

// NewUniform returns an instance of the Uniform sampler over
// [min, max).
func NewUniform(gen *Generator, min, max float64) *Uniform {
	return &Uniform{gen: gen, min: min, max: max}
}

func (s *Uniform) Sample() (float64, error) {
	return s.min + (s.max-s.min)*s.gen.src.Float64(), nil
}

// Normal samples random values from the normal distribution with
// mean mu and standard deviation sigma, using NormalVariate.
type Normal struct {
	gen       *Generator
	mu, sigma float64
}

// NewNormal returns an instance of the Normal sampler.
func NewNormal(gen *Generator, mu, sigma float64) *Normal {
	return &Normal{gen: gen, mu: mu, sigma: sigma}
}

func (s *Normal) Sample() (float64, error) {
	return s.gen.NormalVariate(s.mu, s.sigma), nil
}

// Exponential samples random values from the exponential distribution
// with rate lambd.
type Exponential struct {
	gen   *Generator
	lambd float64
}

// NewExponential returns an instance of the Exponential sampler.
func NewExponential(gen *Generator, lambd float64) *Exponential {
	return &Exponential{gen: gen, lambd: lambd}
}

func (s *Exponential) Sample() (float64, error) {
	return s.gen.ExpoVariate(s.lambd), nil
}

// Gamma samples random values from the gamma distribution with shape
// alpha and scale beta.
type Gamma struct {
	gen         *Generator
	alpha, beta float64
}

// NewGamma returns an instance of the Gamma sampler. It returns
// ErrNonPositiveParams when alpha or beta is not strictly positive,
// so an invalid sampler is rejected at construction rather than on
// every Sample call.
func NewGamma(gen *Generator, alpha, beta float64) (*Gamma, error) {
	if alpha <= 0.0 || beta <= 0.0 {
		return nil, ErrNonPositiveParams
	}
	return &Gamma{gen: gen, alpha: alpha, beta: beta}, nil
}

func (s *Gamma) Sample() (float64, error) {
	return s.gen.GammaVariate(s.alpha, s.beta)
}

// Weibull samples random values from the Weibull distribution with
// scale alpha and shape beta.
type Weibull struct {
	gen         *Generator
	alpha, beta float64
}

// NewWeibull returns an instance of the Weibull sampler.
func NewWeibull(gen *Generator, alpha, beta float64) *Weibull {
	return &Weibull{gen: gen, alpha: alpha, beta: beta}
}

func (s *Weibull) Sample() (float64, error) {
	return s.gen.WeibullVariate(s.alpha, s.beta), nil
}
