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

import (
	"math"

	"github.com/pkg/errors"
)

// Source yields uniformly distributed float64 values in the half-open
// interval [0.0, 1.0). The Generator trusts the source to be well
// distributed and statistically independent across calls; it performs
// no seeding or state inspection of its own. Both *math/rand.Rand and
// *math/rand/v2.Rand satisfy Source.
type Source interface {
	Float64() float64
}

// ErrNonPositiveParams is returned by GammaVariate and BetaVariate
// when alpha or beta is not strictly positive.
var ErrNonPositiveParams = errors.New("alpha and beta must be > 0.0")

const twoPi = 2.0 * math.Pi

// nvMagicConst is the constant of the Kinderman-Monahan
// ratio-of-uniforms method, 4*exp(-1/2)/sqrt(2).
var nvMagicConst = 4.0 * math.Exp(-0.5) / math.Sqrt2

var log4 = math.Log(4.0)

// sgMagicConst is the squeeze constant of Cheng's gamma
// algorithm, 1+log(4.5).
var sgMagicConst = 1.0 + math.Log(4.5)

// uniformGuard is the threshold below which a uniform draw is
// rejected and redrawn wherever its logarithm (or logit) is taken,
// keeping -log(u) finite.
const uniformGuard = 1e-7

// Generator samples random values from continuous probability
// distributions, drawing its underlying uniform values from src.
//
// Apart from Gauss, every method is stateless: given the same
// parameters and the same sequence of uniform draws it returns the
// same value, so all methods except Gauss may be called concurrently
// whenever src itself is safe for concurrent use.
type Generator struct {
	src Source

	// Spare standard-normal deviate produced as a byproduct of the
	// last Gauss call, consumed by the next one. See Gauss for the
	// synchronization contract.
	gaussNext  float64
	gaussReady bool
}

// New returns a Generator drawing uniform values from src.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// mod2Pi reduces an angle into [0, 2*pi) for any sign of theta.
func mod2Pi(theta float64) float64 {
	m := math.Mod(theta, twoPi)
	if m < 0 {
		m += twoPi
	}
	return m
}
