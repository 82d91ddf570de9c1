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

package data

import (
	"fmt"
	"math"
	"strings"

	"github.com/variate-project/govariate/dist"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided dist.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler dist.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return NewVector(vec)
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make([]float64, len(v))
	copy(newVec, v)

	return NewVector(newVec)
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	vec := make([]float64, len(v))
	for i, c := range v {
		vec[i] = x * c
	}

	return NewVector(vec)
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	vec := make([]float64, len(v))
	for i, c := range v {
		vec[i] = f(c)
	}

	return NewVector(vec)
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make([]float64, len(v))
	for i, c := range v {
		sum[i] = c + other[i]
	}

	return NewVector(sum)
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	diff := make([]float64, len(v))
	for i, c := range v {
		diff[i] = c - other[i]
	}

	return NewVector(diff)
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of the same length")
	}

	prod := 0.0
	for i, c := range v {
		prod += c * other[i]
	}

	return prod, nil
}

// Sum returns the sum of the elements of vector v.
func (v Vector) Sum() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c
	}

	return sum
}

// Mean returns the arithmetic mean of the elements of vector v.
func (v Vector) Mean() float64 {
	return v.Sum() / float64(len(v))
}

// Variance returns the population variance of the elements of
// vector v.
func (v Vector) Variance() float64 {
	mean := v.Mean()
	sum := 0.0
	for _, c := range v {
		d := c - mean
		sum += d * d
	}

	return sum / float64(len(v))
}

// CheckBound checks whether the absolute values of all vector elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (v Vector) CheckBound(bound float64) error {
	for _, c := range v {
		if math.Abs(c) >= bound {
			return fmt.Errorf("element value out of bounds")
		}
	}

	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = fmt.Sprintf("%g", c)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
