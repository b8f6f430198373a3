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
	"github.com/pkg/errors"

	"github.com/godist-project/godist/internal"
)

// Vector wraps a slice of float64 elements. It is the carrier for
// categorical weight vectors.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewConstantVector returns a new Vector instance with all elements
// set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Sum returns the sum of the entries.
func (v Vector) Sum() float64 {
	total := 0.0
	for _, c := range v {
		total += c
	}

	return total
}

// Clamped returns a copy of the vector with negative entries clamped
// to zero.
func (v Vector) Clamped() Vector {
	newVec := v.Copy()
	for i, c := range newVec {
		if c < 0 {
			newVec[i] = 0
		}
	}

	return newVec
}

// Normalized clamps negative entries to zero and scales the vector
// so its entries sum to one. It returns an error when the total
// weight is nearly zero. A vector that already sums to exactly one
// is returned unchanged, so normalization is idempotent.
func (v Vector) Normalized() (Vector, error) {
	newVec := v.Clamped()
	total := newVec.Sum()
	if internal.NearlyZero(total) {
		return nil, errors.Wrap(internal.ErrZeroWeightSum, "cannot normalize")
	}
	if total == 1 {
		return newVec, nil
	}
	for i := range newVec {
		newVec[i] /= total
	}

	return newVec, nil
}

// Cumulative returns the running sums of the entries. For a
// normalized vector the last entry is one up to rounding.
func (v Vector) Cumulative() Vector {
	newVec := make(Vector, len(v))
	total := 0.0
	for i, c := range v {
		total += c
		newVec[i] = total
	}

	return newVec
}
