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

package internal

import "math"

// Epsilon is the smallest value the library treats as strictly
// positive. Shape parameters that must be positive (sigma, lambda)
// are clamped to Epsilon when given as zero or negative, never to
// exactly zero, so downstream transforms never divide by zero.
const Epsilon = 1e-15

// NearlyZero reports whether x is too close to zero to be used as a
// divisor or a logarithm argument.
func NearlyZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// NearlyEqual reports whether a and b are within Epsilon of each
// other. NaN inputs are never nearly equal to anything.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// ClampPositive substitutes Epsilon for a non-positive finite x.
// NaN passes through untouched; an always-NaN parameter is a valid
// distribution state, not an error.
func ClampPositive(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if x < Epsilon {
		return Epsilon
	}
	return x
}
