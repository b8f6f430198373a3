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

package sample

import (
	"math"

	"github.com/godist-project/godist/internal"
	"github.com/godist-project/godist/mtrand"
)

// Exponential samples the exponential distribution with rate Lambda
// by inverse-CDF transform, optionally clipped to [0, Max].
type Exponential struct {
	Lambda float64
	Max    float64
}

// NewExponential returns an instance of the Exponential sampler. A
// non-positive finite lambda is clamped to the library epsilon; NaN
// puts the sampler in the always-NaN state.
func NewExponential(lambda float64) *Exponential {
	return &Exponential{Lambda: internal.ClampPositive(lambda), Max: math.Inf(1)}
}

// NewExponentialMax returns an Exponential sampler whose draws are
// rejection-sampled into [0, max].
func NewExponentialMax(lambda, max float64) *Exponential {
	e := NewExponential(lambda)
	e.Max = max
	return e
}

// Properties returns the exponential moments: mean 1/lambda, median
// ln(2)/lambda, mode 0, variance 1/lambda^2.
func (e *Exponential) Properties() Properties {
	if math.IsNaN(e.Lambda) {
		return nanProperties()
	}
	return Properties{
		Minimum:  0,
		Maximum:  e.Max,
		Mean:     1 / e.Lambda,
		Median:   math.Ln2 / e.Lambda,
		Mode:     []float64{0},
		Variance: 1 / (e.Lambda * e.Lambda),
	}
}

// Samples returns a stream of exponential draws. The uniform draw is
// redrawn while nearly zero to keep -ln(u) finite; out-of-bound
// draws are rejected and redrawn.
func (e *Exponential) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	if math.IsNaN(e.Lambda) {
		return constStream(count, math.NaN()), nil
	}
	lo, hi, err := resolveBounds(g, 0, e.Max)
	if err != nil {
		return nil, err
	}
	if v, ok := degenerate(lo, hi); ok {
		return constStream(count, v), nil
	}
	return newStream(count, func() float64 {
		for {
			u := g.Float64()
			if internal.NearlyZero(u) {
				continue
			}
			x := -math.Log(u) / e.Lambda
			if x >= lo && x <= hi {
				return x
			}
		}
	}), nil
}
