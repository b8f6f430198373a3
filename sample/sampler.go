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

	"github.com/pkg/errors"

	"github.com/godist-project/godist/internal"
	"github.com/godist-project/godist/mtrand"
)

// Sampler is the common surface of every distribution sampler.
type Sampler interface {
	// Properties returns the closed-form moments of the
	// distribution, rederived from the shape parameters on every
	// call.
	Properties() Properties
	// Samples returns a lazy stream of exactly max(0, count)
	// values drawn from g.
	Samples(g *mtrand.Generator, count int) (*Stream, error)
}

// Properties is a read-only snapshot of a distribution's moments.
// Mode is a sequence: some distributions are multi-modal and for
// some the mode is undefined, in which case it is empty.
type Properties struct {
	Minimum  float64
	Maximum  float64
	Mean     float64
	Median   float64
	Mode     []float64
	Variance float64
}

// nanProperties is the moment set of an always-NaN distribution
// state (a NaN shape parameter).
func nanProperties() Properties {
	n := math.NaN()
	return Properties{Minimum: n, Maximum: n, Mean: n, Median: n, Mode: []float64{n}, Variance: n}
}

// resolveBounds applies the generator's floating inverted-range
// policy to a sampler's clipping bounds. The returned bounds always
// satisfy lo <= hi unless one of them is NaN, which callers turn
// into a constant NaN stream.
func resolveBounds(g *mtrand.Generator, min, max float64) (lo, hi float64, err error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return math.NaN(), math.NaN(), nil
	}
	if min > max {
		switch g.Config().FloatRange {
		case mtrand.PolicyMin:
			return min, min, nil
		case mtrand.PolicyZero:
			return 0, 0, nil
		case mtrand.PolicyMax:
			return max, max, nil
		case mtrand.PolicyNaN:
			return math.NaN(), math.NaN(), nil
		case mtrand.PolicySwap:
			return max, min, nil
		default:
			return 0, 0, errors.Wrap(internal.ErrInvertedRange, "sampler bounds")
		}
	}
	return min, max, nil
}

// degenerate reports whether the resolved bounds force a constant
// stream: either bound NaN, or a nearly zero-length target interval
// that rejection sampling could never hit.
func degenerate(lo, hi float64) (float64, bool) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return math.NaN(), true
	}
	// Exact comparison first: equal infinite bounds are a zero-length
	// target too, and Inf-Inf is NaN, which the epsilon test cannot
	// see.
	if lo == hi {
		return lo, true
	}
	if internal.NearlyEqual(lo, hi) {
		return lo, true
	}
	return 0, false
}
