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

	"github.com/godist-project/godist/mtrand"
)

// Binomial samples the number of successes of N Bernoulli trials
// with success probability P.
type Binomial struct {
	N int
	P float64
}

// NewBinomial returns an instance of the Binomial sampler. A
// negative n is clamped to zero and a finite p to [0, 1]; NaN p puts
// the sampler in the always-NaN state.
func NewBinomial(n int, p float64) *Binomial {
	if n < 0 {
		n = 0
	}
	if !math.IsNaN(p) {
		p = math.Min(math.Max(p, 0), 1)
	}
	return &Binomial{N: n, P: p}
}

// Properties returns the binomial moments: mean np, variance
// np(1-p), mode floor(p(n+1)).
func (b *Binomial) Properties() Properties {
	if math.IsNaN(b.P) {
		return nanProperties()
	}
	mean := float64(b.N) * b.P
	return Properties{
		Minimum:  0,
		Maximum:  float64(b.N),
		Mean:     mean,
		Median:   math.Round(mean),
		Mode:     []float64{math.Floor(b.P * float64(b.N+1))},
		Variance: mean * (1 - b.P),
	}
}

// SamplesInt returns a stream of trial-success counts, each the sum
// of N Bernoulli draws. A NaN probability has no integer
// representation and is an error; Samples is the NaN-propagating
// form.
func (b *Binomial) SamplesInt(g *mtrand.Generator, count int) (*IntStream, error) {
	if math.IsNaN(b.P) {
		return nil, errors.New("success probability is NaN")
	}
	return newIntStream(count, func() int {
		successes := 0
		for i := 0; i < b.N; i++ {
			if g.Float64() <= b.P {
				successes++
			}
		}
		return successes
	}), nil
}

// Samples returns the same draws as SamplesInt widened to float64.
// A NaN probability yields NaN samples.
func (b *Binomial) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	if math.IsNaN(b.P) {
		return constStream(count, math.NaN()), nil
	}
	ints, err := b.SamplesInt(g, count)
	if err != nil {
		return nil, err
	}
	return ints.Floats(), nil
}
