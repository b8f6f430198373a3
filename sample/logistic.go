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

// Logistic samples the logistic distribution with location Mu and
// scale Sigma by inverse-CDF transform, optionally clipped to
// [Min, Max].
type Logistic struct {
	Mu    float64
	Sigma float64
	Min   float64
	Max   float64
}

// NewLogistic returns an instance of the Logistic sampler. A
// non-positive finite sigma is clamped to the library epsilon; a NaN
// mu or sigma puts the sampler in the always-NaN state.
func NewLogistic(mu, sigma float64) *Logistic {
	return &Logistic{
		Mu:    mu,
		Sigma: internal.ClampPositive(sigma),
		Min:   math.Inf(-1),
		Max:   math.Inf(1),
	}
}

// NewLogisticRange returns a Logistic sampler whose draws are
// rejection-sampled into [min, max].
func NewLogisticRange(mu, sigma, min, max float64) *Logistic {
	l := NewLogistic(mu, sigma)
	l.Min = min
	l.Max = max
	return l
}

// Properties returns the logistic moments: mean, median and mode mu,
// variance sigma^2*pi^2/3.
func (l *Logistic) Properties() Properties {
	if math.IsNaN(l.Mu) || math.IsNaN(l.Sigma) {
		return nanProperties()
	}
	return Properties{
		Minimum:  l.Min,
		Maximum:  l.Max,
		Mean:     l.Mu,
		Median:   l.Mu,
		Mode:     []float64{l.Mu},
		Variance: l.Sigma * l.Sigma * math.Pi * math.Pi / 3,
	}
}

// Samples returns a stream of logistic draws. The uniform draw is
// redrawn while u(1-u) is nearly zero to keep the logit finite;
// out-of-bound draws are rejected and redrawn.
func (l *Logistic) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	if math.IsNaN(l.Mu) || math.IsNaN(l.Sigma) {
		return constStream(count, math.NaN()), nil
	}
	lo, hi, err := resolveBounds(g, l.Min, l.Max)
	if err != nil {
		return nil, err
	}
	if v, ok := degenerate(lo, hi); ok {
		return constStream(count, v), nil
	}
	return newStream(count, func() float64 {
		for {
			u := g.Float64()
			if internal.NearlyZero(u * (1 - u)) {
				continue
			}
			x := l.Mu + l.Sigma*math.Log(u/(1-u))
			if x >= lo && x <= hi {
				return x
			}
		}
	}), nil
}
