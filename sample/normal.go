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

// gaussPair draws one pair of independent normal variates with the
// given mu and sigma using the polar Box-Muller method.
func gaussPair(g *mtrand.Generator, mu, sigma float64) (float64, float64) {
	for {
		u := 2*g.Float64() - 1
		v := 2*g.Float64() - 1
		s := u*u + v*v
		if s <= 0 || s >= 1 {
			continue
		}
		f := math.Sqrt(-2*math.Log(s)/s) * sigma
		return mu + u*f, mu + v*f
	}
}

// pairStream builds a stream from a pair-producing source. A pair is
// accepted only when both of its values lie in [lo, hi]; the second
// value of an accepted pair is held as a spare for the next draw.
// Rejecting whole pairs keeps the two halves identically distributed.
func pairStream(count int, lo, hi float64, pair func() (float64, float64)) *Stream {
	var spare float64
	hasSpare := false
	return newStream(count, func() float64 {
		if hasSpare {
			hasSpare = false
			return spare
		}
		for {
			a, b := pair()
			if a < lo || a > hi || b < lo || b > hi {
				continue
			}
			spare = b
			hasSpare = true
			return a
		}
	})
}

// Normal samples the normal distribution with mean Mu and standard
// deviation Sigma, optionally clipped to [Min, Max].
type Normal struct {
	Mu    float64
	Sigma float64
	Min   float64
	Max   float64
}

// NewNormal returns an instance of the Normal sampler.
func NewNormal(mu, sigma float64) *Normal {
	return &Normal{
		Mu:    mu,
		Sigma: internal.ClampPositive(sigma),
		Min:   math.Inf(-1),
		Max:   math.Inf(1),
	}
}

// NewNormalRange returns a Normal sampler whose draws are
// rejection-sampled into [min, max].
func NewNormalRange(mu, sigma, min, max float64) *Normal {
	n := NewNormal(mu, sigma)
	n.Min = min
	n.Max = max
	return n
}

func (n *Normal) Properties() Properties {
	if math.IsNaN(n.Mu) || math.IsNaN(n.Sigma) {
		return nanProperties()
	}
	return Properties{
		Minimum:  n.Min,
		Maximum:  n.Max,
		Mean:     n.Mu,
		Median:   n.Mu,
		Mode:     []float64{n.Mu},
		Variance: n.Sigma * n.Sigma,
	}
}

func (n *Normal) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	if math.IsNaN(n.Mu) || math.IsNaN(n.Sigma) {
		return constStream(count, math.NaN()), nil
	}
	lo, hi, err := resolveBounds(g, n.Min, n.Max)
	if err != nil {
		return nil, err
	}
	if v, ok := degenerate(lo, hi); ok {
		return constStream(count, v), nil
	}
	return pairStream(count, lo, hi, func() (float64, float64) {
		return gaussPair(g, n.Mu, n.Sigma)
	}), nil
}

// PositiveNormal samples the absolute value of a normal variate with
// location Mu and scale Sigma, clipped to [0, Max]. For mu = 0 this is
// the half-normal distribution.
type PositiveNormal struct {
	Mu    float64
	Sigma float64
	Max   float64
}

// NewPositiveNormal returns an instance of the PositiveNormal sampler.
func NewPositiveNormal(mu, sigma float64) *PositiveNormal {
	return &PositiveNormal{
		Mu:    mu,
		Sigma: internal.ClampPositive(sigma),
		Max:   math.Inf(1),
	}
}

// NewPositiveNormalMax returns a PositiveNormal sampler whose draws
// are rejection-sampled into [0, max].
func NewPositiveNormalMax(mu, sigma, max float64) *PositiveNormal {
	p := NewPositiveNormal(mu, sigma)
	p.Max = max
	return p
}

// Properties reports the shifted half-normal moments, valid for
// non-negative mu.
func (p *PositiveNormal) Properties() Properties {
	if math.IsNaN(p.Mu) || math.IsNaN(p.Sigma) {
		return nanProperties()
	}
	return Properties{
		Minimum:  0,
		Maximum:  p.Max,
		Mean:     p.Mu + p.Sigma*math.Sqrt(2/math.Pi),
		Median:   p.Mu + p.Sigma*math.Sqrt2*math.Erfinv(0.5),
		Mode:     []float64{p.Mu},
		Variance: p.Sigma * p.Sigma * (1 - 2/math.Pi),
	}
}

func (p *PositiveNormal) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	if math.IsNaN(p.Mu) || math.IsNaN(p.Sigma) {
		return constStream(count, math.NaN()), nil
	}
	lo, hi, err := resolveBounds(g, 0, p.Max)
	if err != nil {
		return nil, err
	}
	if v, ok := degenerate(lo, hi); ok {
		return constStream(count, v), nil
	}
	return pairStream(count, lo, hi, func() (float64, float64) {
		a, b := gaussPair(g, p.Mu, p.Sigma)
		return math.Abs(a), math.Abs(b)
	}), nil
}
