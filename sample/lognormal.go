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

// LogNormal samples the log-normal distribution whose logarithm is
// normal with mean Mu and standard deviation Sigma, clipped to
// [Min, Max].
type LogNormal struct {
	Mu    float64
	Sigma float64
	Min   float64
	Max   float64
}

// NewLogNormal returns an instance of the LogNormal sampler over
// [0, +Inf).
func NewLogNormal(mu, sigma float64) *LogNormal {
	return &LogNormal{
		Mu:    mu,
		Sigma: internal.ClampPositive(sigma),
		Min:   0,
		Max:   math.Inf(1),
	}
}

// NewLogNormalRange returns a LogNormal sampler whose draws are
// rejection-sampled into [min, max].
func NewLogNormalRange(mu, sigma, min, max float64) *LogNormal {
	l := NewLogNormal(mu, sigma)
	l.Min = min
	l.Max = max
	return l
}

// Properties returns the analytic log-normal moments.
func (l *LogNormal) Properties() Properties {
	if math.IsNaN(l.Mu) || math.IsNaN(l.Sigma) {
		return nanProperties()
	}
	s2 := l.Sigma * l.Sigma
	return Properties{
		Minimum:  l.Min,
		Maximum:  l.Max,
		Mean:     math.Exp(l.Mu + s2/2),
		Median:   math.Exp(l.Mu),
		Mode:     []float64{math.Exp(l.Mu - s2)},
		Variance: (math.Exp(s2) - 1) * math.Exp(2*l.Mu+s2),
	}
}

func (l *LogNormal) Samples(g *mtrand.Generator, count int) (*Stream, error) {
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
	return pairStream(count, lo, hi, func() (float64, float64) {
		a, b := gaussPair(g, l.Mu, l.Sigma)
		return math.Exp(a), math.Exp(b)
	}), nil
}
