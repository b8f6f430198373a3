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

// Uniform samples values uniformly from the interval [Min, Max).
type Uniform struct {
	Min float64
	Max float64
}

// NewUniform returns an instance of the Uniform sampler over
// [min, max).
func NewUniform(min, max float64) *Uniform {
	return &Uniform{Min: min, Max: max}
}

// Properties returns the continuous uniform moments. The mode is
// empty; every point of the support is equally likely.
func (u *Uniform) Properties() Properties {
	if math.IsNaN(u.Min) || math.IsNaN(u.Max) {
		return nanProperties()
	}
	mean := (u.Min + u.Max) / 2
	span := u.Max - u.Min
	return Properties{
		Minimum:  u.Min,
		Maximum:  u.Max,
		Mean:     mean,
		Median:   mean,
		Variance: span * span / 12,
	}
}

// Samples returns a stream of max(0, count) uniform draws.
func (u *Uniform) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	lo, hi, err := resolveBounds(g, u.Min, u.Max)
	if err != nil {
		return nil, err
	}
	if v, ok := degenerate(lo, hi); ok {
		return constStream(count, v), nil
	}
	return newStream(count, func() float64 {
		v, _ := g.Float64Range(lo, hi)
		return v
	}), nil
}

// UniformInt samples integers uniformly from the interval
// [Min, Max).
type UniformInt struct {
	Min int32
	Max int32
}

// NewUniformInt returns an instance of the UniformInt sampler over
// [min, max).
func NewUniformInt(min, max int32) *UniformInt {
	return &UniformInt{Min: min, Max: max}
}

// Properties returns the discrete uniform moments over the integers
// min..max-1. Inverted bounds have no moments of their own until the
// generator's range policy resolves them at sampling time, so they
// report NaN throughout; equal bounds describe the constant Min
// stream that SamplesInt produces for them.
func (u *UniformInt) Properties() Properties {
	if u.Min > u.Max {
		return nanProperties()
	}
	if u.Min == u.Max {
		v := float64(u.Min)
		return Properties{Minimum: v, Maximum: v, Mean: v, Median: v, Mode: []float64{v}}
	}
	min := float64(u.Min)
	max := float64(u.Max)
	n := max - min
	return Properties{
		Minimum:  min,
		Maximum:  max - 1,
		Mean:     (min + max - 1) / 2,
		Median:   (min + max - 1) / 2,
		Variance: (n*n - 1) / 12,
	}
}

// SamplesInt returns a stream of max(0, count) integer draws.
func (u *UniformInt) SamplesInt(g *mtrand.Generator, count int) (*IntStream, error) {
	lo, hi := u.Min, u.Max
	if lo > hi {
		switch g.Config().IntRange {
		case mtrand.PolicyMin:
			return constIntStream(count, int(lo)), nil
		case mtrand.PolicyZero:
			return constIntStream(count, 0), nil
		case mtrand.PolicyMax:
			return constIntStream(count, int(hi)), nil
		case mtrand.PolicySwap:
			lo, hi = hi, lo
		default:
			return nil, errors.Wrap(internal.ErrInvertedRange, "uniform int bounds")
		}
	}
	return newIntStream(count, func() int {
		v, _ := g.Int31Range(lo, hi)
		return int(v)
	}), nil
}

// Samples returns the same draws as SamplesInt widened to float64.
func (u *UniformInt) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	ints, err := u.SamplesInt(g, count)
	if err != nil {
		return nil, err
	}
	return ints.Floats(), nil
}
