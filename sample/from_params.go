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
	"github.com/godist-project/godist/params"
)

// clampToInt32 collapses a float bound onto the int32 range, mapping
// the infinities onto the extreme representable values.
func clampToInt32(f float64) int32 {
	switch {
	case math.IsInf(f, -1) || f < math.MinInt32:
		return math.MinInt32
	case math.IsInf(f, 1) || f > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(f)
	}
}

// FromParameters maps a parameter description onto the sampler that
// realizes it. Clip bounds carry over as the sampler's range, and a
// precision request wraps the sampler in a rounding adapter.
func FromParameters(p params.Parameters) (Sampler, error) {
	if p == nil {
		return nil, errors.New("nil parameters")
	}
	clip := p.Bounds()

	var s Sampler
	switch t := p.(type) {
	case *params.Uniform:
		s = &Uniform{Min: clip.Min, Max: clip.Max}
	case *params.DiscreteUniform:
		s = &UniformInt{Min: clampToInt32(clip.Min), Max: clampToInt32(clip.Max)}
	case *params.Binomial:
		s = NewBinomial(t.N, t.P)
	case *params.Categorical:
		c, err := NewCategorical(t.Weights)
		if err != nil {
			return nil, err
		}
		s = c
	case *params.Exponential:
		s = NewExponentialMax(t.Lambda, clip.Max)
	case *params.Logistic:
		s = NewLogisticRange(t.Mu, t.Sigma, clip.Min, clip.Max)
	case *params.LogNormal:
		min := clip.Min
		if math.IsInf(min, -1) {
			min = 0
		}
		s = NewLogNormalRange(t.Mu, t.Sigma, min, clip.Max)
	case *params.Normal:
		s = NewNormalRange(t.Mu, t.Sigma, clip.Min, clip.Max)
	case *params.PositiveNormal:
		s = NewPositiveNormalMax(t.Mu, t.Sigma, clip.Max)
	default:
		return nil, errors.Errorf("unsupported parameter kind %s", p.Kind())
	}

	if clip.Precision != params.NoPrecision {
		s = Rounded(s, clip.Precision)
	}
	return s, nil
}

type rounded struct {
	inner Sampler
	scale float64
}

// Rounded wraps a sampler so that every emitted value is rounded to
// the given number of decimal places. Properties pass through
// unrounded.
func Rounded(s Sampler, decimals int) Sampler {
	return &rounded{inner: s, scale: math.Pow(10, float64(decimals))}
}

func (r *rounded) Properties() Properties {
	return r.inner.Properties()
}

func (r *rounded) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	inner, err := r.inner.Samples(g, count)
	if err != nil {
		return nil, err
	}
	return newStream(count, func() float64 {
		v, _ := inner.Next()
		return math.Round(v*r.scale) / r.scale
	}), nil
}
