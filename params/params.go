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

package params

import (
	"math"

	"github.com/godist-project/godist/data"
	"github.com/godist-project/godist/internal"
)

// Kind identifies a distribution. The numeric values are part of the
// round-trip wire format and must not be reordered.
type Kind int

const (
	KindUniform Kind = iota
	KindDiscreteUniform
	KindBinomial
	KindCategorical
	KindExponential
	KindLogistic
	KindLogNormal
	KindNormal
	KindPositiveNormal
	numKinds
)

var kindNames = [numKinds]string{
	"Uniform",
	"DiscreteUniform",
	"Binomial",
	"Categorical",
	"Exponential",
	"Logistic",
	"LogNormal",
	"Normal",
	"PositiveNormal",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Unknown"
	}
	return kindNames[k]
}

// NoPrecision marks an absent rounding precision.
const NoPrecision = -1

// Clip carries the optional clipping bounds and rounding precision
// shared by every distribution kind. Unbounded sides are stored as
// the corresponding infinity.
type Clip struct {
	Min       float64
	Max       float64
	Precision int
}

// NewClip returns an unbounded Clip without a precision.
func NewClip() Clip {
	return Clip{Min: math.Inf(-1), Max: math.Inf(1), Precision: NoPrecision}
}

// Bounds returns the clip itself; embedding Clip gives every kind
// this accessor.
func (c Clip) Bounds() Clip {
	return c
}

// Parameters is the tagged union over the nine distribution kinds.
// Only the per-kind structs in this package implement it.
type Parameters interface {
	Kind() Kind
	Bounds() Clip
	// shape returns the kind-specific parameters in wire order.
	shape() []float64
}

// Uniform describes the continuous uniform distribution. It has no
// shape parameters; the bounds are the distribution.
type Uniform struct {
	Clip
}

// NewUniform returns unbounded continuous uniform parameters.
func NewUniform() *Uniform {
	return &Uniform{NewClip()}
}

func (*Uniform) Kind() Kind       { return KindUniform }
func (*Uniform) shape() []float64 { return nil }

// DiscreteUniform describes the integer uniform distribution. Like
// Uniform it carries no shape parameters.
type DiscreteUniform struct {
	Clip
}

// NewDiscreteUniform returns unbounded discrete uniform parameters.
func NewDiscreteUniform() *DiscreteUniform {
	return &DiscreteUniform{NewClip()}
}

func (*DiscreteUniform) Kind() Kind       { return KindDiscreteUniform }
func (*DiscreteUniform) shape() []float64 { return nil }

// Binomial describes n Bernoulli trials with success probability p.
type Binomial struct {
	Clip
	N int
	P float64
}

// NewBinomial returns binomial parameters. A negative n is clamped
// to zero and a finite p is clamped to [0, 1]; NaN passes through as
// the always-NaN distribution state.
func NewBinomial(n int, p float64) *Binomial {
	if n < 0 {
		n = 0
	}
	if !math.IsNaN(p) {
		p = math.Min(math.Max(p, 0), 1)
	}
	return &Binomial{Clip: NewClip(), N: n, P: p}
}

func (*Binomial) Kind() Kind { return KindBinomial }
func (b *Binomial) shape() []float64 {
	return []float64{float64(b.N), b.P}
}

// Categorical describes a finite distribution over category indices
// 0..len(Weights)-1. Weights are stored normalized.
type Categorical struct {
	Clip
	Weights data.Vector
}

// NewCategorical returns categorical parameters with the weights
// normalized: negative weights are clamped to zero and the vector is
// scaled to sum to one. Absent or empty weights default to three
// equal categories. A vector whose total weight is nearly zero is an
// error.
func NewCategorical(weights []float64) (*Categorical, error) {
	v := data.NewVector(weights)
	if len(v) == 0 {
		v = data.NewConstantVector(3, 1)
	}
	normalized, err := v.Normalized()
	if err != nil {
		return nil, err
	}
	return &Categorical{Clip: NewClip(), Weights: normalized}, nil
}

func (*Categorical) Kind() Kind { return KindCategorical }
func (c *Categorical) shape() []float64 {
	return []float64(c.Weights)
}

// Exponential describes the exponential distribution with rate
// Lambda.
type Exponential struct {
	Clip
	Lambda float64
}

// NewExponential returns exponential parameters. A non-positive
// finite lambda is clamped to the library epsilon; NaN passes
// through.
func NewExponential(lambda float64) *Exponential {
	return &Exponential{Clip: NewClip(), Lambda: internal.ClampPositive(lambda)}
}

func (*Exponential) Kind() Kind { return KindExponential }
func (e *Exponential) shape() []float64 {
	return []float64{e.Lambda}
}

// Logistic describes the logistic distribution with location Mu and
// scale Sigma.
type Logistic struct {
	Clip
	Mu    float64
	Sigma float64
}

// NewLogistic returns logistic parameters with sigma clamped
// positive.
func NewLogistic(mu, sigma float64) *Logistic {
	return &Logistic{Clip: NewClip(), Mu: mu, Sigma: internal.ClampPositive(sigma)}
}

func (*Logistic) Kind() Kind { return KindLogistic }
func (l *Logistic) shape() []float64 {
	return []float64{l.Mu, l.Sigma}
}

// LogNormal describes the distribution of exp(X) for X normal with
// location Mu and scale Sigma.
type LogNormal struct {
	Clip
	Mu    float64
	Sigma float64
}

// NewLogNormal returns log-normal parameters with sigma clamped
// positive.
func NewLogNormal(mu, sigma float64) *LogNormal {
	return &LogNormal{Clip: NewClip(), Mu: mu, Sigma: internal.ClampPositive(sigma)}
}

func (*LogNormal) Kind() Kind { return KindLogNormal }
func (l *LogNormal) shape() []float64 {
	return []float64{l.Mu, l.Sigma}
}

// Normal describes the normal distribution with location Mu and
// scale Sigma.
type Normal struct {
	Clip
	Mu    float64
	Sigma float64
}

// NewNormal returns normal parameters with sigma clamped positive.
func NewNormal(mu, sigma float64) *Normal {
	return &Normal{Clip: NewClip(), Mu: mu, Sigma: internal.ClampPositive(sigma)}
}

func (*Normal) Kind() Kind { return KindNormal }
func (n *Normal) shape() []float64 {
	return []float64{n.Mu, n.Sigma}
}

// PositiveNormal describes the absolute value of a normal variate
// with location Mu and scale Sigma.
type PositiveNormal struct {
	Clip
	Mu    float64
	Sigma float64
}

// NewPositiveNormal returns positive-normal parameters with sigma
// clamped positive.
func NewPositiveNormal(mu, sigma float64) *PositiveNormal {
	return &PositiveNormal{Clip: NewClip(), Mu: mu, Sigma: internal.ClampPositive(sigma)}
}

func (*PositiveNormal) Kind() Kind { return KindPositiveNormal }
func (p *PositiveNormal) shape() []float64 {
	return []float64{p.Mu, p.Sigma}
}
