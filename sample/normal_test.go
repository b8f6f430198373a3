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

package sample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godist-project/godist/mtrand"
	"github.com/godist-project/godist/sample"
)

func TestSample_Normal(t *testing.T) {
	g := mtrand.New(256)
	n := sample.NewNormal(5, 2)

	vec := collect(t, n, g, 100000)
	me := mean(vec)
	v := variance(vec)
	assert.True(t, me > 4.95 && me < 5.05, "mean value of the normal distribution is off: %f", me)
	assert.True(t, v > 3.8 && v < 4.2, "variance of the normal distribution is off: %f", v)

	props := n.Properties()
	assert.Equal(t, 5.0, props.Mean)
	assert.Equal(t, 5.0, props.Median)
	assert.Equal(t, 4.0, props.Variance)
}

func TestSample_NormalRange(t *testing.T) {
	g := mtrand.New(256)
	n := sample.NewNormalRange(0, 10, -5, 5)

	vec := collect(t, n, g, 10000)
	for _, v := range vec {
		assert.True(t, v >= -5 && v <= 5, "sample out of range: %f", v)
	}
}

func TestSample_NormalDegenerateBounds(t *testing.T) {
	g := mtrand.New(1)
	n := sample.NewNormalRange(5, 2, 3.5, 3.5)

	vec := collect(t, n, g, 100)
	for _, v := range vec {
		assert.Equal(t, 3.5, v)
	}
}

func TestSample_EqualInfiniteBounds(t *testing.T) {
	g := mtrand.New(1)

	vec := collect(t, sample.NewNormalRange(5, 2, math.Inf(1), math.Inf(1)), g, 10)
	for _, v := range vec {
		assert.True(t, math.IsInf(v, 1), "expected +Inf, got %f", v)
	}

	vec = collect(t, sample.NewLogisticRange(0, 1, math.Inf(-1), math.Inf(-1)), g, 10)
	for _, v := range vec {
		assert.True(t, math.IsInf(v, -1), "expected -Inf, got %f", v)
	}

	vec = collect(t, sample.NewLogNormalRange(1, 0.5, math.Inf(1), math.Inf(1)), g, 10)
	for _, v := range vec {
		assert.True(t, math.IsInf(v, 1), "expected +Inf, got %f", v)
	}
}

func TestSample_PositiveNormal(t *testing.T) {
	g := mtrand.New(11)
	p := sample.NewPositiveNormal(0, 2)

	vec := collect(t, p, g, 100000)
	for _, v := range vec {
		assert.True(t, v >= 0, "negative sample: %f", v)
	}

	me := mean(vec)
	expected := 2 * math.Sqrt(2/math.Pi)
	assert.InDelta(t, expected, me, 0.05)

	props := p.Properties()
	assert.InDelta(t, expected, props.Mean, 1e-12)
	assert.InDelta(t, 4*(1-2/math.Pi), props.Variance, 1e-12)
}

func TestSample_LogNormal(t *testing.T) {
	g := mtrand.New(33)
	l := sample.NewLogNormal(1, 0.25)

	vec := collect(t, l, g, 100000)
	for _, v := range vec {
		assert.True(t, v > 0, "non-positive sample: %f", v)
	}

	props := l.Properties()
	assert.InDelta(t, props.Mean, mean(vec), 0.05)
	assert.InDelta(t, math.Exp(1), props.Median, 1e-12)
}

func TestSample_NormalNaNScale(t *testing.T) {
	g := mtrand.New(1)
	n := sample.NewNormal(math.NaN(), 1)

	vec := collect(t, n, g, 10)
	for _, v := range vec {
		assert.True(t, math.IsNaN(v))
	}
}
