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
	"github.com/stretchr/testify/require"

	"github.com/godist-project/godist/mtrand"
	"github.com/godist-project/godist/params"
	"github.com/godist-project/godist/sample"
)

func TestFromParameters_Mapping(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		check func(t *testing.T, s sample.Sampler)
	}{
		{
			name:  "uniform",
			input: "Uniform distribution (2.00;6.00)",
			check: func(t *testing.T, s sample.Sampler) {
				u, ok := s.(*sample.Uniform)
				require.True(t, ok)
				assert.Equal(t, 2.0, u.Min)
				assert.Equal(t, 6.0, u.Max)
			},
		},
		{
			name:  "discrete uniform",
			input: "DiscreteUniform distribution (0.00;10.00)",
			check: func(t *testing.T, s sample.Sampler) {
				u, ok := s.(*sample.UniformInt)
				require.True(t, ok)
				assert.Equal(t, int32(0), u.Min)
				assert.Equal(t, int32(10), u.Max)
			},
		},
		{
			name:  "normal",
			input: "Normal distribution [5.00;2.00]",
			check: func(t *testing.T, s sample.Sampler) {
				n, ok := s.(*sample.Normal)
				require.True(t, ok)
				assert.Equal(t, 5.0, n.Mu)
				assert.Equal(t, 2.0, n.Sigma)
			},
		},
		{
			name:  "binomial",
			input: "Binomial distribution [10.00;0.25]",
			check: func(t *testing.T, s sample.Sampler) {
				b, ok := s.(*sample.Binomial)
				require.True(t, ok)
				assert.Equal(t, 10, b.N)
				assert.Equal(t, 0.25, b.P)
			},
		},
		{
			name:  "exponential",
			input: "Exponential distribution [1.50]",
			check: func(t *testing.T, s sample.Sampler) {
				e, ok := s.(*sample.Exponential)
				require.True(t, ok)
				assert.Equal(t, 1.5, e.Lambda)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := params.Parse(test.input)
			require.NoError(t, err)
			s, err := sample.FromParameters(p)
			require.NoError(t, err)
			test.check(t, s)
		})
	}
}

func TestFromParameters_Categorical(t *testing.T) {
	p, err := params.NewCategorical([]float64{1, 1, 2})
	require.NoError(t, err)
	s, err := sample.FromParameters(p)
	require.NoError(t, err)

	c, ok := s.(*sample.Categorical)
	require.True(t, ok)
	assert.EqualValues(t, []float64{0.25, 0.25, 0.5}, c.Weights())
}

func TestFromParameters_EqualInfiniteBounds(t *testing.T) {
	p, err := params.ParseExact("7:Infinity;Infinity:5;2:", params.FormatRoundTrip)
	require.NoError(t, err)
	s, err := sample.FromParameters(p)
	require.NoError(t, err)

	g := mtrand.New(1)
	stream, err := s.Samples(g, 5)
	require.NoError(t, err)
	for {
		v, ok := stream.Next()
		if !ok {
			break
		}
		assert.True(t, math.IsInf(v, 1), "expected +Inf, got %f", v)
	}
}

func TestFromParameters_Nil(t *testing.T) {
	_, err := sample.FromParameters(nil)
	assert.Error(t, err)
}

func TestFromParameters_Rounded(t *testing.T) {
	p, err := params.Parse("Uniform distribution (0.00;1.00) r:2")
	require.NoError(t, err)
	s, err := sample.FromParameters(p)
	require.NoError(t, err)

	g := mtrand.New(5)
	vec := collect(t, s, g, 1000)
	for _, v := range vec {
		scaled := v * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9, "value not rounded: %f", v)
	}
}

func TestRounded_Properties(t *testing.T) {
	inner := sample.NewUniform(0, 10)
	s := sample.Rounded(inner, 1)
	assert.Equal(t, inner.Properties(), s.Properties())
}
