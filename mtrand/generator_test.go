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

package mtrand_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godist-project/godist/mtrand"
)

func TestFloat64Unit(t *testing.T) {
	g := mtrand.New(12345)
	for i := 0; i < 10000; i++ {
		v := g.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestBigFloatMatchesFloat64(t *testing.T) {
	a := mtrand.New(99)
	b := mtrand.New(99)
	for i := 0; i < 100; i++ {
		f, _ := a.BigFloat().Float64()
		assert.Equal(t, b.Float64(), f)
	}
}

func TestBoolBitCache(t *testing.T) {
	g := mtrand.New(77)
	tw := mtrand.NewTwister(77)

	// The first 31 booleans come from the low bits of one word.
	w := tw.Uint32()
	for i := 0; i < 31; i++ {
		assert.Equal(t, (w>>uint(i))&1 == 1, g.Bool(), "bit %d", i)
	}

	// The 32nd boolean starts a fresh word.
	w = tw.Uint32()
	assert.Equal(t, w&1 == 1, g.Bool())
}

func TestBytes(t *testing.T) {
	g := mtrand.New(31337)
	tw := mtrand.NewTwister(31337)

	buf := make([]byte, 7)
	err := g.Bytes(buf)
	assert.NoError(t, err)

	want := make([]byte, 8)
	binary.LittleEndian.PutUint32(want[0:], tw.Uint32())
	binary.LittleEndian.PutUint32(want[4:], tw.Uint32())
	assert.Equal(t, want[:7], buf)
}

func TestBytesNil(t *testing.T) {
	g := mtrand.New(1)
	assert.Error(t, g.Bytes(nil))
}

func TestIntRangeContainment(t *testing.T) {
	g := mtrand.New(2024)
	for i := 0; i < 10000; i++ {
		v, err := g.Int31Range(-25, 17)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, v, int32(-25))
		assert.Less(t, v, int32(17))
	}
}

func TestIntRangeInclusiveTopOfDomain(t *testing.T) {
	g := mtrand.New(2024)
	for i := 0; i < 1000; i++ {
		v, err := g.Int31RangeInclusive(math.MaxInt32-3, math.MaxInt32)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, v, int32(math.MaxInt32-3))
	}
}

func TestUintRangeContainment(t *testing.T) {
	g := mtrand.New(11)
	for i := 0; i < 10000; i++ {
		v, err := g.Uint32Range(5, 500)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, v, uint32(5))
		assert.Less(t, v, uint32(500))
	}
	for i := 0; i < 1000; i++ {
		v, err := g.Uint32RangeInclusive(math.MaxUint32-3, math.MaxUint32)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, v, uint32(math.MaxUint32-3))
	}
}

func TestFloatRangeContainment(t *testing.T) {
	g := mtrand.New(555)
	for i := 0; i < 10000; i++ {
		v, err := g.Float64Range(-2.5, 4.25)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, v, -2.5)
		assert.Less(t, v, 4.25)
	}
}

func TestInvertedIntRangePolicies(t *testing.T) {
	var tests = []struct {
		name   string
		policy mtrand.Policy
		check  func(*testing.T, int32, error)
	}{
		{
			name:   "min",
			policy: mtrand.PolicyMin,
			check: func(t *testing.T, v int32, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int32(5), v)
			},
		},
		{
			name:   "zero",
			policy: mtrand.PolicyZero,
			check: func(t *testing.T, v int32, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int32(0), v)
			},
		},
		{
			name:   "max",
			policy: mtrand.PolicyMax,
			check: func(t *testing.T, v int32, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int32(2), v)
			},
		},
		{
			name:   "swap",
			policy: mtrand.PolicySwap,
			check: func(t *testing.T, v int32, err error) {
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, v, int32(2))
				assert.Less(t, v, int32(5))
			},
		},
		{
			name:   "reject",
			policy: mtrand.PolicyReject,
			check: func(t *testing.T, v int32, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := mtrand.NewWithConfig(9, mtrand.Config{
				FloatRange: mtrand.PolicyReject,
				IntRange:   test.policy,
			})
			v, err := g.Int31Range(5, 2)
			test.check(t, v, err)
		})
	}
}

func TestInvertedFloatRangePolicies(t *testing.T) {
	var tests = []struct {
		name   string
		policy mtrand.Policy
		check  func(*testing.T, float64, error)
	}{
		{
			name:   "min",
			policy: mtrand.PolicyMin,
			check: func(t *testing.T, v float64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5.0, v)
			},
		},
		{
			name:   "zero",
			policy: mtrand.PolicyZero,
			check: func(t *testing.T, v float64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, v)
			},
		},
		{
			name:   "max",
			policy: mtrand.PolicyMax,
			check: func(t *testing.T, v float64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2.0, v)
			},
		},
		{
			name:   "swap",
			policy: mtrand.PolicySwap,
			check: func(t *testing.T, v float64, err error) {
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, v, 2.0)
				assert.Less(t, v, 5.0)
			},
		},
		{
			name:   "reject",
			policy: mtrand.PolicyReject,
			check: func(t *testing.T, v float64, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "nan",
			policy: mtrand.PolicyNaN,
			check: func(t *testing.T, v float64, err error) {
				assert.NoError(t, err)
				assert.True(t, math.IsNaN(v))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := mtrand.NewWithConfig(9, mtrand.Config{
				FloatRange: test.policy,
				IntRange:   mtrand.PolicyReject,
			})
			v, err := g.Float64Range(5, 2)
			test.check(t, v, err)
		})
	}
}

func TestFloatRangeSpecialBounds(t *testing.T) {
	g := mtrand.New(3)

	v, err := g.Float64Range(math.NaN(), 1)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = g.Float64Range(0, math.Inf(1))
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = g.Float64Range(math.Inf(-1), 0)
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	// Opposite infinities pick a random sign.
	v, err = g.Float64Range(math.Inf(-1), math.Inf(1))
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v, 0))
}

func TestGeneratorResetReplaysBooleans(t *testing.T) {
	g := mtrand.New(101)
	first := make([]bool, 100)
	for i := range first {
		first[i] = g.Bool()
	}

	g.Reset()
	for i := range first {
		assert.Equal(t, first[i], g.Bool(), "bool %d after reset", i)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []mtrand.Policy{
		mtrand.PolicyMin, mtrand.PolicyZero, mtrand.PolicyMax,
		mtrand.PolicySwap, mtrand.PolicyReject, mtrand.PolicyNaN,
	} {
		got, err := mtrand.ParsePolicy(p.String())
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := mtrand.ParsePolicy("bogus")
	assert.Error(t, err)
}

func TestEntropySeed(t *testing.T) {
	seeds := make(map[uint32]bool)
	for i := 0; i < 16; i++ {
		seeds[mtrand.EntropySeed()] = true
	}
	// 16 identical draws would mean the entropy path is broken.
	assert.Greater(t, len(seeds), 1)
}
