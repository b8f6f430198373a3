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

package mtrand

import (
	"encoding/binary"
	"math"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/godist-project/godist/internal"
)

// bitsPerWord is the number of boolean draws served from one cached
// word. The 32nd bit is not used; the word that refills the cache has
// already been consumed to produce the first cached bit.
const bitsPerWord = 31

// Generator derives booleans, bytes, bounded integers and bounded
// floating-point values from a Twister word source. It is safe for
// concurrent use; the only state beyond the word source is the
// boolean bit cache, guarded by its own lock.
type Generator struct {
	src *Twister
	cfg Config

	mu       sync.Mutex
	bitCache uint32
	bitCount int
}

// New returns a generator seeded with seed and the default
// inverted-range configuration.
func New(seed uint32) *Generator {
	return NewWithConfig(seed, DefaultConfig())
}

// NewWithConfig returns a generator seeded with seed using the given
// inverted-range configuration.
func NewWithConfig(seed uint32, cfg Config) *Generator {
	return &Generator{src: NewTwister(seed), cfg: cfg}
}

// NewFromEntropy returns a generator seeded from ambient system
// entropy. The resulting sequence is still fully determined by the
// drawn seed, which can be read back with Seed.
func NewFromEntropy(cfg Config) *Generator {
	return NewWithConfig(EntropySeed(), cfg)
}

// Config returns the inverted-range configuration the generator was
// built with.
func (g *Generator) Config() Config {
	return g.cfg
}

// Seed returns the seed currently applied to the word source.
func (g *Generator) Seed() uint32 {
	return g.src.Seed()
}

// Reseed rederives the generator state from seed and clears the
// boolean bit cache.
func (g *Generator) Reseed(seed uint32) {
	g.mu.Lock()
	g.bitCache = 0
	g.bitCount = 0
	g.src.Reseed(seed)
	g.mu.Unlock()
}

// Reset re-applies the current seed, replaying the output sequence
// from the beginning.
func (g *Generator) Reset() {
	g.mu.Lock()
	g.bitCache = 0
	g.bitCount = 0
	g.src.Reset()
	g.mu.Unlock()
}

// Uint32 returns the next raw tempered word.
func (g *Generator) Uint32() uint32 {
	return g.src.Uint32()
}

// Int31 returns the next word as a non-negative signed 31-bit value.
func (g *Generator) Int31() int32 {
	return int32(g.src.Uint32() >> 1)
}

// Float64 returns a uniformly distributed value in [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Int31()) / (1 << 31)
}

// BigFloat returns the same uniform draw as Float64 surfaced as a
// *big.Float, for callers that continue in arbitrary-precision
// arithmetic.
func (g *Generator) BigFloat() *big.Float {
	f := new(big.Float).SetInt64(int64(g.Int31()))
	return f.Quo(f, big.NewFloat(1<<31))
}

// Bool returns one uniformly distributed bit. Bits are served from a
// cached word which is refilled after bitsPerWord extractions.
func (g *Generator) Bool() bool {
	g.mu.Lock()
	if g.bitCount == 0 {
		g.bitCache = g.src.Uint32()
		g.bitCount = bitsPerWord
	}
	b := g.bitCache&1 == 1
	g.bitCache >>= 1
	g.bitCount--
	g.mu.Unlock()
	return b
}

// Bytes fills p with uniformly distributed bytes, four per word. A
// trailing 1-3 bytes still consume one full word. A nil buffer is a
// programming error and is reported, not retried.
func (g *Generator) Bytes(p []byte) error {
	if p == nil {
		return internal.ErrNilBuffer
	}
	i := 0
	for ; i+4 <= len(p); i += 4 {
		binary.LittleEndian.PutUint32(p[i:], g.src.Uint32())
	}
	if i < len(p) {
		w := g.src.Uint32()
		for ; i < len(p); i++ {
			p[i] = byte(w)
			w >>= 8
		}
	}
	return nil
}

// Int31Range returns a value in [min, max). An inverted range is
// resolved by the configured integral policy.
func (g *Generator) Int31Range(min, max int32) (int32, error) {
	if min > max {
		v, swapped, err := g.resolveInt(min, max)
		if !swapped {
			return v, err
		}
		min, max = max, min
	}
	span := float64(max) - float64(min)
	return int32(int64(min) + int64(g.Float64()*span)), nil
}

// Int31RangeInclusive returns a value in [min, max]. When max is the
// largest representable value, max+1 would overflow, so the draw is
// scaled from the floating primitive against max+1.0 instead.
func (g *Generator) Int31RangeInclusive(min, max int32) (int32, error) {
	if min > max {
		v, swapped, err := g.resolveInt(min, max)
		if !swapped {
			return v, err
		}
		min, max = max, min
	}
	span := float64(max) - float64(min) + 1.0
	return int32(int64(min) + int64(g.Float64()*span)), nil
}

// Uint32Range returns a value in [min, max). An inverted range is
// resolved by the configured integral policy.
func (g *Generator) Uint32Range(min, max uint32) (uint32, error) {
	if min > max {
		switch g.cfg.IntRange {
		case PolicyMin:
			return min, nil
		case PolicyZero:
			return 0, nil
		case PolicyMax:
			return max, nil
		case PolicySwap:
			min, max = max, min
		default:
			return 0, errors.Wrap(internal.ErrInvertedRange, "uint range")
		}
	}
	span := float64(max) - float64(min)
	return uint32(uint64(min) + uint64(g.Float64()*span)), nil
}

// Uint32RangeInclusive returns a value in [min, max], with the same
// top-of-domain handling as Int31RangeInclusive.
func (g *Generator) Uint32RangeInclusive(min, max uint32) (uint32, error) {
	if min > max {
		switch g.cfg.IntRange {
		case PolicyMin:
			return min, nil
		case PolicyZero:
			return 0, nil
		case PolicyMax:
			return max, nil
		case PolicySwap:
			min, max = max, min
		default:
			return 0, errors.Wrap(internal.ErrInvertedRange, "uint range")
		}
	}
	span := float64(max) - float64(min) + 1.0
	return uint32(uint64(min) + uint64(g.Float64()*span)), nil
}

// resolveInt applies the integral inverted-range policy. swapped
// reports that the caller should swap the bounds and draw normally.
func (g *Generator) resolveInt(min, max int32) (v int32, swapped bool, err error) {
	switch g.cfg.IntRange {
	case PolicyMin:
		return min, false, nil
	case PolicyZero:
		return 0, false, nil
	case PolicyMax:
		return max, false, nil
	case PolicySwap:
		return 0, true, nil
	default:
		return 0, false, errors.Wrap(internal.ErrInvertedRange, "int range")
	}
}

// Float64Range returns a value in [min, max). NaN bounds propagate
// NaN. An infinite bound is returned verbatim; opposite infinities
// pick a side at random. An inverted range is resolved by the
// configured floating policy.
func (g *Generator) Float64Range(min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return math.NaN(), nil
	}
	if min > max {
		switch g.cfg.FloatRange {
		case PolicyMin:
			return min, nil
		case PolicyZero:
			return 0, nil
		case PolicyMax:
			return max, nil
		case PolicyNaN:
			return math.NaN(), nil
		case PolicySwap:
			min, max = max, min
		default:
			return 0, errors.Wrap(internal.ErrInvertedRange, "float range")
		}
	}
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		if math.IsInf(min, -1) && math.IsInf(max, 1) {
			if g.Bool() {
				return max, nil
			}
			return min, nil
		}
		if math.IsInf(min, 0) {
			return min, nil
		}
		return max, nil
	}
	return min + g.Float64()*(max-min), nil
}
