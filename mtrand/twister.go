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

import "sync"

const (
	stateLen   = 624
	stateMid   = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
	seedMult   = 1812433253
)

// Twister is a 32-bit Mersenne Twister word source. Every 32-bit
// value is a valid seed, including zero. A Twister is safe for use
// by multiple goroutines; the lock is held only while the state
// array is read or rewritten.
type Twister struct {
	mu    sync.Mutex
	seed  uint32
	state [stateLen]uint32
	index int
}

// NewTwister returns a Twister seeded with seed.
func NewTwister(seed uint32) *Twister {
	t := &Twister{}
	t.Reseed(seed)
	return t
}

// Reseed rederives the whole state array from seed and positions the
// cursor so that the next draw regenerates a fresh block.
func (t *Twister) Reseed(seed uint32) {
	t.mu.Lock()
	t.seed = seed
	t.apply(seed)
	t.mu.Unlock()
}

// Reset re-applies the current seed, replaying the output sequence
// from the beginning.
func (t *Twister) Reset() {
	t.mu.Lock()
	t.apply(t.seed)
	t.mu.Unlock()
}

// Seed returns the seed the state was last derived from.
func (t *Twister) Seed() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seed
}

func (t *Twister) apply(seed uint32) {
	t.state[0] = seed
	for i := 1; i < stateLen; i++ {
		prev := t.state[i-1]
		t.state[i] = seedMult*(prev^(prev>>30)) + uint32(i)
	}
	t.index = stateLen
}

// Uint32 produces the next tempered word. When the cursor reaches
// the end of the state array the whole array is regenerated in place
// before any word is served from it.
func (t *Twister) Uint32() uint32 {
	t.mu.Lock()
	if t.index >= stateLen {
		t.regenerate()
	}
	y := t.state[t.index]
	t.index++
	t.mu.Unlock()

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// regenerate rewrites the state array with two wrap-around passes,
// mixing word i with word i+stateMid mod stateLen. Callers must hold
// the lock.
func (t *Twister) regenerate() {
	mag := [2]uint32{0, matrixA}
	var kk int
	for kk = 0; kk < stateLen-stateMid; kk++ {
		y := (t.state[kk] & upperMask) | (t.state[kk+1] & lowerMask)
		t.state[kk] = t.state[kk+stateMid] ^ (y >> 1) ^ mag[y&1]
	}
	for ; kk < stateLen-1; kk++ {
		y := (t.state[kk] & upperMask) | (t.state[kk+1] & lowerMask)
		t.state[kk] = t.state[kk+stateMid-stateLen] ^ (y >> 1) ^ mag[y&1]
	}
	y := (t.state[stateLen-1] & upperMask) | (t.state[0] & lowerMask)
	t.state[stateLen-1] = t.state[stateMid-1] ^ (y >> 1) ^ mag[y&1]
	t.index = 0
}
