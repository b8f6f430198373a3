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

// Stream is a lazy, finite, forward-only sequence of float64
// samples. Values are drawn from the underlying generator one at a
// time as the stream is consumed, so a stream cannot be enumerated
// twice: a fresh call to Samples (after resetting the generator, if
// the same values are wanted) is required to reconsume.
type Stream struct {
	remaining int
	next      func() float64
}

func newStream(count int, next func() float64) *Stream {
	if count < 0 {
		count = 0
	}
	return &Stream{remaining: count, next: next}
}

func constStream(count int, v float64) *Stream {
	return newStream(count, func() float64 { return v })
}

// Next returns the next sample. ok is false once the stream is
// exhausted.
func (s *Stream) Next() (v float64, ok bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	s.remaining--
	return s.next(), true
}

// Len returns the number of samples not yet drawn.
func (s *Stream) Len() int {
	return s.remaining
}

// Collect drains the stream into a slice.
func (s *Stream) Collect() []float64 {
	out := make([]float64, 0, s.remaining)
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// IntStream is the integer counterpart of Stream, used by the
// discrete samplers.
type IntStream struct {
	remaining int
	next      func() int
}

func newIntStream(count int, next func() int) *IntStream {
	if count < 0 {
		count = 0
	}
	return &IntStream{remaining: count, next: next}
}

func constIntStream(count, v int) *IntStream {
	return newIntStream(count, func() int { return v })
}

// Next returns the next sample. ok is false once the stream is
// exhausted.
func (s *IntStream) Next() (v int, ok bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	s.remaining--
	return s.next(), true
}

// Len returns the number of samples not yet drawn.
func (s *IntStream) Len() int {
	return s.remaining
}

// Collect drains the stream into a slice.
func (s *IntStream) Collect() []int {
	out := make([]int, 0, s.remaining)
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Floats adapts the integer stream to a float64 stream, consuming
// the same underlying draws.
func (s *IntStream) Floats() *Stream {
	return newStream(s.remaining, func() float64 {
		n, _ := s.Next()
		return float64(n)
	})
}
