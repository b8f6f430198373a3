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
	"sort"

	"github.com/godist-project/godist/data"
	"github.com/godist-project/godist/mtrand"
)

// Categorical samples category indices 0..n-1 with probabilities
// proportional to the supplied weights.
type Categorical struct {
	weights data.Vector
	cdf     data.Vector
}

// NewCategorical returns an instance of the Categorical sampler.
// Negative weights are clamped to zero and the vector is normalized;
// absent or empty weights default to three equal categories. A total
// weight of nearly zero is an error.
func NewCategorical(weights []float64) (*Categorical, error) {
	v := data.NewVector(weights)
	if len(v) == 0 {
		v = data.NewConstantVector(3, 1)
	}
	normalized, err := v.Normalized()
	if err != nil {
		return nil, err
	}
	return &Categorical{
		weights: normalized,
		cdf:     normalized.Cumulative(),
	}, nil
}

// Weights returns a copy of the normalized weights.
func (c *Categorical) Weights() data.Vector {
	return c.weights.Copy()
}

// Properties treats the category index as the random variable's
// value. The mode lists every index of maximal weight.
func (c *Categorical) Properties() Properties {
	mean := 0.0
	meanSq := 0.0
	best := c.weights[0]
	for i, w := range c.weights {
		mean += float64(i) * w
		meanSq += float64(i) * float64(i) * w
		if w > best {
			best = w
		}
	}

	var mode []float64
	for i, w := range c.weights {
		if w == best {
			mode = append(mode, float64(i))
		}
	}

	median := 0.0
	for i, cum := range c.cdf {
		if cum >= 0.5 {
			median = float64(i)
			break
		}
	}

	return Properties{
		Minimum:  0,
		Maximum:  float64(len(c.weights) - 1),
		Mean:     mean,
		Median:   median,
		Mode:     mode,
		Variance: meanSq - mean*mean,
	}
}

// SamplesInt returns a stream of category indices. Each draw binary
// searches the cumulative weights for the first entry that is
// greater than or equal to the uniform draw; an exact match is a hit
// at that index.
func (c *Categorical) SamplesInt(g *mtrand.Generator, count int) (*IntStream, error) {
	return newIntStream(count, func() int {
		idx := sort.SearchFloat64s([]float64(c.cdf), g.Float64())
		if idx >= len(c.cdf) {
			// Rounding can leave the last cumulative value a hair
			// below one.
			idx = len(c.cdf) - 1
		}
		return idx
	}), nil
}

// Samples returns the same draws as SamplesInt widened to float64.
func (c *Categorical) Samples(g *mtrand.Generator, count int) (*Stream, error) {
	ints, err := c.SamplesInt(g, count)
	if err != nil {
		return nil, err
	}
	return ints.Floats(), nil
}
