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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godist-project/godist/mtrand"
	"github.com/godist-project/godist/sample"
)

func TestStream_Exhaustion(t *testing.T) {
	g := mtrand.New(1)
	u := sample.NewUniform(0, 1)

	stream, err := u.Samples(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, stream.Len())

	for i := 0; i < 3; i++ {
		_, ok := stream.Next()
		assert.True(t, ok)
	}
	assert.Equal(t, 0, stream.Len())

	v, ok := stream.Next()
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestStream_NegativeCount(t *testing.T) {
	g := mtrand.New(1)
	u := sample.NewUniform(0, 1)

	stream, err := u.Samples(g, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, stream.Len())
	assert.Empty(t, stream.Collect())
}

func TestStream_Lazy(t *testing.T) {
	u := sample.NewUniform(0, 1)

	g := mtrand.New(4)
	stream, err := u.Samples(g, 1000)
	require.NoError(t, err)
	first, ok := stream.Next()
	require.True(t, ok)

	// A fresh generator with the same seed must produce the same
	// first value, so building the stream cannot have consumed any
	// randomness beyond the values actually drawn.
	g2 := mtrand.New(4)
	stream2, err := u.Samples(g2, 1)
	require.NoError(t, err)
	other, ok := stream2.Next()
	require.True(t, ok)
	assert.Equal(t, first, other)
}

func TestIntStream_Floats(t *testing.T) {
	g := mtrand.New(2)
	u := sample.NewUniformInt(0, 10)

	stream, err := u.Samples(g, 50)
	require.NoError(t, err)
	vec := stream.Collect()
	require.Len(t, vec, 50)
	for _, v := range vec {
		assert.Equal(t, v, float64(int64(v)), "adapted value is not integral: %f", v)
	}
}
