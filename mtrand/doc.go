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

// Package mtrand implements a seedable, deterministic pseudo-random
// generator built on the 32-bit Mersenne Twister, together with a
// derivation layer that turns raw words into booleans, bytes, bounded
// integers and bounded floating-point values.
//
// The generator is statistically strong but not suitable for
// cryptographic use. Identical seeds and identical call sequences
// reproduce identical outputs across processes and platforms, which
// makes the package a building block for replayable simulations and
// for the sampler family in package sample.
package mtrand
