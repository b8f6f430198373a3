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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Every sampler consumes uniform draws from an mtrand.Generator and
// exposes two queries: Properties, the closed-form moments of the
// distribution, and Samples, a lazy forward-only stream of values.
// Samplers hold no mutable state of their own; the generator passed
// to Samples is the only shared resource, and its locking is handled
// at the generator layer. Resetting the generator's seed and calling
// Samples again reproduces the exact same sequence.
package sample
