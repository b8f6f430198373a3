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

// Package params describes distribution parameters and their textual
// encodings.
//
// A Parameters value is a tagged union over the nine supported
// distribution kinds; each kind carries only the shape fields that
// apply to it, plus shared optional clipping bounds and a rounding
// precision. Two string grammars are provided: a lossless
// "round-trip" form for persistence and interchange, and a
// human-readable "general" form for display. The package has no
// dependency on the generator or the samplers.
package params
