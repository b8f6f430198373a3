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

import "github.com/pkg/errors"

// Policy selects the result of a bounded draw whose caller supplied
// an inverted range (minimum greater than maximum).
type Policy int

const (
	// PolicyMin returns the supplied minimum.
	PolicyMin Policy = iota
	// PolicyZero returns zero.
	PolicyZero
	// PolicyMax returns the supplied maximum.
	PolicyMax
	// PolicySwap swaps the bounds and draws normally.
	PolicySwap
	// PolicyReject reports a domain error.
	PolicyReject
	// PolicyNaN returns NaN. Floating-point draws only; integral
	// draws treat it like PolicyReject.
	PolicyNaN
)

var policyNames = [...]string{"min", "zero", "max", "swap", "reject", "nan"}

func (p Policy) String() string {
	if p < PolicyMin || p > PolicyNaN {
		return "unknown"
	}
	return policyNames[p]
}

// ParsePolicy converts a policy name as used in configuration files
// back to a Policy value.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if s == name {
			return Policy(i), nil
		}
	}
	return PolicyReject, errors.Errorf("unknown range policy %q", s)
}

// Config carries the two independently settable inverted-range
// policies. It is supplied at generator construction and never
// mutated afterwards, so behavior stays deterministic and testable
// in isolation.
type Config struct {
	// FloatRange applies to bounded floating-point draws.
	FloatRange Policy
	// IntRange applies to bounded integral draws.
	IntRange Policy
}

// DefaultConfig rejects inverted ranges on both paths.
func DefaultConfig() Config {
	return Config{FloatRange: PolicyReject, IntRange: PolicyReject}
}
