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

package params

import "github.com/pkg/errors"

// Value wraps Parameters so it can be persisted as a single string
// field by any encoding that understands encoding.TextMarshaler,
// such as a JSON document. The round-trip grammar is used, so the
// stored string reconstructs the exact original value.
type Value struct {
	Parameters
}

// MarshalText renders the wrapped parameters in the round-trip
// format.
func (v Value) MarshalText() ([]byte, error) {
	if v.Parameters == nil {
		return nil, errors.New("no parameters set")
	}
	s, err := Format(v.Parameters, FormatRoundTrip)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText reconstructs the wrapped parameters from the
// round-trip format.
func (v *Value) UnmarshalText(b []byte) error {
	p, err := ParseExact(string(b), FormatRoundTrip)
	if err != nil {
		return err
	}
	v.Parameters = p
	return nil
}
