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

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/godist-project/godist/internal"
)

// Parse interprets text, trying the general grammar first and the
// round-trip grammar second. When neither matches, the failure is
// reported as a single malformed-parameters error.
func Parse(text string) (Parameters, error) {
	if p, ok := TryParseExact(text, FormatGeneral); ok {
		return p, nil
	}
	if p, ok := TryParseExact(text, FormatRoundTrip); ok {
		return p, nil
	}
	return nil, errors.Wrapf(internal.ErrMalformedParams, "parse %q", text)
}

// ParseExact interprets text in the one requested format.
func ParseExact(text, format string) (Parameters, error) {
	if p, ok := TryParseExact(text, format); ok {
		return p, nil
	}
	return nil, errors.Wrapf(internal.ErrMalformedParams, "parse %q as %q", text, format)
}

// TryParse reports whether text matched either grammar. On failure
// the returned value is a usable default distribution, never nil.
func TryParse(text string) (Parameters, bool) {
	p, err := Parse(text)
	if err != nil {
		return fallbackParameters(), false
	}
	return p, true
}

// TryParseExact is the boolean-reporting variant of ParseExact.
func TryParseExact(text, format string) (Parameters, bool) {
	var p Parameters
	var err error
	switch format {
	case FormatRoundTrip:
		p, err = parseRoundTrip(text)
	case FormatGeneral, "":
		p, err = parseGeneral(text)
	default:
		err = errors.Errorf("unknown parameter format %q", format)
	}
	if err != nil {
		return fallbackParameters(), false
	}
	return p, true
}

// fallbackParameters is the distribution substituted when a Try*
// entry point fails.
func fallbackParameters() Parameters {
	return NewUniform()
}

// parseRoundTrip scans
// <kind>:<min>;<max>:<p0>[;p1...]:<precision-or-empty>.
func parseRoundTrip(text string) (Parameters, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 4 {
		return nil, errors.Errorf("want 4 fields, got %d", len(parts))
	}

	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, errors.Wrap(err, "kind index")
	}
	if idx < 0 || idx >= int(numKinds) {
		return nil, errors.Errorf("kind index %d out of range", idx)
	}

	bounds := strings.Split(parts[1], ";")
	if len(bounds) != 2 {
		return nil, errors.New("want two bounds")
	}
	c := NewClip()
	if c.Min, err = parseFloatToken(bounds[0]); err != nil {
		return nil, errors.Wrap(err, "minimum")
	}
	if c.Max, err = parseFloatToken(bounds[1]); err != nil {
		return nil, errors.Wrap(err, "maximum")
	}

	var shape []float64
	if parts[2] != "" {
		for _, tok := range strings.Split(parts[2], ";") {
			v, err := parseFloatToken(tok)
			if err != nil {
				return nil, errors.Wrap(err, "shape parameter")
			}
			shape = append(shape, v)
		}
	}

	if parts[3] != "" {
		n, err := strconv.Atoi(parts[3])
		if err != nil || n < 0 {
			return nil, errors.Errorf("bad precision %q", parts[3])
		}
		c.Precision = n
	}

	return build(Kind(idx), c, shape)
}

// parseGeneral scans
// <KindName> distribution (<min>;<max>) [<p0>;...] r:<precision>
// with each group optional.
func parseGeneral(text string) (Parameters, error) {
	const marker = " distribution"

	s := strings.TrimSpace(text)
	i := strings.Index(s, marker)
	if i <= 0 {
		return nil, errors.New("missing distribution marker")
	}
	kind, err := kindFromName(s[:i])
	if err != nil {
		return nil, err
	}
	rest := strings.TrimSpace(s[i+len(marker):])

	c := NewClip()
	if strings.HasPrefix(rest, "(") {
		j := strings.IndexByte(rest, ')')
		if j < 0 {
			return nil, errors.New("unterminated bounds group")
		}
		halves := strings.Split(rest[1:j], ";")
		if len(halves) != 2 {
			return nil, errors.New("want two bounds")
		}
		if c.Min, err = parseFloatToken(halves[0]); err != nil {
			return nil, errors.Wrap(err, "minimum")
		}
		if c.Max, err = parseFloatToken(halves[1]); err != nil {
			return nil, errors.Wrap(err, "maximum")
		}
		rest = strings.TrimSpace(rest[j+1:])
	}

	var shape []float64
	if strings.HasPrefix(rest, "[") {
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			return nil, errors.New("unterminated parameter group")
		}
		for _, tok := range strings.Split(rest[1:j], ";") {
			v, err := parseFloatToken(tok)
			if err != nil {
				return nil, errors.Wrap(err, "shape parameter")
			}
			shape = append(shape, v)
		}
		rest = strings.TrimSpace(rest[j+1:])
	}

	if strings.HasPrefix(rest, "r:") {
		n, err := strconv.Atoi(strings.TrimSpace(rest[2:]))
		if err != nil || n < 0 {
			return nil, errors.Errorf("bad precision %q", rest[2:])
		}
		c.Precision = n
		rest = ""
	}

	if rest != "" {
		return nil, errors.Errorf("trailing input %q", rest)
	}
	return build(kind, c, shape)
}

// build assembles a Parameters value for kind, validating the
// kind-specific parameter count. Constructors re-establish the shape
// invariants (clamped sigma/lambda, normalized weights).
func build(kind Kind, c Clip, shape []float64) (Parameters, error) {
	switch kind {
	case KindUniform, KindDiscreteUniform:
		if len(shape) != 0 {
			return nil, errors.Errorf("%v takes no parameters", kind)
		}
		if kind == KindUniform {
			p := NewUniform()
			p.Clip = c
			return p, nil
		}
		p := NewDiscreteUniform()
		p.Clip = c
		return p, nil

	case KindBinomial:
		if len(shape) != 2 {
			return nil, errors.Errorf("%v takes 2 parameters", kind)
		}
		if math.IsNaN(shape[0]) || math.IsInf(shape[0], 0) {
			return nil, errors.New("trial count must be finite")
		}
		p := NewBinomial(int(shape[0]), shape[1])
		p.Clip = c
		return p, nil

	case KindCategorical:
		if len(shape) == 0 {
			return nil, errors.Errorf("%v takes at least 1 parameter", kind)
		}
		p, err := NewCategorical(shape)
		if err != nil {
			return nil, err
		}
		p.Clip = c
		return p, nil

	case KindExponential:
		if len(shape) != 1 {
			return nil, errors.Errorf("%v takes 1 parameter", kind)
		}
		p := NewExponential(shape[0])
		p.Clip = c
		return p, nil

	case KindLogistic, KindLogNormal, KindNormal, KindPositiveNormal:
		if len(shape) != 2 {
			return nil, errors.Errorf("%v takes 2 parameters", kind)
		}
		switch kind {
		case KindLogistic:
			p := NewLogistic(shape[0], shape[1])
			p.Clip = c
			return p, nil
		case KindLogNormal:
			p := NewLogNormal(shape[0], shape[1])
			p.Clip = c
			return p, nil
		case KindNormal:
			p := NewNormal(shape[0], shape[1])
			p.Clip = c
			return p, nil
		default:
			p := NewPositiveNormal(shape[0], shape[1])
			p.Clip = c
			return p, nil
		}
	}
	return nil, errors.Errorf("unhandled kind %v", kind)
}

func kindFromName(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, errors.Errorf("unknown distribution name %q", name)
}

func parseFloatToken(s string) (float64, error) {
	switch strings.TrimSpace(s) {
	case posInfToken:
		return math.Inf(1), nil
	case negInfToken:
		return math.Inf(-1), nil
	case nanToken:
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
