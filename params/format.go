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
)

// Format identifiers accepted by Format, ParseExact and
// TryParseExact.
const (
	// FormatGeneral is the human-readable display form. It renders
	// numbers with two decimal places and does not guarantee exact
	// numeric round-trips.
	FormatGeneral = "g"
	// FormatRoundTrip is the lossless interchange form. It renders
	// every float with enough digits to reconstruct the exact bit
	// pattern and is byte-identical across systems for the same
	// value.
	FormatRoundTrip = "r"
)

const (
	posInfToken = "Infinity"
	negInfToken = "-Infinity"
	nanToken    = "NaN"
)

// Format renders p in the requested format. An empty format defaults
// to the general form.
func Format(p Parameters, format string) (string, error) {
	switch format {
	case FormatRoundTrip:
		return formatRoundTrip(p), nil
	case FormatGeneral, "":
		return formatGeneral(p), nil
	}
	return "", errors.Errorf("unknown parameter format %q", format)
}

// formatRoundTrip renders
// <kind>:<min>;<max>:<p0>[;p1...]:<precision-or-empty>.
func formatRoundTrip(p Parameters) string {
	c := p.Bounds()

	var b strings.Builder
	b.WriteString(strconv.Itoa(int(p.Kind())))
	b.WriteByte(':')
	b.WriteString(exactFloat(c.Min))
	b.WriteByte(';')
	b.WriteString(exactFloat(c.Max))
	b.WriteByte(':')
	for i, v := range p.shape() {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(exactFloat(v))
	}
	b.WriteByte(':')
	if c.Precision != NoPrecision {
		b.WriteString(strconv.Itoa(c.Precision))
	}
	return b.String()
}

// formatGeneral renders
// <KindName> distribution (<min>;<max>) [<p0>;...] r:<precision>,
// omitting each group that is absent.
func formatGeneral(p Parameters) string {
	c := p.Bounds()

	var b strings.Builder
	b.WriteString(p.Kind().String())
	b.WriteString(" distribution")
	if !math.IsInf(c.Min, -1) || !math.IsInf(c.Max, 1) {
		b.WriteString(" (")
		b.WriteString(displayFloat(c.Min))
		b.WriteByte(';')
		b.WriteString(displayFloat(c.Max))
		b.WriteByte(')')
	}
	if shape := p.shape(); len(shape) > 0 {
		b.WriteString(" [")
		for i, v := range shape {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(displayFloat(v))
		}
		b.WriteByte(']')
	}
	if c.Precision != NoPrecision {
		b.WriteString(" r:")
		b.WriteString(strconv.Itoa(c.Precision))
	}
	return b.String()
}

// exactFloat renders v with shortest-round-trip precision using a
// fixed decimal convention, independent of any locale.
func exactFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return posInfToken
	case math.IsInf(v, -1):
		return negInfToken
	case math.IsNaN(v):
		return nanToken
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// displayFloat renders v with two decimal places for human
// consumption.
func displayFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return posInfToken
	case math.IsInf(v, -1):
		return negInfToken
	case math.IsNaN(v):
		return nanToken
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
