// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import "strings"

// ColorSpace is the encoding of the channels of a buffer.
type ColorSpace uint

// Color spaces supported by buffers.
const (
	SRGB ColorSpace = iota
	LRGB
	XYZ
	LAB
	LCH
	Y
	L
)

// String returns the tag of the color space.
// The tag is used in mangled names and in the names of conversion functions.
func (cs ColorSpace) String() string {
	switch cs {
	case SRGB:
		return "SRGB"
	case LRGB:
		return "LRGB"
	case XYZ:
		return "XYZ"
	case LAB:
		return "LAB"
	case LCH:
		return "LCH"
	case Y:
		return "Y"
	case L:
		return "L"
	}
	return "INVALID"
}

// Channels returns the number of channels of a pixel in the color space.
func (cs ColorSpace) Channels() int {
	if cs == Y || cs == L {
		return 1
	}
	return 3
}

// ColorSpaceFromString returns a color space given its tag, case insensitive.
func ColorSpaceFromString(s string) (ColorSpace, bool) {
	for cs := SRGB; cs <= L; cs++ {
		if strings.EqualFold(cs.String(), s) {
			return cs, true
		}
	}
	return 0, false
}

// Conversion returns the name of the runtime function converting from one color space to another.
func Conversion(from, to ColorSpace) string {
	return from.String() + "to" + to.String()
}

// ParseConversion returns the color spaces of a runtime conversion function
// given its name. Names are case sensitive: SRGBtoXYZ is a conversion, srgbtoxyz is not.
func ParseConversion(name string) (from, to ColorSpace, ok bool) {
	for from := SRGB; from <= L; from++ {
		rest, found := strings.CutPrefix(name, from.String()+"to")
		if !found {
			continue
		}
		for to := SRGB; to <= L; to++ {
			if rest == to.String() {
				return from, to, true
			}
		}
	}
	return 0, 0, false
}
