// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"fmt"
	"strconv"
	"strings"
)

// IntegerString is the typed value for VR IS: an integer encoded as text.
// The original text is preserved so that writing or displaying the value
// reproduces the input exactly.
//
// An IS value field may legitimately be empty (a type 2 attribute with no
// value). An empty IntegerString has empty Raw, zero Value, and IsEmpty true;
// it is not an error.
type IntegerString struct {
	// Raw is the original text, including any surrounding spaces.
	Raw string

	// Value is the parsed integer, zero when IsEmpty.
	Value int64
}

// NewIntegerString parses s as a DICOM integer string.
func NewIntegerString(s string) (IntegerString, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return IntegerString{Raw: s}, nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return IntegerString{}, fmt.Errorf("parsing integer string %q: %w", s, ErrBadValue)
	}
	return IntegerString{Raw: s, Value: n}, nil
}

// IsEmpty reports whether the value field held no value.
func (is IntegerString) IsEmpty() bool {
	return strings.TrimSpace(is.Raw) == ""
}

func (is IntegerString) String() string {
	return is.Raw
}

// DecimalString is the typed value for VR DS: a fixed point or floating point
// number encoded as text, with the original text preserved for display.
type DecimalString struct {
	// Raw is the original text, including any surrounding spaces.
	Raw string

	// Value is the parsed number, zero when IsEmpty.
	Value float64
}

// NewDecimalString parses s as a DICOM decimal string.
func NewDecimalString(s string) (DecimalString, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DecimalString{Raw: s}, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return DecimalString{}, fmt.Errorf("parsing decimal string %q: %w", s, ErrBadValue)
	}
	return DecimalString{Raw: s, Value: f}, nil
}

// IsEmpty reports whether the value field held no value.
func (ds DecimalString) IsEmpty() bool {
	return strings.TrimSpace(ds.Raw) == ""
}

func (ds DecimalString) String() string {
	return ds.Raw
}
