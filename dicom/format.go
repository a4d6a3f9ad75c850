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
	"strings"
)

// FormatOptions configures the string rendering of a DataElement.
type FormatOptions struct {
	// DescriptionWidth is the width the description field is padded or truncated
	// to.
	DescriptionWidth int

	// MaxBytesToDisplay is the value length in bytes above which byte-array VRs
	// render as "Array of N bytes" instead of the value itself.
	MaxBytesToDisplay int

	// ShowVR includes the VR code just before the value.
	ShowVR bool
}

// DefaultFormatOptions is the rendering used by DataElement.String.
var DefaultFormatOptions = FormatOptions{
	DescriptionWidth:  35,
	MaxBytesToDisplay: 16,
	ShowVR:            true,
}

func (e *DataElement) String() string {
	return e.Format(DefaultFormatOptions)
}

// Format renders the element as tag, description, optional VR and a
// representation of the value.
func (e *DataElement) Format(opts FormatOptions) string {
	descrip := e.Description()
	if len(descrip) > opts.DescriptionWidth {
		descrip = descrip[:opts.DescriptionWidth]
	}
	rep := e.valueRepresentation(opts)
	if opts.ShowVR {
		return fmt.Sprintf("%s %-*s %s: %s", e.Tag, opts.DescriptionWidth, descrip, e.vr.Name, rep)
	}
	return fmt.Sprintf("%s %-*s %s", e.Tag, opts.DescriptionWidth, descrip, rep)
}

func (e *DataElement) valueRepresentation(opts FormatOptions) string {
	if displaysAsByteArray[e.vr.Name] {
		if n, ok := valueByteLength(e.value); ok && n > opts.MaxBytesToDisplay {
			return fmt.Sprintf("Array of %d bytes", n)
		}
	}

	switch v := e.value.(type) {
	case IntegerString:
		// the original text, not the parsed number
		return fmt.Sprintf("%q", v.Raw)
	case DecimalString:
		return fmt.Sprintf("%q", v.Raw)
	case []IntegerString:
		parts := make([]string, len(v))
		for i, is := range v {
			parts[i] = fmt.Sprintf("%q", is.Raw)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []DecimalString:
		parts := make([]string, len(v))
		for i, ds := range v {
			parts[i] = fmt.Sprintf("%q", ds.Raw)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case UID:
		return v.Name()
	case []UID:
		parts := make([]string, len(v))
		for i, u := range v {
			parts[i] = u.Name()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", e.value)
	}
}

// valueByteLength returns the encoded size in bytes of values that can hold
// bulk binary data.
func valueByteLength(value interface{}) (int, bool) {
	switch v := value.(type) {
	case []byte:
		return len(v), true
	case []int16:
		return 2 * len(v), true
	case []uint16:
		return 2 * len(v), true
	case []int32:
		return 4 * len(v), true
	case []uint32:
		return 4 * len(v), true
	case []float32:
		return 4 * len(v), true
	case []float64:
		return 8 * len(v), true
	}
	return 0, false
}
