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
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
)

// Decoder turns the undecoded value bytes of a RawDataElement into the typed
// value for a VR. A decoded single value is returned as a scalar; multiple
// values are returned as a slice.
//
// Decoding of VR SQ is not supported: parsing the nested datasets of a
// sequence requires the surrounding stream reader, which hands sequences over
// already parsed.
type Decoder struct {
	// Repertoire decodes the bytes of text value fields. Nil means the default
	// character repertoire (Windows-1252).
	Repertoire encoding.Encoding
}

var defaultDecoder = &Decoder{}

func (d *Decoder) repertoire() encoding.Encoding {
	if d.Repertoire != nil {
		return d.Repertoire
	}
	return defaultCharacterRepertoire
}

// Decode returns the typed value encoded by the raw record's value bytes,
// interpreted as the given VR. It returns an error wrapping ErrUnsupported for
// VR and transfer syntax combinations this decoder cannot handle.
func (d *Decoder) Decode(vr *VR, raw *RawDataElement) (interface{}, error) {
	switch vr.kind {
	case textVR:
		return d.decodeText(raw, vr, unicode.IsSpace)
	case uniqueIdentifierVR:
		// UI values are null padded
		return d.decodeText(raw, vr, func(r rune) bool {
			return r == 0x00 || r == ' '
		})
	case numberBinaryVR:
		return decodeNumberBinary(vr, raw)
	case bulkDataVR:
		return d.decodeBulkData(vr, raw)
	case tagVR:
		return decodeTags(raw)
	case sequenceVR:
		return nil, fmt.Errorf("decoding a sequence from raw bytes: %w", ErrUnsupported)
	default:
		return nil, fmt.Errorf("unknown vr type %v: %w", vr.kind, ErrUnsupported)
	}
}

// decodeText decodes a text value field through the character repertoire and
// trims padding. The string is not split on backslashes here: multi-value
// splitting is a property of the element's VR and happens on value assignment.
func (d *Decoder) decodeText(raw *RawDataElement, vr *VR, isPadding func(rune) bool) (string, error) {
	if len(raw.Value) == 0 {
		return "", nil
	}

	decoded, err := d.repertoire().NewDecoder().Bytes(raw.Value)
	if err != nil {
		return "", fmt.Errorf("decoding text value field: %v", err)
	}

	s := string(decoded)
	if vr == UTVR || vr == STVR || vr == LTVR {
		// a single block of text, leading spaces are significant
		return strings.TrimRightFunc(s, isPadding), nil
	}
	return strings.TrimFunc(s, isPadding), nil
}

func decodeNumberBinary(vr *VR, raw *RawDataElement) (interface{}, error) {
	var data interface{}
	var width int

	switch vr {
	case SSVR:
		width = 2
		data = make([]int16, len(raw.Value)/2)
	case USVR, USSSVR:
		// combined US/SS codes decode as unsigned without the pixel
		// representation element to disambiguate them
		width = 2
		data = make([]uint16, len(raw.Value)/2)
	case SLVR:
		width = 4
		data = make([]int32, len(raw.Value)/4)
	case ULVR:
		width = 4
		data = make([]uint32, len(raw.Value)/4)
	case FLVR:
		width = 4
		data = make([]float32, len(raw.Value)/4)
	case FDVR:
		width = 8
		data = make([]float64, len(raw.Value)/8)
	default:
		return nil, fmt.Errorf("binary decode of vr %v: %w", vr, ErrUnsupported)
	}

	if len(raw.Value)%width != 0 {
		return nil, fmt.Errorf("value field length %d is not a multiple of %d for vr %v", len(raw.Value), width, vr)
	}

	if err := binary.Read(bytes.NewReader(raw.Value), raw.byteOrder(), data); err != nil {
		return nil, fmt.Errorf("reading binary numbers: %v", err)
	}

	return collapseSingleton(data), nil
}

func (d *Decoder) decodeBulkData(vr *VR, raw *RawDataElement) (interface{}, error) {
	switch vr {
	case UCVR:
		// UC may be padded with trailing spaces and uses backslash delimiters
		return d.decodeText(raw, vr, unicode.IsSpace)
	case URVR, UTVR:
		// backslash is not a delimiter for UR and UT
		return d.decodeText(raw, UTVR, unicode.IsSpace)
	case OLVR:
		return decodeNumberBinary(ULVR, raw)
	case ODVR:
		return decodeNumberBinary(FDVR, raw)
	case OFVR:
		return decodeNumberBinary(FLVR, raw)
	default:
		// OB, OW, UN and the combined codes stay opaque bytes
		buff := make([]byte, len(raw.Value))
		copy(buff, raw.Value)
		return buff, nil
	}
}

func decodeTags(raw *RawDataElement) ([]DataElementTag, error) {
	if len(raw.Value)%4 != 0 {
		return nil, fmt.Errorf("value field length %d is not a multiple of 4 for vr AT", len(raw.Value))
	}

	dr := newDcmReader(bytes.NewReader(raw.Value))
	tags := make([]DataElementTag, len(raw.Value)/4)
	for i := range tags {
		t, err := dr.Tag(raw.byteOrder())
		if err != nil {
			return nil, fmt.Errorf("reading tag value: %v", err)
		}
		tags[i] = t
	}
	return tags, nil
}

// collapseSingleton unwraps a slice of exactly one number so that single
// values are scalars and VM falls out of the value shape.
func collapseSingleton(data interface{}) interface{} {
	switch v := data.(type) {
	case []int16:
		if len(v) == 1 {
			return v[0]
		}
	case []uint16:
		if len(v) == 1 {
			return v[0]
		}
	case []int32:
		if len(v) == 1 {
			return v[0]
		}
	case []uint32:
		if len(v) == 1 {
			return v[0]
		}
	case []float32:
		if len(v) == 1 {
			return v[0]
		}
	case []float64:
		if len(v) == 1 {
			return v[0]
		}
	}
	return data
}
