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

const backslash = "\\"

// DataElement models a DICOM Data Element as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
//
// The VR is fixed at construction; every value assignment converts the incoming
// value to the canonical typed form for that VR (see SetValue).
type DataElement struct {
	Tag DataElementTag

	// vr is the Value Representation. It never changes after construction since
	// value conversion depends on it.
	vr *VR

	// value holds the converted value in one of the shapes listed in classify.go.
	value interface{}

	// UndefinedLength records that the length field of the encoded element held
	// the undefined length sentinel (0xFFFFFFFF), as used by streamed pixel data
	// and sequences.
	UndefinedLength bool

	// SourceOffset is the byte offset in the originating stream at which the
	// value field begins, or -1 when the element did not come from a stream.
	// A stream owner can use it to rewrite the value in place.
	SourceOffset int64

	// PrivateCreator optionally identifies the private creator that reserved
	// this element's private tag block. When set, Description consults the
	// private dictionary.
	PrivateCreator string
}

// NewDataElement returns a DataElement with the given tag and VR holding the
// converted form of value. A backslash-delimited string is split into multiple
// values first for VRs that use the multi-value text convention.
func NewDataElement(tag DataElementTag, vr *VR, value interface{}) (*DataElement, error) {
	if vr == nil {
		return nil, fmt.Errorf("%v: data element requires a VR", tag)
	}
	elem := &DataElement{Tag: tag, vr: vr, SourceOffset: -1}
	if err := elem.SetValue(value); err != nil {
		return nil, err
	}
	return elem, nil
}

// VR returns the element's Value Representation.
func (e *DataElement) VR() *VR {
	return e.vr
}

// Value returns the element's converted value.
func (e *DataElement) Value() interface{} {
	return e.value
}

// SetValue replaces the element's value, re-running conversion for the
// element's VR. If the incoming value is a string and the VR follows the
// multi-value text convention, the string is split on backslashes before
// conversion and each part is converted independently.
func (e *DataElement) SetValue(value interface{}) error {
	if s, ok := value.(string); ok && e.vr.splitsValue() && strings.Contains(s, backslash) {
		value = strings.Split(s, backslash)
	}

	converted, err := convertValue(e.vr, value)
	if err != nil {
		return fmt.Errorf("converting value of %v, VR %v: %w", e.Tag, e.vr, err)
	}
	e.value = converted
	return nil
}

// VM returns the element's value multiplicity: 1 for any single value, the
// value count otherwise. It is computed from the value shape, never stored.
func (e *DataElement) VM() int {
	if n, ok := multiValueLen(e.value); ok {
		return n
	}
	return 1
}

// Item returns the i-th item of the element's Sequence value. It returns
// ErrNotSequence when the value is not a Sequence.
func (e *DataElement) Item(i int) (*DataSet, error) {
	seq, ok := e.value.(*Sequence)
	if !ok {
		return nil, fmt.Errorf("%v: %w", e.Tag, ErrNotSequence)
	}
	if i < 0 || i >= len(seq.Items) {
		return nil, fmt.Errorf("%v: sequence item %d out of range, sequence has %d items", e.Tag, i, len(seq.Items))
	}
	return seq.Items[i], nil
}

// Description returns the data dictionary name for the element's tag. Private
// tags resolve through the private dictionary when PrivateCreator is set, and
// otherwise describe themselves by their position in the private block.
func (e *DataElement) Description() string {
	return e.description(DefaultDictionary)
}

func (e *DataElement) description(dict Dictionary) string {
	if name, ok := dict.Description(e.Tag); ok {
		return name
	}
	if e.Tag.IsPrivate() {
		name := "Private tag data"
		if e.PrivateCreator != "" {
			if privateName, ok := dict.PrivateDescription(e.Tag, e.PrivateCreator); ok {
				// brackets differentiate private dictionary names, which cannot be
				// used for named access
				name = "[" + privateName + "]"
			}
		} else if e.Tag.ElementNumber()>>8 == 0 {
			name = "Private Creator"
		}
		return name
	}
	if e.Tag.IsGroupLength() {
		// implied group length of DICOM versions < 3
		return "Group Length"
	}
	return ""
}

// convertValue produces the canonical typed value for the VR. Sequences are
// wrapped idempotently, multi-values are converted per item, and all values for
// VRs other than IS, DS and UI pass through unchanged.
func convertValue(vr *VR, value interface{}) (interface{}, error) {
	if vr.kind == sequenceVR {
		switch v := value.(type) {
		case *Sequence:
			return v, nil
		case []*DataSet:
			return &Sequence{Items: v}, nil
		case nil:
			return &Sequence{}, nil
		default:
			return nil, fmt.Errorf("cannot hold %T in a sequence element: %w", value, ErrBadValue)
		}
	}

	switch v := value.(type) {
	case []string:
		return convertStrings(vr, v)
	case []interface{}:
		return convertEach(vr, v)
	case []int:
		if vr == ISVR || vr == DSVR {
			items := make([]interface{}, len(v))
			for i, n := range v {
				items[i] = n
			}
			return convertEach(vr, items)
		}
		return v, nil
	case []int64:
		if vr == ISVR {
			items := make([]interface{}, len(v))
			for i, n := range v {
				items[i] = n
			}
			return convertEach(vr, items)
		}
		return v, nil
	case []float64:
		if vr == DSVR {
			items := make([]interface{}, len(v))
			for i, f := range v {
				items[i] = f
			}
			return convertEach(vr, items)
		}
		return v, nil
	}

	return convertScalar(vr, value)
}

func convertEach(vr *VR, items []interface{}) (interface{}, error) {
	converted := make([]interface{}, len(items))
	for i, item := range items {
		c, err := convertScalar(vr, item)
		if err != nil {
			return nil, err
		}
		converted[i] = c
	}
	return converted, nil
}

func convertStrings(vr *VR, values []string) (interface{}, error) {
	switch vr {
	case ISVR:
		converted := make([]IntegerString, len(values))
		for i, s := range values {
			is, err := NewIntegerString(s)
			if err != nil {
				return nil, err
			}
			converted[i] = is
		}
		return converted, nil
	case DSVR:
		converted := make([]DecimalString, len(values))
		for i, s := range values {
			ds, err := NewDecimalString(s)
			if err != nil {
				return nil, err
			}
			converted[i] = ds
		}
		return converted, nil
	case UIVR:
		converted := make([]UID, len(values))
		for i, s := range values {
			converted[i] = UID(s)
		}
		return converted, nil
	default:
		return values, nil
	}
}

func convertScalar(vr *VR, value interface{}) (interface{}, error) {
	switch vr {
	case ISVR:
		switch v := value.(type) {
		case string:
			return NewIntegerString(v)
		case IntegerString:
			return v, nil
		case int:
			return IntegerString{Raw: fmt.Sprintf("%d", v), Value: int64(v)}, nil
		case int64:
			return IntegerString{Raw: fmt.Sprintf("%d", v), Value: v}, nil
		default:
			return nil, fmt.Errorf("cannot convert %T to integer string: %w", value, ErrBadValue)
		}
	case DSVR:
		switch v := value.(type) {
		case string:
			return NewDecimalString(v)
		case DecimalString:
			return v, nil
		case int:
			return DecimalString{Raw: fmt.Sprintf("%d", v), Value: float64(v)}, nil
		case float64:
			return DecimalString{Raw: fmt.Sprintf("%g", v), Value: v}, nil
		default:
			return nil, fmt.Errorf("cannot convert %T to decimal string: %w", value, ErrBadValue)
		}
	case UIVR:
		switch v := value.(type) {
		case string:
			return UID(v), nil
		case UID:
			return v, nil
		default:
			return nil, fmt.Errorf("cannot convert %T to UID: %w", value, ErrBadValue)
		}
	default:
		// a blank string is accepted here: a type 2 attribute of a numeric VR may
		// legitimately carry no value
		return value, nil
	}
}
