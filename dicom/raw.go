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
	"encoding/binary"
	"fmt"
)

// RawDataElement is a Data Element as read directly off a stream, before its
// value bytes have been decoded. A stream reader produces RawDataElements; each
// is consumed exactly once by DataElementFromRaw. The fields are never mutated
// after construction.
type RawDataElement struct {
	Tag DataElementTag

	// VR read from the stream, nil when the stream uses the implicit VR
	// encoding and carries no VR.
	VR *VR

	// Length is the value of the encoded length field. Can be the undefined
	// length sentinel 0xFFFFFFFF.
	Length uint32

	// Value holds the undecoded value field bytes.
	Value []byte

	// ValueOffset is the byte offset in the stream at which the value field
	// begins.
	ValueOffset int64

	// ImplicitVR and LittleEndian record the encoding of the stream the record
	// was read from.
	ImplicitVR   bool
	LittleEndian bool
}

func (r *RawDataElement) byteOrder() binary.ByteOrder {
	if r.ImplicitVR || r.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// resolveVR determines the VR of a raw element. An explicit VR from the stream
// wins; otherwise the dictionary is consulted. Tags unknown to the dictionary
// resolve to OB when private (the bytes can be read but not interpreted) and to
// UL for group length markers; anything else is an error wrapping
// ErrUnresolvableVR.
func resolveVR(tag DataElementTag, explicit *VR, dict Dictionary) (*VR, error) {
	if explicit != nil {
		return explicit, nil
	}
	if vr, ok := dict.VR(tag); ok {
		return vr, nil
	}
	if tag.IsPrivate() {
		return OBVR, nil
	}
	if tag.IsGroupLength() {
		return ULVR, nil
	}
	return nil, fmt.Errorf("unknown tag %v: %w", tag, ErrUnresolvableVR)
}

// DataElementFromRaw converts a raw element into a typed DataElement using the
// default dictionary and decoder.
func DataElementFromRaw(raw *RawDataElement) (*DataElement, error) {
	return defaultDecoder.DataElementFromRaw(raw, DefaultDictionary)
}

// DataElementFromRaw converts a raw element into a typed DataElement: the VR is
// resolved, the value bytes are decoded, and the element is constructed with
// the raw record's value offset and undefined length flag.
func (d *Decoder) DataElementFromRaw(raw *RawDataElement, dict Dictionary) (*DataElement, error) {
	vr, err := resolveVR(raw.Tag, raw.VR, dict)
	if err != nil {
		return nil, err
	}

	value, err := d.Decode(vr, raw)
	if err != nil {
		return nil, fmt.Errorf("decoding value of tag %v: %w", raw.Tag, err)
	}

	elem, err := NewDataElement(raw.Tag, vr, value)
	if err != nil {
		return nil, err
	}
	elem.SourceOffset = raw.ValueOffset
	elem.UndefinedLength = raw.Length == UndefinedLength

	return elem, nil
}
