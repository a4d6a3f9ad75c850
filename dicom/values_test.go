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
	"errors"
	"reflect"
	"testing"
)

func explicitRaw(tag DataElementTag, vr *VR, value []byte) *RawDataElement {
	return &RawDataElement{
		Tag:          tag,
		VR:           vr,
		Length:       uint32(len(value)),
		Value:        value,
		LittleEndian: true,
	}
}

func TestDecoder_Decode_text(t *testing.T) {
	tests := []struct {
		name string
		vr   *VR
		in   []byte
		want interface{}
	}{
		{
			"space padding is trimmed",
			PNVR,
			[]byte("Doe^John "),
			"Doe^John",
		},
		{
			"UI null padding is trimmed",
			UIVR,
			[]byte("1.2.840.10008.1.2\x00"),
			"1.2.840.10008.1.2",
		},
		{
			"UT keeps leading spaces and trims trailing ones",
			UTVR,
			[]byte("  indented text  "),
			"  indented text",
		},
		{
			"backslashes are not interpreted by the decoder",
			CSVR,
			[]byte("ORIGINAL\\PRIMARY"),
			"ORIGINAL\\PRIMARY",
		},
		{
			"empty value field",
			LOVR,
			[]byte{},
			"",
		},
		{
			"bytes decode through the default character repertoire",
			LOVR,
			[]byte{0xE9, 0x74, 0xE9},
			"été",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := defaultDecoder.Decode(tc.vr, explicitRaw(PatientNameTag, tc.vr, tc.in))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestDecoder_Decode_numbers(t *testing.T) {
	tests := []struct {
		name string
		vr   *VR
		raw  *RawDataElement
		want interface{}
	}{
		{
			"single US collapses to a scalar",
			USVR,
			explicitRaw(RowsTag, USVR, []byte{0x00, 0x02}),
			uint16(512),
		},
		{
			"multiple US stay a slice",
			USVR,
			explicitRaw(RowsTag, USVR, []byte{0x01, 0x00, 0x02, 0x00}),
			[]uint16{1, 2},
		},
		{
			"big endian byte order is honored",
			USVR,
			&RawDataElement{Tag: RowsTag, VR: USVR, Length: 2, Value: []byte{0x02, 0x00}},
			uint16(512),
		},
		{
			"combined US/SS codes decode as unsigned",
			USSSVR,
			explicitRaw(SmallestImagePixelValueTag, USSSVR, []byte{0xFF, 0xFF}),
			uint16(0xFFFF),
		},
		{
			"SS decodes as signed",
			SSVR,
			explicitRaw(SmallestImagePixelValueTag, SSVR, []byte{0xFF, 0xFF}),
			int16(-1),
		},
		{
			"UL",
			ULVR,
			explicitRaw(FileMetaInformationGroupLengthTag, ULVR, []byte{0xC6, 0x00, 0x00, 0x00}),
			uint32(198),
		},
		{
			"FD",
			FDVR,
			explicitRaw(SliceThicknessTag, FDVR, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}),
			float64(1.0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := defaultDecoder.Decode(tc.vr, tc.raw)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestDecoder_Decode_numberLengthMismatch(t *testing.T) {
	raw := explicitRaw(RowsTag, USVR, []byte{0x01})
	if _, err := defaultDecoder.Decode(USVR, raw); err == nil {
		t.Fatalf("expected error for odd length US value field")
	}
}

func TestDecoder_Decode_tags(t *testing.T) {
	raw := explicitRaw(DataElementTag(0x00209165), ATVR, []byte{0x28, 0x00, 0x10, 0x00, 0x28, 0x00, 0x11, 0x00})
	got, err := defaultDecoder.Decode(ATVR, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []DataElementTag{RowsTag, ColumnsTag}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecoder_Decode_bulkData(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	raw := explicitRaw(PixelDataTag, OBVR, in)
	got, err := defaultDecoder.Decode(OBVR, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	buff, ok := got.([]byte)
	if !ok || !reflect.DeepEqual(buff, in) {
		t.Fatalf("got %#v, want %v", got, in)
	}

	// the decoded value must be an independent copy
	buff[0] = 0xFF
	if raw.Value[0] != 1 {
		t.Fatalf("decoded bulk data aliases the raw value field")
	}
}

func TestDecoder_characterRepertoire(t *testing.T) {
	repertoire, err := CharacterRepertoire("ISO_IR 192")
	if err != nil {
		t.Fatalf("CharacterRepertoire: %v", err)
	}
	d := &Decoder{Repertoire: repertoire}

	in := []byte{0x4D, 0xC3, 0xBC, 0x6C, 0x6C, 0x65, 0x72}
	got, err := d.Decode(PNVR, explicitRaw(PatientNameTag, PNVR, in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "Müller" {
		t.Fatalf("got %#v, want %q", got, "Müller")
	}
}

func TestCharacterRepertoire_unknownTerm(t *testing.T) {
	if _, err := CharacterRepertoire("ISO_IR 9000"); err == nil {
		t.Fatalf("expected error for unknown defined term")
	}
}

func TestDecoder_Decode_sequenceUnsupported(t *testing.T) {
	raw := explicitRaw(ReferencedStudySequenceTag, SQVR, []byte{})
	if _, err := defaultDecoder.Decode(SQVR, raw); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected error wrapping ErrUnsupported, got %v", err)
	}
}
