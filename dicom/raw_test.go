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
	"strings"
	"testing"
)

func implicitRaw(tag DataElementTag, value []byte) *RawDataElement {
	return &RawDataElement{
		Tag:          tag,
		Length:       uint32(len(value)),
		Value:        value,
		ImplicitVR:   true,
		LittleEndian: true,
	}
}

func TestDataElementFromRaw(t *testing.T) {
	tests := []struct {
		name      string
		raw       *RawDataElement
		wantVR    *VR
		wantValue interface{}
	}{
		{
			"explicit VR wins over the dictionary",
			explicitRaw(PatientNameTag, PNVR, []byte("Doe^John")),
			PNVR,
			"Doe^John",
		},
		{
			"implicit VR is resolved from the dictionary",
			implicitRaw(RowsTag, []byte{0x00, 0x02}),
			USVR,
			uint16(512),
		},
		{
			"unknown private tag resolves to OB",
			implicitRaw(NewDataElementTag(0x0009, 0x0008), []byte{0xCA, 0xFE}),
			OBVR,
			[]byte{0xCA, 0xFE},
		},
		{
			"unknown group length resolves to UL",
			implicitRaw(NewDataElementTag(0x0008, 0x0000), []byte{0x10, 0x00, 0x00, 0x00}),
			ULVR,
			uint32(16),
		},
		{
			"IS text becomes an IntegerString",
			explicitRaw(InstanceNumberTag, ISVR, []byte("0042")),
			ISVR,
			IntegerString{Raw: "0042", Value: 42},
		},
		{
			"UI text becomes a UID",
			explicitRaw(TransferSyntaxUIDTag, UIVR, []byte("1.2.840.10008.1.2\x00")),
			UIVR,
			UID("1.2.840.10008.1.2"),
		},
		{
			"multi-valued CS is split on backslashes",
			explicitRaw(ImageTypeTag, CSVR, []byte("ORIGINAL\\PRIMARY")),
			CSVR,
			[]string{"ORIGINAL", "PRIMARY"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			elem, err := DataElementFromRaw(tc.raw)
			if err != nil {
				t.Fatalf("DataElementFromRaw: %v", err)
			}
			if elem.VR() != tc.wantVR {
				t.Fatalf("got VR %v, want %v", elem.VR(), tc.wantVR)
			}
			if !reflect.DeepEqual(elem.Value(), tc.wantValue) {
				t.Fatalf("got value %#v, want %#v", elem.Value(), tc.wantValue)
			}
		})
	}
}

func TestDataElementFromRaw_unresolvableVR(t *testing.T) {
	raw := implicitRaw(DataElementTag(0x04660102), []byte{0x01})
	_, err := DataElementFromRaw(raw)
	if !errors.Is(err, ErrUnresolvableVR) {
		t.Fatalf("expected error wrapping ErrUnresolvableVR, got %v", err)
	}
	if !strings.Contains(err.Error(), "(0466,0102)") {
		t.Fatalf("error %q does not name the tag", err)
	}

	// an unlisted tag sharing a group with dictionary entries must not borrow a
	// neighbor's VR
	raw = implicitRaw(DataElementTag(0x00020016), []byte{0x01, 0x02})
	if _, err := DataElementFromRaw(raw); !errors.Is(err, ErrUnresolvableVR) {
		t.Fatalf("expected error wrapping ErrUnresolvableVR for (0002,0016), got %v", err)
	}
}

func TestDataElementFromRaw_sequence(t *testing.T) {
	raw := explicitRaw(ReferencedStudySequenceTag, SQVR, []byte{})
	_, err := DataElementFromRaw(raw)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected error wrapping ErrUnsupported, got %v", err)
	}
	if !strings.Contains(err.Error(), ReferencedStudySequenceTag.String()) {
		t.Fatalf("error %q does not name the tag", err)
	}
}

func TestDataElementFromRaw_carriesStreamMetadata(t *testing.T) {
	raw := &RawDataElement{
		Tag:          PixelDataTag,
		VR:           OBVR,
		Length:       UndefinedLength,
		Value:        []byte{1, 2, 3, 4},
		ValueOffset:  144,
		LittleEndian: true,
	}
	elem, err := DataElementFromRaw(raw)
	if err != nil {
		t.Fatalf("DataElementFromRaw: %v", err)
	}
	if !elem.UndefinedLength {
		t.Fatalf("UndefinedLength not carried over from the raw length field")
	}
	if elem.SourceOffset != 144 {
		t.Fatalf("got SourceOffset %d, want 144", elem.SourceOffset)
	}
}

func TestResolveVR(t *testing.T) {
	tests := []struct {
		name     string
		tag      DataElementTag
		explicit *VR
		want     *VR
	}{
		{"explicit VR is kept as is", RowsTag, OWVR, OWVR},
		{"standard tag from dictionary", PatientNameTag, nil, PNVR},
		{"private creator is LO", NewDataElementTag(0x0029, 0x0010), nil, LOVR},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveVR(tc.tag, tc.explicit, DefaultDictionary)
			if err != nil {
				t.Fatalf("resolveVR: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
