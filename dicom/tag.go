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

import "fmt"

// DataElementTag is a unique identifier for a Data Element composed of an ordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number.
type DataElementTag uint32

// NewDataElementTag returns the DataElementTag with the given group and element numbers.
func NewDataElementTag(group, element uint16) DataElementTag {
	return DataElementTag(uint32(group)<<16 | uint32(element))
}

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsPrivate is true if and only if the Data Element is a private tag. Odd group numbers
// are reserved for vendor-specific semantics not listed in the standard data dictionary.
func (t DataElementTag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// IsGroupLength is true if and only if the Data Element is a group length marker
// (gggg,0000), a convention of DICOM versions prior to 3.0.
func (t DataElementTag) IsGroupLength() bool {
	return t.ElementNumber() == 0
}

// IsPrivateCreator is true if and only if the Data Element reserves a block of private
// tags, i.e. is of the form (gggg,0010-00FF) with gggg odd.
func (t DataElementTag) IsPrivateCreator() bool {
	elem := t.ElementNumber()
	return t.IsPrivate() && elem >= 0x0010 && elem <= 0x00FF
}

// IsMetadataElement is true if and only if the Data Element is a file meta data element
func (t DataElementTag) IsMetadataElement() bool {
	return t.GroupNumber() == uint16(0x0002)
}

func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// Commonly referenced tags from the DICOM data dictionary
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html
const (
	FileMetaInformationGroupLengthTag DataElementTag = 0x00020000
	FileMetaInformationVersionTag     DataElementTag = 0x00020001
	MediaStorageSOPClassUIDTag        DataElementTag = 0x00020002
	MediaStorageSOPInstanceUIDTag     DataElementTag = 0x00020003
	TransferSyntaxUIDTag              DataElementTag = 0x00020010
	ImplementationClassUIDTag         DataElementTag = 0x00020012
	ImplementationVersionNameTag      DataElementTag = 0x00020013

	SpecificCharacterSetTag     DataElementTag = 0x00080005
	ImageTypeTag                DataElementTag = 0x00080008
	SOPClassUIDTag              DataElementTag = 0x00080016
	SOPInstanceUIDTag           DataElementTag = 0x00080018
	StudyDateTag                DataElementTag = 0x00080020
	StudyTimeTag                DataElementTag = 0x00080030
	ModalityTag                 DataElementTag = 0x00080060
	ManufacturerTag             DataElementTag = 0x00080070
	ReferringPhysicianNameTag   DataElementTag = 0x00080090
	ReferencedStudySequenceTag  DataElementTag = 0x00081110
	ReferencedSOPClassUIDTag    DataElementTag = 0x00081150
	ReferencedSOPInstanceUIDTag DataElementTag = 0x00081155

	PatientNameTag      DataElementTag = 0x00100010
	PatientIDTag        DataElementTag = 0x00100020
	PatientBirthDateTag DataElementTag = 0x00100030
	PatientSexTag       DataElementTag = 0x00100040
	PatientWeightTag    DataElementTag = 0x00101030

	SliceThicknessTag DataElementTag = 0x00180050

	StudyInstanceUIDTag        DataElementTag = 0x0020000D
	SeriesInstanceUIDTag       DataElementTag = 0x0020000E
	SeriesNumberTag            DataElementTag = 0x00200011
	InstanceNumberTag          DataElementTag = 0x00200013
	ImagePositionPatientTag    DataElementTag = 0x00200032
	ImageOrientationPatientTag DataElementTag = 0x00200037

	SamplesPerPixelTag         DataElementTag = 0x00280002
	RowsTag                    DataElementTag = 0x00280010
	ColumnsTag                 DataElementTag = 0x00280011
	BitsAllocatedTag           DataElementTag = 0x00280100
	SmallestImagePixelValueTag DataElementTag = 0x00280106
	WindowCenterTag            DataElementTag = 0x00281050
	WindowWidthTag             DataElementTag = 0x00281051
	GrayLookupTableDataTag     DataElementTag = 0x00281200

	// CurveDataTag and OverlayDataTag belong to repeating groups: the standard defines
	// them as (50xx,3000) and (60xx,3000). The group low byte is stored as zero and
	// masked out by the dictionary on lookup.
	CurveDataTag   DataElementTag = 0x50003000
	OverlayRowsTag DataElementTag = 0x60000010
	OverlayDataTag DataElementTag = 0x60003000

	PixelDataTag DataElementTag = 0x7FE00010

	ItemTag                     DataElementTag = 0xFFFEE000
	ItemDelimitationItemTag     DataElementTag = 0xFFFEE00D
	SequenceDelimitationItemTag DataElementTag = 0xFFFEE00E
)
