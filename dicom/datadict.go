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

// Dictionary maps Data Element tags to their standard VR and description. It is
// consulted when resolving the VR of elements read from implicit VR streams and
// when rendering element descriptions.
type Dictionary interface {
	// HasTag reports whether the tag has a dictionary entry.
	HasTag(tag DataElementTag) bool

	// Description returns the human readable name of the tag.
	Description(tag DataElementTag) (string, bool)

	// PrivateDescription returns the name of a private tag registered by the
	// given private creator.
	PrivateDescription(tag DataElementTag, creator string) (string, bool)

	// VR returns the VR the dictionary assigns to the tag.
	VR(tag DataElementTag) (*VR, bool)
}

// DefaultDictionary is the built-in data dictionary. It carries the commonly
// used subset of the standard dictionary; population of the full standard
// dictionary is left to callers providing their own Dictionary.
var DefaultDictionary Dictionary = builtinDictionary{}

type dictEntry struct {
	vr   *VR
	name string
}

var dictionaryEntries = map[uint32]dictEntry{
	uint32(FileMetaInformationGroupLengthTag): {ULVR, "File Meta Information Group Length"},
	uint32(FileMetaInformationVersionTag):     {OBVR, "File Meta Information Version"},
	uint32(MediaStorageSOPClassUIDTag):        {UIVR, "Media Storage SOP Class UID"},
	uint32(MediaStorageSOPInstanceUIDTag):     {UIVR, "Media Storage SOP Instance UID"},
	uint32(TransferSyntaxUIDTag):              {UIVR, "Transfer Syntax UID"},
	uint32(ImplementationClassUIDTag):         {UIVR, "Implementation Class UID"},
	uint32(ImplementationVersionNameTag):      {SHVR, "Implementation Version Name"},

	uint32(SpecificCharacterSetTag):     {CSVR, "Specific Character Set"},
	uint32(ImageTypeTag):                {CSVR, "Image Type"},
	uint32(SOPClassUIDTag):              {UIVR, "SOP Class UID"},
	uint32(SOPInstanceUIDTag):           {UIVR, "SOP Instance UID"},
	uint32(StudyDateTag):                {DAVR, "Study Date"},
	uint32(StudyTimeTag):                {TMVR, "Study Time"},
	uint32(ModalityTag):                 {CSVR, "Modality"},
	uint32(ManufacturerTag):             {LOVR, "Manufacturer"},
	uint32(ReferringPhysicianNameTag):   {PNVR, "Referring Physician's Name"},
	uint32(ReferencedStudySequenceTag):  {SQVR, "Referenced Study Sequence"},
	uint32(ReferencedSOPClassUIDTag):    {UIVR, "Referenced SOP Class UID"},
	uint32(ReferencedSOPInstanceUIDTag): {UIVR, "Referenced SOP Instance UID"},

	uint32(PatientNameTag):      {PNVR, "Patient's Name"},
	uint32(PatientIDTag):        {LOVR, "Patient ID"},
	uint32(PatientBirthDateTag): {DAVR, "Patient's Birth Date"},
	uint32(PatientSexTag):       {CSVR, "Patient's Sex"},
	uint32(PatientWeightTag):    {DSVR, "Patient's Weight"},

	uint32(SliceThicknessTag): {DSVR, "Slice Thickness"},

	uint32(StudyInstanceUIDTag):        {UIVR, "Study Instance UID"},
	uint32(SeriesInstanceUIDTag):       {UIVR, "Series Instance UID"},
	uint32(SeriesNumberTag):            {ISVR, "Series Number"},
	uint32(InstanceNumberTag):          {ISVR, "Instance Number"},
	uint32(ImagePositionPatientTag):    {DSVR, "Image Position (Patient)"},
	uint32(ImageOrientationPatientTag): {DSVR, "Image Orientation (Patient)"},

	uint32(SamplesPerPixelTag):         {USVR, "Samples per Pixel"},
	uint32(RowsTag):                    {USVR, "Rows"},
	uint32(ColumnsTag):                 {USVR, "Columns"},
	uint32(BitsAllocatedTag):           {USVR, "Bits Allocated"},
	uint32(SmallestImagePixelValueTag): {USSSVR, "Smallest Image Pixel Value"},
	uint32(WindowCenterTag):            {DSVR, "Window Center"},
	uint32(WindowWidthTag):             {DSVR, "Window Width"},
	uint32(GrayLookupTableDataTag):     {USSSOWVR, "Gray Lookup Table Data"},

	uint32(PixelDataTag): {OBOWVR, "Pixel Data"},
}

// Curve and overlay tags are repeating groups: any tag of the form (50xx,eeee)
// or (60xx,eeee) refers to the same dictionary entry. The low byte of the group
// number is a wildcard and is masked out before lookup. All other entries match
// exactly.
const repeatingGroupMask = 0xFF00FFFF

var repeatingGroupEntries = map[uint32]dictEntry{
	uint32(CurveDataTag):   {OBOWVR, "Curve Data"},
	uint32(OverlayRowsTag): {USVR, "Overlay Rows"},
	uint32(OverlayDataTag): {OBOWVR, "Overlay Data"},
}

// privateDictionaries maps a private creator identification to the block of
// private tags it reserves. Keys are group<<16 | element low byte: the middle
// byte of a private element number identifies the creator slot, not the
// element, so it is masked out.
var privateDictionaries = map[string]map[uint32]string{
	"SIEMENS CSA HEADER": {
		0x00290008: "CSA Image Header Type",
		0x00290010: "CSA Image Header Info",
		0x00290018: "CSA Series Header Type",
		0x00290020: "CSA Series Header Info",
	},
	"GEMS_IDEN_01": {
		0x00090001: "Full Fidelity",
		0x00090002: "Suite ID",
		0x00090004: "Product ID",
	},
}

type builtinDictionary struct{}

func (builtinDictionary) lookup(tag DataElementTag) (dictEntry, bool) {
	if entry, ok := dictionaryEntries[uint32(tag)]; ok {
		return entry, true
	}
	entry, ok := repeatingGroupEntries[uint32(tag)&repeatingGroupMask]
	return entry, ok
}

func (d builtinDictionary) HasTag(tag DataElementTag) bool {
	_, ok := d.lookup(tag)
	return ok
}

func (d builtinDictionary) Description(tag DataElementTag) (string, bool) {
	entry, ok := d.lookup(tag)
	return entry.name, ok
}

func (d builtinDictionary) PrivateDescription(tag DataElementTag, creator string) (string, bool) {
	block, ok := privateDictionaries[creator]
	if !ok {
		return "", false
	}
	name, ok := block[uint32(tag)&0xFFFF00FF]
	return name, ok
}

func (d builtinDictionary) VR(tag DataElementTag) (*VR, bool) {
	if entry, ok := d.lookup(tag); ok {
		return entry.vr, true
	}
	if tag.IsGroupLength() {
		return ULVR, true
	}
	if tag.IsPrivateCreator() {
		// private creator data elements (gggg,0010-00FF) are LO per PS3.5 7.8.1
		return LOVR, true
	}
	return nil, false
}
