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

// vrType is to group common encodings together
type vrType int

const (
	// textVR is for value fields that will be interpreted as simple text with space padding
	textVR vrType = iota

	// numberBinaryVR is for value fields that are parsed as binary numbers
	numberBinaryVR

	// bulkDataVR groups sequences of binary numbers
	bulkDataVR

	// uniqueIdentifierVR is for VR: UI. It has null padding
	uniqueIdentifierVR

	// sequenceVR is for VR: SQ
	sequenceVR

	// tagVR is for tags. Distinct from numberBinaryVR due to little endian byte ordering
	tagVR
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xffffffff

// VR models the DICOM Value representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name represents the VR Code. Most codes are 2 characters; the data dictionary
	// additionally carries combined codes such as "OB or OW" for tags whose VR is
	// ambiguous under the implicit syntax.
	Name string

	kind vrType
}

func (vr *VR) String() string {
	return vr.Name
}

var vrLookupMap = map[string]*VR{}

func newVR(text string, vrType vrType) *VR {
	vr := &VR{text, vrType}
	vrLookupMap[vr.Name] = vr

	return vr
}

func lookupVRByName(name string) (*VR, error) {
	r, ok := vrLookupMap[name]
	if !ok {
		return nil, fmt.Errorf("unknown vr name: %v", name)
	}
	return r, nil
}

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// textual VRs
	CSVR = newVR("CS", textVR)
	SHVR = newVR("SH", textVR)
	LOVR = newVR("LO", textVR)
	STVR = newVR("ST", textVR)
	LTVR = newVR("LT", textVR)
	ASVR = newVR("AS", textVR)

	// person name
	PNVR = newVR("PN", textVR)

	// application entity
	AEVR = newVR("AE", textVR)

	// dates/time VR
	DAVR = newVR("DA", textVR)
	TMVR = newVR("TM", textVR)
	DTVR = newVR("DT", textVR)

	// textual numbers
	ISVR = newVR("IS", textVR)
	DSVR = newVR("DS", textVR)

	// binary numbers
	SSVR = newVR("SS", numberBinaryVR)
	USVR = newVR("US", numberBinaryVR)
	SLVR = newVR("SL", numberBinaryVR)
	ULVR = newVR("UL", numberBinaryVR)
	FLVR = newVR("FL", numberBinaryVR)
	FDVR = newVR("FD", numberBinaryVR)

	// large binary sequences
	OBVR = newVR("OB", bulkDataVR)
	ODVR = newVR("OD", bulkDataVR)
	OLVR = newVR("OL", bulkDataVR)
	OWVR = newVR("OW", bulkDataVR)
	OFVR = newVR("OF", bulkDataVR)

	// unlimited char
	UCVR = newVR("UC", bulkDataVR)

	// unknown
	UNVR = newVR("UN", bulkDataVR)

	// URL
	URVR = newVR("UR", bulkDataVR)

	// unlimited text
	UTVR = newVR("UT", bulkDataVR)

	// attribute tag
	ATVR = newVR("AT", tagVR)

	// unique identifier
	UIVR = newVR("UI", uniqueIdentifierVR)

	// sequence
	SQVR = newVR("SQ", sequenceVR)

	// combined codes carried by dictionary entries whose VR depends on other
	// elements of the data set (e.g. pixel representation)
	OBOWVR    = newVR("OB or OW", bulkDataVR)
	OWOBVR    = newVR("OW or OB", bulkDataVR)
	USSSVR    = newVR("US or SS", numberBinaryVR)
	USSSOWVR  = newVR("US or SS or OW", bulkDataVR)
	OBSlashOW = newVR("OB/OW", bulkDataVR)
	OWSlashOB = newVR("OW/OB", bulkDataVR)
)

// noSplitVRNames is the set of VRs whose values are never backslash-delimited:
// binary VRs, already-structured VRs, and the text VRs (UT, ST, LT) whose value is a
// single block of text in which a backslash is ordinary data.
var noSplitVRNames = map[string]bool{
	"UT": true, "ST": true, "LT": true,
	"FL": true, "FD": true, "AT": true,
	"OB": true, "OW": true, "OF": true,
	"SL": true, "SQ": true, "SS": true, "UL": true,
	"OB/OW": true, "OW/OB": true,
	"OB or OW": true, "OW or OB": true,
	"UN": true,
}

// splitsValue reports whether a string value for this VR follows the multi-value
// convention of joining individual values with a backslash. The substring check
// covers combined codes such as "US or SS".
func (vr *VR) splitsValue() bool {
	if noSplitVRNames[vr.Name] {
		return false
	}
	return !strings.Contains(vr.Name, "US")
}

// displaysAsByteArray is the set of VRs whose long values render as a byte count
// instead of the value itself. Both slash spellings of the combined byte codes
// render alike.
var displaysAsByteArray = map[string]bool{
	"OB": true, "OW": true,
	"OW/OB": true, "OB/OW": true,
	"OW or OB": true, "OB or OW": true,
	"US or SS or OW": true, "US or SS": true,
}
