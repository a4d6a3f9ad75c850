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

// UID is the typed value for VR UI: a unique identifier as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9.1
type UID string

// Name returns the symbolic name of well known UIDs (transfer syntaxes, SOP
// classes). For UIDs not known to this package the identifier itself is
// returned.
func (u UID) Name() string {
	if name, ok := uidNames[string(u)]; ok {
		return name
	}
	return string(u)
}

// IsKnown reports whether the UID has a symbolic name known to this package.
func (u UID) IsKnown() bool {
	_, ok := uidNames[string(u)]
	return ok
}

// well known UIDs from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
var uidNames = map[string]string{
	ImplicitVRLittleEndianUID:         "Implicit VR Little Endian",
	ExplicitVRLittleEndianUID:         "Explicit VR Little Endian",
	ExplicitVRBigEndianUID:            "Explicit VR Big Endian",
	DeflatedExplicitVRLittleEndianUID: "Deflated Explicit VR Little Endian",
	JPEGBaselineUID:                   "JPEG Baseline (Process 1)",

	"1.2.840.10008.1.2.4.51": "JPEG Extended (Process 2 and 4)",
	"1.2.840.10008.1.2.4.57": "JPEG Lossless, Non-Hierarchical (Process 14)",
	"1.2.840.10008.1.2.4.70": "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1])",
	"1.2.840.10008.1.2.4.90": "JPEG 2000 Image Compression (Lossless Only)",
	"1.2.840.10008.1.2.4.91": "JPEG 2000 Image Compression",
	"1.2.840.10008.1.2.5":    "RLE Lossless",

	"1.2.840.10008.1.1":           "Verification SOP Class",
	"1.2.840.10008.5.1.4.1.1.1":   "Computed Radiography Image Storage",
	"1.2.840.10008.5.1.4.1.1.2":   "CT Image Storage",
	"1.2.840.10008.5.1.4.1.1.4":   "MR Image Storage",
	"1.2.840.10008.5.1.4.1.1.6.1": "Ultrasound Image Storage",
	"1.2.840.10008.5.1.4.1.1.7":   "Secondary Capture Image Storage",
	"1.2.840.10008.5.1.4.1.1.128": "Positron Emission Tomography Image Storage",
}
