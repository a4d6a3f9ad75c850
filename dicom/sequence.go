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

import "strings"

// Sequence models a DICOM Sequence of Items: the value of an element with
// VR SQ, an ordered collection of nested datasets.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Sequence struct {
	Items []*DataSet
}

// Append adds a dataset to the end of the sequence.
func (seq *Sequence) Append(dataSet *DataSet) {
	seq.Items = append(seq.Items, dataSet)
}

func (seq *Sequence) String() string {
	return seq.string(0)
}

func (seq *Sequence) string(indentLvl int) string {
	lines := make([]string, 0, len(seq.Items))
	for _, obj := range seq.Items {
		lines = append(lines, obj.string(indentLvl+1))
	}
	return "\n" + strings.Join(lines, "\n")
}
