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
	"sort"
	"strings"
)

// DataSet is a collection of DataElements keyed by tag, as held by a sequence
// item. Datasets own their elements; elements share no state with each other.
type DataSet struct {
	// Elements is a map of DataElement tags to *DataElement
	Elements map[DataElementTag]*DataElement
}

// NewDataSet returns a DataSet holding the given elements.
func NewDataSet(elements ...*DataElement) *DataSet {
	ds := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	for _, elem := range elements {
		ds.Elements[elem.Tag] = elem
	}
	return ds
}

// SortedTags returns the tags in the DataSet in ascending order.
func (ds *DataSet) SortedTags() []DataElementTag {
	tags := make([]DataElementTag, 0, len(ds.Elements))
	for tag := range ds.Elements {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// SortedElements returns the elements of the DataSet in ascending tag order.
func (ds *DataSet) SortedElements() []*DataElement {
	tags := ds.SortedTags()
	elems := make([]*DataElement, len(tags))
	for i, tag := range tags {
		elems[i] = ds.Elements[tag]
	}
	return elems
}

func (ds *DataSet) String() string {
	return ds.string(0)
}

func (ds *DataSet) string(indentLvl int) string {
	lines := make([]string, 0, len(ds.Elements))
	for _, elem := range ds.SortedElements() {
		lines = append(lines, strings.Repeat(">", indentLvl)+elem.String())
	}
	return strings.Join(lines, "\n")
}
