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

// The value field of a DataElement holds one of a closed set of shapes:
//
// scalar text:    string, IntegerString, DecimalString, UID
// scalar number:  int, int16, uint16, int32, uint32, int64, float32, float64
// byte blob:      []byte
// sequence:       *Sequence
// multi-valued:   a slice of one of the scalar shapes, []DataElementTag, or
//                 []interface{} for mixed conversions
//
// The classifiers below are type switches over this set. A []byte is a single
// opaque value, not a multi-value, and is not textual.

// IsString reports whether v is a single textual value.
func IsString(v interface{}) bool {
	switch v.(type) {
	case string, IntegerString, DecimalString, UID:
		return true
	}
	return false
}

// IsMultiValue reports whether v holds multiple values.
func IsMultiValue(v interface{}) bool {
	_, ok := multiValueLen(v)
	return ok
}

// IsStringOrStringList reports whether v is a single textual value or a
// multi-value whose every item is textual.
func IsStringOrStringList(v interface{}) bool {
	switch val := v.(type) {
	case string, IntegerString, DecimalString, UID,
		[]string, []IntegerString, []DecimalString, []UID:
		return true
	case []interface{}:
		for _, item := range val {
			if !IsString(item) {
				return false
			}
		}
		return true
	}
	return false
}

// multiValueLen returns the number of values held by v and whether v is one of
// the multi-valued shapes.
func multiValueLen(v interface{}) (int, bool) {
	switch val := v.(type) {
	case []string:
		return len(val), true
	case []IntegerString:
		return len(val), true
	case []DecimalString:
		return len(val), true
	case []UID:
		return len(val), true
	case []int:
		return len(val), true
	case []int16:
		return len(val), true
	case []uint16:
		return len(val), true
	case []int32:
		return len(val), true
	case []uint32:
		return len(val), true
	case []int64:
		return len(val), true
	case []float32:
		return len(val), true
	case []float64:
		return len(val), true
	case []DataElementTag:
		return len(val), true
	case []interface{}:
		return len(val), true
	}
	return 0, false
}
