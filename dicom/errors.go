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

import "errors"

// Common errors. Call sites wrap these with tag and VR context; callers should
// test with errors.Is.
var (
	// ErrUnresolvableVR is returned when an implicit VR stream carries a tag that is
	// not in the data dictionary and is neither private nor a group length marker.
	ErrUnresolvableVR = errors.New("cannot resolve VR for unknown tag")

	// ErrUnsupported is returned when the value decoder cannot handle a VR and
	// transfer syntax combination.
	ErrUnsupported = errors.New("unsupported VR/transfer syntax combination")

	// ErrNotSequence is returned when indexing into a DataElement whose value is
	// not a Sequence.
	ErrNotSequence = errors.New("data element value is not subscriptable (not a Sequence)")

	// ErrStaleSource is returned when a deferred read detects that the source file
	// changed after the deferred element was created.
	ErrStaleSource = errors.New("source file changed since deferred read was set up")

	// ErrBadValue is returned when a value cannot be converted to the canonical
	// type for the element's VR.
	ErrBadValue = errors.New("value cannot be converted for VR")
)
