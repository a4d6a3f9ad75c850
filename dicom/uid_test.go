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

import "testing"

func TestUID_Name(t *testing.T) {
	tests := []struct {
		name string
		in   UID
		want string
	}{
		{
			"transfer syntax UIDs have symbolic names",
			UID(ImplicitVRLittleEndianUID),
			"Implicit VR Little Endian",
		},
		{
			"SOP class UIDs have symbolic names",
			UID("1.2.840.10008.5.1.4.1.1.2"),
			"CT Image Storage",
		},
		{
			"unknown UIDs return the identifier itself",
			UID("1.2.3.4.5"),
			"1.2.3.4.5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Name()
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUID_IsKnown(t *testing.T) {
	if !UID(ExplicitVRLittleEndianUID).IsKnown() {
		t.Fatalf("expected transfer syntax UID to be known")
	}
	if UID("9.9.9").IsKnown() {
		t.Fatalf("expected made up UID to be unknown")
	}
}
