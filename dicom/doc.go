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

// Package dicom models DICOM Data Elements as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
//
// The package sits between a raw tag/VR/length/value byte stream and typed
// in-memory values. A stream reader produces RawDataElement records;
// DataElementFromRaw resolves the Value Representation (falling back to the
// data dictionary for implicit VR streams), decodes the undecoded value bytes,
// and returns a DataElement holding canonical typed values. Textual numbers
// (VRs IS and DS) preserve their original text for display, unique identifiers
// (VR UI) resolve to symbolic names, and backslash-delimited strings are split
// into multiple values for the VRs that use that convention.
//
// DeferredDataElement postpones value decoding until first access: it records
// the element's byte region and the source file's modification time, and
// materializes exactly once by reopening the source, verifying it has not
// changed, and re-reading the element. This keeps a first pass over a large
// file cheap while guaranteeing stale data is never returned silently.
package dicom
