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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeDeferredTestFile writes a file holding 16 filler bytes followed by the
// explicit VR little endian encoding of a PatientName element with value
// "Doe^John^^Jr". The element starts at offset 16 and its value field at 24.
func writeDeferredTestFile(t *testing.T) string {
	t.Helper()

	var buff bytes.Buffer
	buff.Write(bytes.Repeat([]byte{0xAA}, 16))
	buff.Write([]byte{0x10, 0x00, 0x10, 0x00})
	buff.Write([]byte("PN"))
	buff.Write([]byte{0x0C, 0x00})
	buff.Write([]byte("Doe^John^^Jr"))

	path := filepath.Join(t.TempDir(), "deferred.dcm")
	if err := os.WriteFile(path, buff.Bytes(), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestDeferredDataElement_Materialize(t *testing.T) {
	path := writeDeferredTestFile(t)
	src := NewFileByteSource(path, false, true)

	deferred, err := NewDeferredDataElement(PatientNameTag, PNVR, src, 16, 12)
	if err != nil {
		t.Fatalf("NewDeferredDataElement: %v", err)
	}
	if deferred.IsRead() {
		t.Fatalf("element read before first use")
	}

	value, err := deferred.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if value != "Doe^John^^Jr" {
		t.Fatalf("got value %#v, want %q", value, "Doe^John^^Jr")
	}
	if !deferred.IsRead() {
		t.Fatalf("element still unread after Value")
	}

	elem, err := deferred.Materialize()
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if elem.VR() != PNVR {
		t.Fatalf("got VR %v, want PN", elem.VR())
	}
	if elem.SourceOffset != 24 {
		t.Fatalf("got SourceOffset %d, want 24", elem.SourceOffset)
	}
}

func TestDeferredDataElement_implicitVR(t *testing.T) {
	var buff bytes.Buffer
	buff.Write([]byte{0x28, 0x00, 0x10, 0x00})
	buff.Write([]byte{0x02, 0x00, 0x00, 0x00})
	buff.Write([]byte{0x00, 0x02})

	path := filepath.Join(t.TempDir(), "implicit.dcm")
	if err := os.WriteFile(path, buff.Bytes(), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	src := NewFileByteSource(path, true, true)

	deferred, err := NewDeferredDataElement(RowsTag, nil, src, 0, 2)
	if err != nil {
		t.Fatalf("NewDeferredDataElement: %v", err)
	}
	if deferred.VR() != nil {
		t.Fatalf("unread implicit element should have no VR, got %v", deferred.VR())
	}

	value, err := deferred.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if value != uint16(512) {
		t.Fatalf("got value %#v, want uint16 512", value)
	}
	if deferred.VR() != USVR {
		t.Fatalf("got VR %v after materialization, want US", deferred.VR())
	}
}

func TestDeferredDataElement_longFormHeader(t *testing.T) {
	var buff bytes.Buffer
	buff.Write([]byte{0xE0, 0x7F, 0x10, 0x00})
	buff.Write([]byte("OB"))
	buff.Write([]byte{0x00, 0x00})
	buff.Write([]byte{0x04, 0x00, 0x00, 0x00})
	buff.Write([]byte{1, 2, 3, 4})

	path := filepath.Join(t.TempDir(), "pixels.dcm")
	if err := os.WriteFile(path, buff.Bytes(), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	src := NewFileByteSource(path, false, true)

	deferred, err := NewDeferredDataElement(PixelDataTag, OBVR, src, 0, 4)
	if err != nil {
		t.Fatalf("NewDeferredDataElement: %v", err)
	}

	elem, err := deferred.Materialize()
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if !bytes.Equal(elem.Value().([]byte), []byte{1, 2, 3, 4}) {
		t.Fatalf("got value %#v, want the 4 pixel bytes", elem.Value())
	}
	if elem.SourceOffset != 12 {
		t.Fatalf("got SourceOffset %d, want 12", elem.SourceOffset)
	}
}

func TestDeferredDataElement_staleModTime(t *testing.T) {
	path := writeDeferredTestFile(t)
	src := NewFileByteSource(path, false, true)

	deferred, err := NewDeferredDataElement(PatientNameTag, PNVR, src, 16, 12)
	if err != nil {
		t.Fatalf("NewDeferredDataElement: %v", err)
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("touching test file: %v", err)
	}

	if _, err := deferred.Materialize(); !errors.Is(err, ErrStaleSource) {
		t.Fatalf("expected error wrapping ErrStaleSource, got %v", err)
	}
	if deferred.IsRead() {
		t.Fatalf("stale element must not be marked read")
	}
}

func TestDeferredDataElement_staleHeader(t *testing.T) {
	path := writeDeferredTestFile(t)
	src := NewFileByteSource(path, false, true)

	// the recorded offset points into the filler bytes, so the re-read tag
	// cannot match
	deferred, err := NewDeferredDataElement(PatientNameTag, PNVR, src, 0, 12)
	if err != nil {
		t.Fatalf("NewDeferredDataElement: %v", err)
	}

	if _, err := deferred.Materialize(); !errors.Is(err, ErrStaleSource) {
		t.Fatalf("expected error wrapping ErrStaleSource, got %v", err)
	}
}

func TestDeferredDataElement_readsSourceOnce(t *testing.T) {
	path := writeDeferredTestFile(t)
	src := NewFileByteSource(path, false, true)

	deferred, err := NewDeferredDataElement(PatientNameTag, PNVR, src, 16, 12)
	if err != nil {
		t.Fatalf("NewDeferredDataElement: %v", err)
	}
	if _, err := deferred.Materialize(); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("removing test file: %v", err)
	}

	value, err := deferred.Value()
	if err != nil {
		t.Fatalf("Value after source removal: %v", err)
	}
	if value != "Doe^John^^Jr" {
		t.Fatalf("got value %#v, want cached %q", value, "Doe^John^^Jr")
	}
}

func TestNewDeferredDataElement_undefinedLength(t *testing.T) {
	path := writeDeferredTestFile(t)
	src := NewFileByteSource(path, false, true)

	if _, err := NewDeferredDataElement(PixelDataTag, OBVR, src, 16, UndefinedLength); err == nil {
		t.Fatalf("expected error for undefined length element")
	}
}

func TestDeferredDataElement_Format(t *testing.T) {
	path := writeDeferredTestFile(t)
	src := NewFileByteSource(path, false, true)

	deferred, err := NewDeferredDataElement(PatientNameTag, PNVR, src, 16, 12)
	if err != nil {
		t.Fatalf("NewDeferredDataElement: %v", err)
	}

	got := deferred.String()
	if !strings.Contains(got, "Deferred read: length 12") {
		t.Fatalf("unread format %q is missing the deferred read placeholder", got)
	}
	if !strings.Contains(got, "Patient's Name") {
		t.Fatalf("unread format %q is missing the description", got)
	}

	if _, err := deferred.Materialize(); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	got = deferred.String()
	if !strings.Contains(got, "Doe^John^^Jr") {
		t.Fatalf("read format %q is missing the value", got)
	}
}
