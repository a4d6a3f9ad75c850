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
	"io"
	"os"
	"time"

	"fortio.org/safecast"
)

// ByteRegion is a contiguous sequence of bytes in a file described by an Offset
// and a Length
type ByteRegion struct {
	Offset int64
	Length int64
}

// ByteSource describes the stream a deferred element was read from. The source
// is borrowed: a DeferredDataElement copies what it needs at construction and
// does not retain the source itself.
type ByteSource interface {
	// Path identifies the underlying file, used to reopen it.
	Path() string

	// ImplicitVR and LittleEndian report how element headers are encoded.
	ImplicitVR() bool
	LittleEndian() bool

	// ModTime returns the last modification time of the underlying file.
	ModTime() (time.Time, error)
}

// FileByteSource is a ByteSource backed by a file on disk.
type FileByteSource struct {
	path         string
	implicitVR   bool
	littleEndian bool
}

// NewFileByteSource returns a ByteSource for the file at path whose element
// headers use the given encoding.
func NewFileByteSource(path string, implicitVR, littleEndian bool) *FileByteSource {
	return &FileByteSource{path, implicitVR, littleEndian}
}

// Path returns the file path.
func (s *FileByteSource) Path() string { return s.path }

// ImplicitVR reports whether element headers omit the VR.
func (s *FileByteSource) ImplicitVR() bool { return s.implicitVR }

// LittleEndian reports the byte order of element headers.
func (s *FileByteSource) LittleEndian() bool { return s.littleEndian }

// ModTime returns the file's last modification time.
func (s *FileByteSource) ModTime() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %v", s.path, err)
	}
	return info.ModTime(), nil
}

// DeferredDataElement is a DataElement whose value is not read into memory
// until needed. It is created during a fast first pass over a stream, holding
// only the element's byte region and enough source identity to read the value
// later.
//
// The element has two states, unread and read, and moves between them exactly
// once, through Materialize. Value materializes on first use; both fail rather
// than return data when the source file changed since the element was created.
type DeferredDataElement struct {
	Tag DataElementTag

	// vr as known at creation time, nil when the stream's implicit encoding left
	// it to be resolved during materialization.
	vr *VR

	path         string
	modTime      time.Time
	region       ByteRegion
	implicitVR   bool
	littleEndian bool

	// elem is nil until materialized
	elem *DataElement
}

// NewDeferredDataElement records the coordinates of an element for a later
// deferred read. elementOffset is the byte offset of the start of the whole
// element (not of its value field); valueLength is the encoded length of the
// value field. The source's modification time is captured now and re-checked at
// materialization.
func NewDeferredDataElement(tag DataElementTag, vr *VR, src ByteSource, elementOffset int64, valueLength uint32) (*DeferredDataElement, error) {
	if valueLength == UndefinedLength {
		return nil, fmt.Errorf("%v: cannot defer an element of undefined length", tag)
	}
	modTime, err := src.ModTime()
	if err != nil {
		return nil, fmt.Errorf("recording modification time for deferred read of %v: %v", tag, err)
	}

	length, err := safecast.Conv[int64](valueLength)
	if err != nil {
		return nil, fmt.Errorf("invalid value length %d: %v", valueLength, err)
	}

	return &DeferredDataElement{
		Tag:          tag,
		vr:           vr,
		path:         src.Path(),
		modTime:      modTime,
		region:       ByteRegion{elementOffset, length},
		implicitVR:   src.ImplicitVR(),
		littleEndian: src.LittleEndian(),
	}, nil
}

// IsRead reports whether the value has been materialized.
func (d *DeferredDataElement) IsRead() bool {
	return d.elem != nil
}

// VR returns the element's Value Representation, or nil when the element is
// unread and the VR was not known at creation time.
func (d *DeferredDataElement) VR() *VR {
	if d.elem != nil {
		return d.elem.VR()
	}
	return d.vr
}

// Value materializes the element on first use and returns its converted value.
func (d *DeferredDataElement) Value() (interface{}, error) {
	elem, err := d.Materialize()
	if err != nil {
		return nil, err
	}
	return elem.Value(), nil
}

// Materialize reads the element's value from its source. The source is
// reopened, checked against the modification time recorded at creation (a
// mismatch is an error wrapping ErrStaleSource), and the element is re-read at
// its recorded offset. Materialize reads the source at most once: subsequent
// calls return the already-read element.
func (d *DeferredDataElement) Materialize() (*DataElement, error) {
	if d.elem != nil {
		return d.elem, nil
	}

	info, err := os.Stat(d.path)
	if err != nil {
		return nil, fmt.Errorf("deferred read of %v: stat %s: %v", d.Tag, d.path, err)
	}
	if !info.ModTime().Equal(d.modTime) {
		return nil, fmt.Errorf("deferred read of %v from %s: modified %v, was %v at setup: %w",
			d.Tag, d.path, info.ModTime(), d.modTime, ErrStaleSource)
	}

	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("deferred read of %v: %v", d.Tag, err)
	}
	defer f.Close()

	if _, err := f.Seek(d.region.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("deferred read of %v: seeking to %d: %v", d.Tag, d.region.Offset, err)
	}

	elem, err := d.readElement(f)
	if err != nil {
		return nil, err
	}

	d.elem = elem
	return d.elem, nil
}

// readElement re-reads the element header at the current position and decodes
// the value field that follows it.
func (d *DeferredDataElement) readElement(r io.Reader) (*DataElement, error) {
	syntax := syntaxFor(d.implicitVR, d.littleEndian)
	dr := newDcmReader(r)

	tag, err := dr.Tag(syntax.byteOrder())
	if err != nil {
		return nil, fmt.Errorf("deferred read of %v: reading tag: %v", d.Tag, err)
	}
	if tag != d.Tag {
		return nil, fmt.Errorf("deferred read of %v from %s: found tag %v at offset %d: %w",
			d.Tag, d.path, tag, d.region.Offset, ErrStaleSource)
	}

	vr, err := syntax.readVR(dr, tag)
	if err != nil {
		return nil, fmt.Errorf("deferred read of %v: %v", d.Tag, err)
	}

	length, err := syntax.readValueLength(dr, vr)
	if err != nil {
		return nil, fmt.Errorf("deferred read of %v: %v", d.Tag, err)
	}
	lengthBytes, err := safecast.Conv[int64](length)
	if err != nil || lengthBytes != d.region.Length {
		return nil, fmt.Errorf("deferred read of %v from %s: value length %d, was %d at setup: %w",
			d.Tag, d.path, length, d.region.Length, ErrStaleSource)
	}

	valueOffset := d.region.Offset + dr.BytesRead()
	value, err := dr.Bytes(d.region.Length)
	if err != nil {
		return nil, fmt.Errorf("deferred read of %v: reading value field: %v", d.Tag, err)
	}

	raw := &RawDataElement{
		Tag:          tag,
		VR:           vr,
		Length:       length,
		Value:        value,
		ValueOffset:  valueOffset,
		ImplicitVR:   d.implicitVR,
		LittleEndian: d.littleEndian,
	}
	return DataElementFromRaw(raw)
}

func (d *DeferredDataElement) String() string {
	return d.Format(DefaultFormatOptions)
}

// Format renders like DataElement.Format; before materialization the value
// representation is a deferred read placeholder.
func (d *DeferredDataElement) Format(opts FormatOptions) string {
	if d.elem != nil {
		return d.elem.Format(opts)
	}

	placeholder := &DataElement{Tag: d.Tag, vr: d.vr}
	descrip := placeholder.Description()
	if len(descrip) > opts.DescriptionWidth {
		descrip = descrip[:opts.DescriptionWidth]
	}
	rep := fmt.Sprintf("Deferred read: length %d", d.region.Length)
	if opts.ShowVR && d.vr != nil {
		return fmt.Sprintf("%s %-*s %s: %s", d.Tag, opts.DescriptionWidth, descrip, d.vr.Name, rep)
	}
	return fmt.Sprintf("%s %-*s %s", d.Tag, opts.DescriptionWidth, descrip, rep)
}
