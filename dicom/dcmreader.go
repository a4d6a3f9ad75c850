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
	"encoding/binary"
	"fmt"
	"io"

	"fortio.org/safecast"
)

// dcmReader is a wrapper around io.Reader, providing convenience methods for
// parsing tags, numbers and strings off a DICOM byte stream.
type dcmReader struct {
	cr *countReader
}

func newDcmReader(r io.Reader) *dcmReader {
	return &dcmReader{&countReader{r, 0}}
}

// Tag reads a group number followed by an element number in the given byte
// order.
func (dr *dcmReader) Tag(order binary.ByteOrder) (DataElementTag, error) {
	group, err := dr.UInt16(order)
	if err != nil {
		return 0, err
	}
	element, err := dr.UInt16(order)
	if err != nil {
		return 0, err
	}

	return NewDataElementTag(group, element), nil
}

// BytesRead returns the number of bytes consumed so far.
func (dr *dcmReader) BytesRead() int64 {
	return dr.cr.bytesRead
}

// Skip advances the input stream by n bytes
func (dr *dcmReader) Skip(n int64) error {
	_, err := io.CopyN(io.Discard, dr.cr, n)
	return err
}

// String returns a string of length n from the input stream
func (dr *dcmReader) String(n int64) (string, error) {
	b, err := dr.Bytes(n)
	return string(b), err
}

// Bytes returns a byte array of size n from the input stream
func (dr *dcmReader) Bytes(n int64) ([]byte, error) {
	size, err := safecast.Conv[int](n)
	if err != nil {
		return nil, fmt.Errorf("invalid byte count %d: %v", n, err)
	}
	b := make([]byte, size)
	gotN, err := io.ReadAtLeast(dr.cr, b, size)
	if err != nil && gotN != size {
		return nil, fmt.Errorf("expected to read %d bytes but got %d: %v", size, gotN, err)
	}
	return b, err
}

// UInt32 returns a uint32 from the input stream
func (dr *dcmReader) UInt32(order binary.ByteOrder) (uint32, error) {
	var b uint32
	err := binary.Read(dr.cr, order, &b)
	return b, err
}

// UInt16 returns a uint16 from the input stream
func (dr *dcmReader) UInt16(order binary.ByteOrder) (uint16, error) {
	var b uint16
	err := binary.Read(dr.cr, order, &b)
	return b, err
}

// countReader is an io.Reader that counts how many bytes have been read
type countReader struct {
	r         io.Reader
	bytesRead int64
}

func (cr *countReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.bytesRead += int64(n)
	return n, err
}
