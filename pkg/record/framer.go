/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package record

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const recordTerminator = 0xFF

var jpegStart = []byte{0xFF, 0xD8}
var jpegEnd = []byte{0xFF, 0xD9}

// rawFrame is one framed record before decryption and body decode.
type rawFrame struct {
	typ    Type
	offset int
	body   []byte
}

// framer splits the record area into envelopes. Logs before version 13
// prefix each body with a one-byte length; version 13 and later use
// two bytes little endian. JPEG records carry no envelope at all.
type framer struct {
	data    []byte
	version int
	off     int
	diags   []Diagnostic
	resyncs int
}

func newFramer(data []byte, version int) *framer {
	return &framer{data: data, version: version}
}

// next returns the following frame, nil at end of input, or a
// StreamCorruptError when the stream cannot be resynced.
func (f *framer) next() (*rawFrame, error) {
	if f.off >= len(f.data) {
		return nil, nil
	}
	start := f.off

	if bytes.HasPrefix(f.data[f.off:], jpegStart) {
		return f.nextJPEG(start)
	}

	typ := Type(f.data[f.off])
	f.off++

	length, ok := f.readLength()
	if !ok {
		return nil, StreamCorruptError{Offset: start}
	}

	end := f.off + length
	if end > len(f.data) {
		body := f.data[f.off:]
		f.off = len(f.data)
		f.diags = append(f.diags, Diagnostic{
			Kind:       Truncated,
			Offset:     start,
			RecordType: typ,
			Detail:     fmt.Sprintf("declared %d bytes, %d left", length, len(body)),
		})
		return &rawFrame{typ: typ, offset: start, body: body}, nil
	}
	body := f.data[f.off:end]

	switch {
	case end < len(f.data) && f.data[end] == recordTerminator:
		f.off = end + 1
		f.resyncs = 0
	case end == len(f.data):
		f.off = end
		f.resyncs = 0
	case Type(f.data[end]).Known():
		// No terminator, but the next byte opens a plausible record.
		f.off = end
		f.resyncs++
		if f.resyncs >= 2 {
			return nil, StreamCorruptError{Offset: start}
		}
		f.diags = append(f.diags, Diagnostic{
			Kind:       TerminatorMissing,
			Offset:     start,
			RecordType: typ,
			Detail:     "resynced on next type byte",
		})
	default:
		return nil, StreamCorruptError{Offset: start}
	}
	return &rawFrame{typ: typ, offset: start, body: body}, nil
}

func (f *framer) readLength() (int, bool) {
	if f.version >= 13 {
		if f.off+2 > len(f.data) {
			return 0, false
		}
		n := int(binary.LittleEndian.Uint16(f.data[f.off:]))
		f.off += 2
		return n, true
	}
	if f.off >= len(f.data) {
		return 0, false
	}
	n := int(f.data[f.off])
	f.off++
	return n, true
}

func (f *framer) nextJPEG(start int) (*rawFrame, error) {
	idx := bytes.Index(f.data[start+2:], jpegEnd)
	if idx < 0 {
		body := f.data[start:]
		f.off = len(f.data)
		f.diags = append(f.diags, Diagnostic{
			Kind:       Truncated,
			Offset:     start,
			RecordType: TypeJPEG,
			Detail:     "image end marker missing",
		})
		return &rawFrame{typ: TypeJPEG, offset: start, body: body}, nil
	}
	end := start + 2 + idx + 2
	f.off = end
	f.resyncs = 0
	return &rawFrame{typ: TypeJPEG, offset: start, body: f.data[start:end]}, nil
}
