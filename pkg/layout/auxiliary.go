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

package layout

import (
	"fmt"
)

// AuxiliaryEntry is one key descriptor in the encryption info area:
// a feature point code, the key version, and the AES-wrapped key material.
type AuxiliaryEntry struct {
	FeaturePoint uint16
	Version      uint16
	Data         []byte
}

// AuxiliarySegment groups the entries that cover one keychain segment
// of the records area.
type AuxiliarySegment struct {
	Entries []AuxiliaryEntry
}

// DecodeAuxiliary decodes the v13+ encryption info area.
func DecodeAuxiliary(data []byte) ([]AuxiliarySegment, error) {
	c := NewCursor(data)
	segmentCount := int(c.U16())
	if c.Short() {
		return nil, MalformedAuxiliaryError{Reason: "truncated segment count"}
	}
	segments := make([]AuxiliarySegment, 0, segmentCount)
	for s := 0; s < segmentCount; s++ {
		entryCount := int(c.U16())
		if c.Short() {
			return nil, MalformedAuxiliaryError{Reason: fmt.Sprintf("truncated entry count in segment %d", s)}
		}
		seg := AuxiliarySegment{Entries: make([]AuxiliaryEntry, 0, entryCount)}
		for e := 0; e < entryCount; e++ {
			entry := AuxiliaryEntry{
				FeaturePoint: c.U16(),
				Version:      c.U16(),
			}
			dataLen := int(c.U16())
			if c.Short() || c.Remaining() < dataLen {
				return nil, MalformedAuxiliaryError{Reason: fmt.Sprintf("truncated entry %d in segment %d", e, s)}
			}
			entry.Data = c.Bytes(dataLen)
			seg.Entries = append(seg.Entries, entry)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
