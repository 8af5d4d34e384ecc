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
	"bytes"
	"fmt"
)

const (
	// PrefixSize is the fixed size of the container prefix for every version.
	PrefixSize = 100

	MinVersion = 1
	MaxVersion = 14
)

// Magic identifies the container. Little-endian "DJI\x00".
var Magic = []byte{0x44, 0x4A, 0x49, 0x00}

// Epoch groups log versions whose framing and crypto behave the same way.
type Epoch int

const (
	EpochV1_5 Epoch = iota
	EpochV6_12
	EpochV13Plus
)

func (e Epoch) String() string {
	switch e {
	case EpochV1_5:
		return "v1-5"
	case EpochV6_12:
		return "v6-12"
	case EpochV13Plus:
		return "v13+"
	}
	return fmt.Sprintf("epoch(%d)", int(e))
}

// EpochForVersion maps a validated log version to its epoch.
func EpochForVersion(version int) Epoch {
	switch {
	case version <= 5:
		return EpochV1_5
	case version <= 12:
		return EpochV6_12
	default:
		return EpochV13Plus
	}
}

// Prefix is the fixed 100-byte header at the start of every log.
type Prefix struct {
	Version              int
	DetailsOffset        uint64
	RecordsOffset        uint64
	RecordsEndOffset     uint64
	EncryptionInfoOffset uint64
	EncryptionInfoLength uint32
}

func (p *Prefix) Epoch() Epoch {
	return EpochForVersion(p.Version)
}

// DecodePrefix validates and decodes the container prefix. Offsets are
// bounds-checked against the total input length, len(data).
func DecodePrefix(data []byte) (*Prefix, error) {
	if len(data) < PrefixSize {
		return nil, MalformedPrefixError{Reason: fmt.Sprintf("input shorter than prefix: %d bytes", len(data))}
	}
	if !bytes.Equal(data[0:4], Magic) {
		return nil, MalformedPrefixError{Reason: fmt.Sprintf("bad magic: % X", data[0:4])}
	}

	c := NewCursor(data)
	c.Skip(4) // magic
	version := int(c.U16())
	c.Skip(2) // reserved
	p := &Prefix{
		Version:          version,
		DetailsOffset:    c.U64(),
		RecordsOffset:    c.U64(),
		RecordsEndOffset: c.U64(),
	}
	p.EncryptionInfoOffset = c.U64()
	p.EncryptionInfoLength = c.U32()

	if version < MinVersion || version > MaxVersion {
		return nil, UnsupportedVersionError{Version: version}
	}

	size := uint64(len(data))
	offsets := []struct {
		name string
		off  uint64
	}{
		{"details", p.DetailsOffset},
		{"records", p.RecordsOffset},
		{"records end", p.RecordsEndOffset},
	}
	for _, o := range offsets {
		if o.off < PrefixSize || o.off > size {
			return nil, MalformedPrefixError{Reason: fmt.Sprintf("%s offset out of bounds: %d", o.name, o.off)}
		}
	}
	if p.RecordsOffset > p.RecordsEndOffset {
		return nil, MalformedPrefixError{Reason: "records offset past records end"}
	}
	if p.Epoch() == EpochV13Plus {
		end := p.EncryptionInfoOffset + uint64(p.EncryptionInfoLength)
		if p.EncryptionInfoOffset < PrefixSize || end > size || end < p.EncryptionInfoOffset {
			return nil, MalformedPrefixError{Reason: "encryption info span out of bounds"}
		}
	}
	return p, nil
}
