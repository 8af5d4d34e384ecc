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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildPrefix(version int, details, records, recordsEnd, encOff uint64, encLen uint32, total int) []byte {
	data := make([]byte, total)
	copy(data, Magic)
	binary.LittleEndian.PutUint16(data[4:], uint16(version))
	binary.LittleEndian.PutUint64(data[8:], details)
	binary.LittleEndian.PutUint64(data[16:], records)
	binary.LittleEndian.PutUint64(data[24:], recordsEnd)
	binary.LittleEndian.PutUint64(data[32:], encOff)
	binary.LittleEndian.PutUint32(data[40:], encLen)
	return data
}

func TestDecodePrefix(t *testing.T) {
	data := buildPrefix(6, 300, 100, 300, 0, 0, 400)
	p, err := DecodePrefix(data)
	assert.Nil(t, err)
	assert.Equal(t, 6, p.Version)
	assert.Equal(t, EpochV6_12, p.Epoch())
	assert.Equal(t, uint64(100), p.RecordsOffset)
	assert.Equal(t, uint64(300), p.RecordsEndOffset)
}

func TestDecodePrefixV13(t *testing.T) {
	data := buildPrefix(13, 300, 100, 300, 350, 50, 400)
	p, err := DecodePrefix(data)
	assert.Nil(t, err)
	assert.Equal(t, EpochV13Plus, p.Epoch())
	assert.Equal(t, uint64(350), p.EncryptionInfoOffset)
	assert.Equal(t, uint32(50), p.EncryptionInfoLength)
}

func TestDecodePrefixBadMagic(t *testing.T) {
	data := buildPrefix(6, 300, 100, 300, 0, 0, 400)
	data[0] = 0x00
	_, err := DecodePrefix(data)
	assert.IsType(t, MalformedPrefixError{}, err)
}

func TestDecodePrefixTooShort(t *testing.T) {
	_, err := DecodePrefix(make([]byte, 10))
	assert.IsType(t, MalformedPrefixError{}, err)
}

func TestDecodePrefixUnsupportedVersion(t *testing.T) {
	data := buildPrefix(99, 300, 100, 300, 0, 0, 400)
	_, err := DecodePrefix(data)
	assert.Equal(t, UnsupportedVersionError{Version: 99}, err)
}

func TestDecodePrefixOffsetOutOfBounds(t *testing.T) {
	data := buildPrefix(6, 500, 100, 300, 0, 0, 400)
	_, err := DecodePrefix(data)
	assert.IsType(t, MalformedPrefixError{}, err)
}

func TestDecodePrefixRecordsInverted(t *testing.T) {
	data := buildPrefix(6, 300, 300, 100, 0, 0, 400)
	_, err := DecodePrefix(data)
	assert.IsType(t, MalformedPrefixError{}, err)
}

func TestDecodePrefixEncryptionSpanOutOfBounds(t *testing.T) {
	data := buildPrefix(13, 300, 100, 300, 390, 50, 400)
	_, err := DecodePrefix(data)
	assert.IsType(t, MalformedPrefixError{}, err)
}
